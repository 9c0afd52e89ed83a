package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopconv/internal/store"
)

// ListLogs 查询最近的转换历史
// GET /api/logs?limit=50
func (h *Handler) ListLogs(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"logs": []store.ConvertLog{}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := h.store.ListConvertLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询转换历史失败"})
		return
	}
	if logs == nil {
		logs = []store.ConvertLog{}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
