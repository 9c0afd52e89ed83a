package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version 应用版本号
const Version = "1.0.0"

// StatusResponse 系统状态响应
type StatusResponse struct {
	Version            string `json:"version"`
	HasDefaultTemplate bool   `json:"hasDefaultTemplate"` // 是否配置了默认模板
	MaxUploadMB        int    `json:"maxUploadMB"`        // 单文件上传上限
	TotalConversions   int    `json:"totalConversions"`   // 历史转换总数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Version:            Version,
		HasDefaultTemplate: h.cfg.Convert.DefaultTemplatePath != "",
		MaxUploadMB:        h.cfg.Convert.MaxUploadMB,
	}

	if h.store != nil {
		if n, err := h.store.CountConvertLogs(); err == nil {
			resp.TotalConversions = n
		}
	}

	c.JSON(http.StatusOK, resp)
}
