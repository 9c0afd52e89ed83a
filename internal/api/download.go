package api

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// previewRowLimit 预览最多返回的数据行数
const previewRowLimit = 100

// Download 下载转换产物
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	entry, ok := h.downloads.get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "文件不存在或已过期"})
		return
	}

	c.FileAttachment(entry.filePath, entry.fileName)
}

// PreviewResponse CSV 预览响应
type PreviewResponse struct {
	FileName  string     `json:"fileName"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"totalRows"` // 数据总行数（不含表头）
	Truncated bool       `json:"truncated"`
}

// Preview 预览转换产物的前 100 行
// GET /api/preview/:token
func (h *Handler) Preview(c *gin.Context) {
	entry, ok := h.downloads.get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "文件不存在或已过期"})
		return
	}

	data, err := os.ReadFile(entry.filePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取文件失败"})
		return
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "解析 CSV 失败"})
		return
	}

	resp := PreviewResponse{
		FileName:  entry.fileName,
		Columns:   records[0],
		TotalRows: len(records) - 1,
	}

	dataRows := records[1:]
	if len(dataRows) > previewRowLimit {
		dataRows = dataRows[:previewRowLimit]
		resp.Truncated = true
	}
	resp.Rows = dataRows

	c.JSON(http.StatusOK, resp)
}
