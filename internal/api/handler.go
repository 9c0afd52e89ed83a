package api

import (
	"github.com/gin-gonic/gin"

	"shopconv/internal/config"
	"shopconv/internal/store"
)

// Handler API 处理器
type Handler struct {
	store     *store.Store
	cfg       *config.AppConfig
	downloads *downloadStore
	outputDir string // 转换产物落盘目录
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, cfg *config.AppConfig, outputDir string) *Handler {
	return &Handler{
		store:     st,
		cfg:       cfg,
		downloads: newDownloadStore(),
		outputDir: outputDir,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 上传转换
	router.POST("/convert", h.Convert)

	// 转换产物
	router.GET("/download/:token", h.Download)
	router.GET("/preview/:token", h.Preview)

	// 转换历史
	router.GET("/logs", h.ListLogs)
}
