package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopconv/internal/batch"
	"shopconv/internal/converter"
)

// ConvertResult 单个源文件的转换结果
type ConvertResult struct {
	Source      string `json:"source"`
	Status      string `json:"status"` // success/error
	DisplayName string `json:"displayName,omitempty"`
	Rows        int    `json:"rows,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	PreviewURL  string `json:"previewUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Convert 上传并转换
// POST /api/convert
// multipart 字段：source_files（一或多个）、template_file 或 template_option=default、
// fallback_price、custom_output_name
func (h *Handler) Convert(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	sources := form.File["source_files"]
	if len(sources) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "至少需要一个源文件"})
		return
	}

	maxBytes := int64(h.cfg.Convert.MaxUploadMB) << 20

	templateBytes, err := h.loadTemplate(c, form, maxBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := converter.Options{
		FallbackPriceToCost: h.cfg.Convert.FallbackPriceToCost,
	}
	if v := c.PostForm("fallback_price"); v != "" {
		opts.FallbackPriceToCost = strings.EqualFold(v, "true")
	}

	customName := strings.TrimSpace(c.PostForm("custom_output_name"))
	templateName := templateDisplayName(c, form)

	results := make([]ConvertResult, 0, len(sources))
	for i, fh := range sources {
		results = append(results, h.convertOne(fh, templateBytes, templateName, opts,
			outputName(customName, fh.Filename, i, len(sources)), maxBytes))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}

// loadTemplate 取模板字节：上传的 template_file 或配置的默认模板
func (h *Handler) loadTemplate(c *gin.Context, form *multipart.Form, maxBytes int64) ([]byte, error) {
	if c.DefaultPostForm("template_option", "custom") == "default" {
		path := h.cfg.Convert.DefaultTemplatePath
		if path == "" {
			return nil, fmt.Errorf("未配置默认模板，请上传模板文件")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("默认模板读取失败: %v", err)
		}
		return data, nil
	}

	files := form.File["template_file"]
	if len(files) == 0 || files[0].Filename == "" {
		return nil, fmt.Errorf("缺少模板文件")
	}
	if files[0].Size > maxBytes {
		return nil, fmt.Errorf("模板文件超过 %d MB 上限", h.cfg.Convert.MaxUploadMB)
	}
	return readUpload(files[0])
}

// convertOne 转换单个上传文件并登记下载令牌与转换日志
func (h *Handler) convertOne(fh *multipart.FileHeader, templateBytes []byte, templateName string,
	opts converter.Options, displayName string, maxBytes int64) ConvertResult {

	result := ConvertResult{Source: fh.Filename, Status: "error"}
	start := time.Now()

	var logID int64
	if h.store != nil {
		logID, _ = h.store.CreateConvertLog(fh.Filename, templateName)
	}

	finish := func(status, outputName string, rows int, errMsg string) {
		if h.store != nil && logID > 0 {
			_ = h.store.FinishConvertLog(logID, status, outputName, rows, errMsg,
				time.Since(start).Milliseconds())
		}
	}

	if fh.Size > maxBytes {
		result.Error = fmt.Sprintf("文件超过 %d MB 上限", h.cfg.Convert.MaxUploadMB)
		finish("error", "", 0, result.Error)
		return result
	}

	sourceBytes, err := readUpload(fh)
	if err != nil {
		result.Error = fmt.Sprintf("读取上传文件失败: %v", err)
		finish("error", "", 0, result.Error)
		return result
	}

	outputBytes, err := converter.Convert(sourceBytes, templateBytes, opts)
	if err != nil {
		result.Error = err.Error()
		finish("error", "", 0, result.Error)
		return result
	}

	// 落盘文件名用 UUID，展示名与下载名保持用户可读
	fileID := uuid.New().String()
	outputPath := filepath.Join(h.outputDir, fileID+".csv")
	if err := os.WriteFile(outputPath, outputBytes, 0644); err != nil {
		result.Error = fmt.Sprintf("写出转换结果失败: %v", err)
		finish("error", "", 0, result.Error)
		return result
	}

	token := h.downloads.put(outputPath, displayName, downloadTTL)
	rows := batch.CountDataRows(outputBytes)

	result.Status = "success"
	result.DisplayName = displayName
	result.Rows = rows
	result.DownloadURL = "/api/download/" + token
	result.PreviewURL = "/api/preview/" + token

	finish("converted", displayName, rows, "")
	return result
}

// outputName 输出文件展示名
// 指定自定义名时多文件自动追加序号；否则按源文件名派生
func outputName(customName, sourceName string, index, total int) string {
	if customName == "" {
		return batch.AutoOutputName(sourceName)
	}

	name := strings.TrimSuffix(customName, ".csv")
	if total > 1 {
		return fmt.Sprintf("%s_%d.csv", name, index+1)
	}
	return name + ".csv"
}

// templateDisplayName 模板展示名（记录到转换日志）
func templateDisplayName(c *gin.Context, form *multipart.Form) string {
	if c.DefaultPostForm("template_option", "custom") == "default" {
		return "default"
	}
	if files := form.File["template_file"]; len(files) > 0 {
		return files[0].Filename
	}
	return ""
}

// readUpload 读取上传文件内容
func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
