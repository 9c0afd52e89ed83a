// Package batch 多文件批量转换驱动
// 单个源文件失败只中止该文件，模板失败中止整个批次
package batch

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shopconv/internal/converter"
)

// outputSuffix 自动命名输出文件的后缀
const outputSuffix = " - Converted - Shopify.csv"

// Options 批量转换选项
type Options struct {
	Sources      []string // 源文件路径，至少一个
	TemplatePath string   // 模板 CSV 路径
	OutPath      string   // 输出文件或目录；为空时输出到源文件旁
	Convert      converter.Options
}

// FileResult 单个文件的转换结果
type FileResult struct {
	Source   string        `json:"source"`
	Output   string        `json:"output,omitempty"`
	Rows     int           `json:"rows"` // 输出数据行数（不含表头）
	Status   string        `json:"status"` // converted/error
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`

	err error // 原始错误，供批次级判定使用
}

// Report 批次汇总
type Report struct {
	Template  string        `json:"template"`
	Total     int           `json:"total"`
	Converted int           `json:"converted"`
	Failed    int           `json:"failed"`
	Files     []FileResult  `json:"files"`
	Duration  time.Duration `json:"duration"`
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"` // start/file_start/file_done/file_error/error/done
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Runner 批量转换执行器
type Runner struct{}

// NewRunner 创建执行器
func NewRunner() *Runner {
	return &Runner{}
}

// Run 执行批量转换，返回进度通道
// done 事件的 Data 为 *Report；模板级错误通过 error 事件上报后直接结束
func (r *Runner) Run(opts Options) <-chan ProgressEvent {
	ch := make(chan ProgressEvent, 100)

	go func() {
		defer close(ch)
		r.doRun(opts, ch)
	}()

	return ch
}

func (r *Runner) doRun(opts Options, ch chan ProgressEvent) {
	startTime := time.Now()

	r.send(ch, ProgressEvent{
		Type:      "start",
		Message:   fmt.Sprintf("开始批量转换 %d 个文件", len(opts.Sources)),
		Timestamp: time.Now(),
	})

	templateBytes, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		r.send(ch, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("读取模板失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	outputs, err := resolveOutputPaths(&opts)
	if err != nil {
		r.send(ch, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("解析输出路径失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	report := &Report{
		Template: filepath.Base(opts.TemplatePath),
		Total:    len(opts.Sources),
	}

	for i, source := range opts.Sources {
		result := r.convertFile(ch, source, outputs[i], templateBytes, opts.Convert)
		report.Files = append(report.Files, result)
		if result.Status == "converted" {
			report.Converted++
		} else {
			report.Failed++
		}

		// 模板坏了没有任何文件能转换成功，整个批次直接中止
		if result.Status == "error" && isTemplateError(result.err) {
			r.send(ch, ProgressEvent{
				Type:      "error",
				Message:   fmt.Sprintf("模板无效，批次中止: %s", result.Error),
				Timestamp: time.Now(),
			})
			break
		}
	}

	report.Duration = time.Since(startTime)

	r.sendFinal(ch, ProgressEvent{
		Type:      "done",
		Message:   fmt.Sprintf("批量转换完成: 成功 %d，失败 %d", report.Converted, report.Failed),
		Data:      report,
		Timestamp: time.Now(),
	})
}

// convertFile 转换单个文件并写出结果
func (r *Runner) convertFile(ch chan ProgressEvent, source, output string, templateBytes []byte, opts converter.Options) FileResult {
	fileStart := time.Now()

	r.send(ch, ProgressEvent{
		Type:      "file_start",
		Message:   fmt.Sprintf("正在转换: %s", filepath.Base(source)),
		Timestamp: time.Now(),
	})

	result := FileResult{Source: source, Status: "error"}

	fail := func(err error) FileResult {
		result.err = err
		result.Error = err.Error()
		result.Duration = time.Since(fileStart)
		r.send(ch, ProgressEvent{
			Type:      "file_error",
			Message:   fmt.Sprintf("转换失败 %s: %v", filepath.Base(source), err),
			Timestamp: time.Now(),
		})
		return result
	}

	sourceBytes, err := os.ReadFile(source)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", converter.ErrUnreadableFile, err))
	}

	outputBytes, err := converter.Convert(sourceBytes, templateBytes, opts)
	if err != nil {
		return fail(err)
	}

	if err := os.WriteFile(output, outputBytes, 0644); err != nil {
		return fail(fmt.Errorf("write output: %w", err))
	}

	result.Status = "converted"
	result.Output = output
	result.Rows = CountDataRows(outputBytes)
	result.Duration = time.Since(fileStart)

	r.send(ch, ProgressEvent{
		Type:      "file_done",
		Message:   fmt.Sprintf("转换成功 %s: %d 行 -> %s", filepath.Base(source), result.Rows, filepath.Base(output)),
		Data:      result,
		Timestamp: time.Now(),
	})

	return result
}

// resolveOutputPaths 为每个源文件确定输出路径
// OutPath 为已有目录或无扩展名时按目录处理并自动命名；
// 指定单个输出文件时只处理第一个源文件；为空时输出到源文件旁
func resolveOutputPaths(opts *Options) ([]string, error) {
	outputs := make([]string, 0, len(opts.Sources))

	if opts.OutPath == "" {
		for _, src := range opts.Sources {
			outputs = append(outputs, filepath.Join(filepath.Dir(src), AutoOutputName(src)))
		}
		return outputs, nil
	}

	info, statErr := os.Stat(opts.OutPath)
	isDir := (statErr == nil && info.IsDir()) ||
		(statErr != nil && filepath.Ext(opts.OutPath) == "")

	if isDir {
		if err := os.MkdirAll(opts.OutPath, 0755); err != nil {
			return nil, err
		}
		for _, src := range opts.Sources {
			outputs = append(outputs, filepath.Join(opts.OutPath, AutoOutputName(src)))
		}
		return outputs, nil
	}

	// 单个输出文件：只保留第一个源文件
	if len(opts.Sources) > 1 {
		opts.Sources = opts.Sources[:1]
	}
	return []string{opts.OutPath}, nil
}

// AutoOutputName 源文件名派生的默认输出文件名
func AutoOutputName(source string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + outputSuffix
}

// CountDataRows 统计输出数据行数（总记录数减表头）
// 描述等字段可能带引号包裹的换行，必须按 CSV 记录数而不是换行数统计
func CountDataRows(data []byte) int {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	n := 0
	for {
		_, err := r.Read()
		if err != nil {
			break
		}
		n++
	}
	if n > 0 {
		n--
	}
	return n
}

// isTemplateError 是否为模板级错误
func isTemplateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, converter.ErrEmptyTemplate) {
		return true
	}
	return errors.Is(err, converter.ErrUnreadableFile) &&
		strings.Contains(err.Error(), "template")
}

func (r *Runner) send(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}

// sendFinal 阻塞投递终态事件
// 进度事件可丢，done 事件带着汇总不能丢，消费方慢也要等它取走
func (r *Runner) sendFinal(ch chan ProgressEvent, event ProgressEvent) {
	ch <- event
}
