package converter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"shopconv/internal/tabfile"
)

// Convert 单个源文件的完整转换：字节进，字节出
// 无共享可变状态，不同文件的转换可由调用方并行执行
//
// 流程：模板解析 -> 表头定位 -> 逐行提取 Product -> 变体展开 ->
// 价格/标签/图片行 -> 按模板列序渲染；一个产品的全部行（变体行在前、
// 图片行在后）紧挨着输出，产品间保持源行顺序
func Convert(source, template []byte, opts Options) ([]byte, error) {
	tplRows, err := tabfile.ReadTable(template)
	if err != nil {
		return nil, fmt.Errorf("%w: template: %v", ErrUnreadableFile, err)
	}
	if len(tplRows) == 0 {
		return nil, ErrEmptyTemplate
	}
	tpl, err := ParseTemplate(tplRows[0])
	if err != nil {
		return nil, err
	}

	srcRows, err := tabfile.ReadTable(source)
	if err != nil {
		return nil, fmt.Errorf("%w: source: %v", ErrUnreadableFile, err)
	}

	headerIdx := DetectHeaderRow(srcRows)
	headers, dataRows := SplitHeader(srcRows, headerIdx)
	if len(dataRows) == 0 {
		return nil, ErrNoValidRows
	}

	fm, err := MapColumns(headers)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(tpl.Columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, row := range dataRows {
		p := ExtractProduct(fm, row)
		if p.Title == "" || strings.EqualFold(p.Title, "nan") {
			continue
		}

		variants := ExpandVariants(p, opts)
		for _, v := range variants {
			if err := w.Write(tpl.Render(BuildVariantRow(v))); err != nil {
				return nil, fmt.Errorf("write variant row: %w", err)
			}
		}

		// 主图占位置 1，额外图片行从 2 起
		for _, imgRow := range BuildImageRows(variants[0].Handle, p.Images, 2) {
			if err := w.Write(tpl.Render(imgRow)); err != nil {
				return nil, fmt.Errorf("write image row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}

	return buf.Bytes(), nil
}
