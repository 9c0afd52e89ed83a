package converter

import (
	"fmt"
	"strings"
)

// headerScanLimit 最多检查前几行
const headerScanLimit = 8

// headerIndicators 表头指示词：某行单元格包含这些词越多，越可能是真实表头
var headerIndicators = []string{
	"title", "brand", "vendor", "price", "mrp", "category", "image",
}

// DetectHeaderRow 在前 8 行中定位真实表头行
// 按指示词命中数打分，最高分获胜，平分取最靠前的行；全部为 0 时保留第一行
func DetectHeaderRow(rows [][]string) int {
	bestIdx := 0
	bestScore := 0

	limit := headerScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		score := scoreHeaderRow(rows[i])
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	return bestIdx
}

// scoreHeaderRow 统计一行中包含指示词的单元格数
func scoreHeaderRow(row []string) int {
	score := 0
	for _, cell := range row {
		c := strings.ToLower(strings.TrimSpace(cell))
		if c == "" {
			continue
		}
		for _, ind := range headerIndicators {
			if strings.Contains(c, ind) {
				score++
				break
			}
		}
	}
	return score
}

// SplitHeader 按表头行索引切分出表头和数据行
// 空表头单元格生成占位列名，避免后续按名匹配时互相撞车
func SplitHeader(rows [][]string, headerIdx int) (headers []string, dataRows [][]string) {
	if headerIdx >= len(rows) {
		return nil, nil
	}

	raw := rows[headerIdx]
	headers = make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("unnamed_%d", i)
		}
		headers[i] = h
	}

	return headers, rows[headerIdx+1:]
}
