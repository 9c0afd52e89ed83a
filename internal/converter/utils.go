package converter

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe   = regexp.MustCompile(`\s+`)
	slugDashRe    = regexp.MustCompile(`-+`)
	nonAlphaNumRe = regexp.MustCompile(`[^a-z0-9]`)
	priceKeepRe   = regexp.MustCompile(`[^0-9.\-]`)
	markerSpaceRe = regexp.MustCompile(`[*\s]+`)
)

// Slugify 标题转 URL handle
// 同一标题的所有变体和图片行共享同一个 handle
func Slugify(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = slugInvalidRe.ReplaceAllString(t, "")
	t = slugSpaceRe.ReplaceAllString(t, "-")
	t = slugDashRe.ReplaceAllString(t, "-")
	return strings.Trim(t, "-")
}

// NormalizeKey 规范化列名用于匹配：小写并去掉所有非字母数字字符
func NormalizeKey(name string) string {
	return nonAlphaNumRe.ReplaceAllString(strings.ToLower(name), "")
}

// NormalizeMarker 规范化性别标记列名：去掉星号和空白后小写
// 兼容 "*Boy" / "Girls + Unisex" 等写法
func NormalizeMarker(name string) string {
	return strings.ToLower(markerSpaceRe.ReplaceAllString(strings.TrimSpace(name), ""))
}

// CleanPrice 清洗价格单元格：只保留数字、小数点和负号
// 整数值统一为不带小数的形式；清洗后为空视为缺失
func CleanPrice(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}
	cleaned := priceKeepRe.ReplaceAllString(s, "")
	if cleaned == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(cleaned, 64); err == nil && n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return cleaned
}

// IsTruthyCell 尺码单元格是否勾选
// 空串和常见的假值/零值记号视为未勾选
func IsTruthyCell(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	switch v {
	case "", "0", "nan", "false", "no":
		return false
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil && n == 0 {
		return false
	}
	return true
}

// IsValueOne 单元格是否恰好为 1（字符串或数值形式）
// 性别标记列只认 1，其他真值形式一律不算
func IsValueOne(val string) bool {
	v := strings.TrimSpace(val)
	if v == "" || strings.EqualFold(v, "nan") {
		return false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	return n == 1.0
}

// cellAt 安全取单元格，行比表头短时返回空串
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
