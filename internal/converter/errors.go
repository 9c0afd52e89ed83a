package converter

import "errors"

// 文件级错误：只中止当前文件的转换
// ErrEmptyTemplate 例外，模板坏了整个批次都无法继续
var (
	// ErrMissingRequiredColumn 标题列无法解析
	ErrMissingRequiredColumn = errors.New("missing required column")
	// ErrUnreadableFile 源文件或模板文件无法解析
	ErrUnreadableFile = errors.New("unreadable file")
	// ErrEmptyTemplate 模板没有表头列
	ErrEmptyTemplate = errors.New("empty template")
	// ErrNoValidRows 表头识别后没有数据行
	ErrNoValidRows = errors.New("no valid rows")
)
