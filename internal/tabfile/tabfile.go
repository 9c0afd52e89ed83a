// Package tabfile 统一读取表格文件字节流
// 供货商导出既有 CSV 也有 XLSX，按文件头嗅探格式后统一转成行序列
package tabfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// xlsxMagic XLSX 本质是 ZIP 包，以 PK 头开始
var xlsxMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// ReadTable 将字节流解析为行序列
// ZIP 头识别为 XLSX（取第一个工作表），其余按 UTF-8 CSV 解析
// 单元格保持原始文本，不做类型推断；行长度允许不一致
func ReadTable(data []byte) ([][]string, error) {
	if IsXLSX(data) {
		return readXLSX(data)
	}
	return readCSV(data)
}

// IsXLSX 字节流是否为 XLSX（ZIP）格式
func IsXLSX(data []byte) bool {
	return bytes.HasPrefix(data, xlsxMagic)
}

// readCSV 解析 CSV 字节流
// 允许宽松引号和不等长的行，脏导出文件很常见
func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// readXLSX 解析 XLSX 字节流，取第一个工作表
func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
