package store

import "fmt"

// ConvertLog 单次文件转换记录
type ConvertLog struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	TemplateName string `json:"templateName"`
	Status       string `json:"status"` // processing/converted/error
	OutputName   string `json:"outputName"`
	OutputRows   int    `json:"outputRows"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	DurationMs   int64  `json:"durationMs"`
	CreatedAt    string `json:"createdAt"`
}

// CreateConvertLog 创建转换日志，返回 log id
func (s *Store) CreateConvertLog(filename, templateName string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO convert_logs (filename, template_name, status)
		VALUES (?, ?, 'processing')
	`, filename, templateName)
	if err != nil {
		return 0, fmt.Errorf("failed to create convert log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get convert log id: %w", err)
	}
	return id, nil
}

// FinishConvertLog 完成转换日志更新
func (s *Store) FinishConvertLog(id int64, status, outputName string, outputRows int, errorMessage string, durationMs int64) error {
	_, err := s.db.Exec(`
		UPDATE convert_logs SET
			status = ?,
			output_name = ?,
			output_rows = ?,
			error_message = ?,
			duration_ms = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, status, outputName, outputRows, errorMessage, durationMs, id)
	if err != nil {
		return fmt.Errorf("failed to finish convert log: %w", err)
	}
	return nil
}

// ListConvertLogs 按时间倒序返回最近的转换记录
func (s *Store) ListConvertLogs(limit int) ([]ConvertLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, filename, template_name, status, output_name, output_rows,
		       error_message, duration_ms, created_at
		FROM convert_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list convert logs: %w", err)
	}
	defer rows.Close()

	var logs []ConvertLog
	for rows.Next() {
		var l ConvertLog
		if err := rows.Scan(&l.ID, &l.Filename, &l.TemplateName, &l.Status,
			&l.OutputName, &l.OutputRows, &l.ErrorMessage, &l.DurationMs, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan convert log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// CountConvertLogs 统计转换记录数
func (s *Store) CountConvertLogs() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM convert_logs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count convert logs: %w", err)
	}
	return n, nil
}
