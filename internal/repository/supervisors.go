package repository

import (
	"fmt"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// ReadSupervisors 解析 "<id>,<capacity>" 形式的导师容量文件
func ReadSupervisors(path string) ([]*domain.Supervisor, error) {
	supervisors := make([]*domain.Supervisor, 0)
	seen := make(map[int]int)

	err := readRecords(path, -1, func(line int, record []string) error {
		if len(record) != 2 {
			return &ParseError{Path: path, Line: line, Field: len(record) - 1, Err: fmt.Errorf("需要 2 个字段（得到 %d）", len(record))}
		}

		id, err := parseID(record[0])
		if err != nil {
			return &ParseError{Path: path, Line: line, Field: 0, Err: err}
		}
		if id <= 0 {
			return &ParseError{Path: path, Line: line, Field: 0, Err: fmt.Errorf("导师 ID 必须为正整数（得到 %d）", id)}
		}
		if prev, exists := seen[id]; exists {
			return &ParseError{Path: path, Line: line, Field: 0, Err: fmt.Errorf("导师 %d 已在第 %d 行出现过", id, prev)}
		}
		seen[id] = line

		capacity, err := parseInt(record[1])
		if err != nil {
			return &ParseError{Path: path, Line: line, Field: 1, Err: err}
		}
		if capacity < 0 {
			return &ParseError{Path: path, Line: line, Field: 1, Err: fmt.Errorf("容量不能为负数（得到 %d）", capacity)}
		}

		supervisors = append(supervisors, &domain.Supervisor{
			ID:       id,
			Capacity: capacity,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return supervisors, nil
}

func (r *Repository) GetAllSupervisors() ([]*domain.Supervisor, error) {
	return ReadSupervisors(r.cfg.Allocate.SupervisorsFile)
}
