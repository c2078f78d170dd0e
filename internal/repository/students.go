package repository

import (
	"fmt"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// ReadStudents 解析 "<id>,<pref_1>,...,<pref_k>" 形式的学生志愿文件
func ReadStudents(path string) ([]*domain.Student, error) {
	students := make([]*domain.Student, 0)
	seen := make(map[int]int)

	err := readRecords(path, -1, func(line int, record []string) error {
		if len(record) < 2 {
			return &ParseError{Path: path, Line: line, Field: len(record), Err: errTooFewField}
		}

		id, err := parseID(record[0])
		if err != nil {
			return &ParseError{Path: path, Line: line, Field: 0, Err: err}
		}
		if id <= 0 {
			return &ParseError{Path: path, Line: line, Field: 0, Err: fmt.Errorf("学生 ID 必须为正整数（得到 %d）", id)}
		}
		if prev, exists := seen[id]; exists {
			return &ParseError{Path: path, Line: line, Field: 0, Err: fmt.Errorf("学生 %d 已在第 %d 行出现过", id, prev)}
		}
		seen[id] = line

		preferences := make([]int, 0, len(record)-1)
		for i, field := range record[1:] {
			pref, err := parseInt(field)
			if err != nil {
				return &ParseError{Path: path, Line: line, Field: i + 1, Err: err}
			}
			preferences = append(preferences, pref)
		}

		students = append(students, &domain.Student{
			ID:          id,
			Preferences: preferences,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (r *Repository) GetAllStudents() ([]*domain.Student, error) {
	return ReadStudents(r.cfg.Allocate.StudentsFile)
}
