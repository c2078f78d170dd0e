package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// writeRecords 把所有记录一次性写入 path，目录不存在时自动创建
func writeRecords(path string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("无法创建目录 %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("无法创建文件 %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		file.Close()
		return fmt.Errorf("写入文件 %s 失败: %w", path, err)
	}

	return file.Close()
}

// WriteStudents 以 "Student<id>,<pref_1>,...,<pref_k>" 的格式写出学生志愿
func WriteStudents(path string, students []*domain.Student) error {
	records := make([][]string, 0, len(students))
	for _, s := range students {
		record := make([]string, 0, len(s.Preferences)+1)
		record = append(record, "Student"+strconv.Itoa(s.ID))
		for _, p := range s.Preferences {
			record = append(record, strconv.Itoa(p))
		}
		records = append(records, record)
	}
	return writeRecords(path, records)
}

// WriteSupervisors 以 "Supervisor<id>,<capacity>" 的格式写出导师容量
func WriteSupervisors(path string, supervisors []*domain.Supervisor) error {
	records := make([][]string, 0, len(supervisors))
	for _, s := range supervisors {
		records = append(records, []string{"Supervisor" + strconv.Itoa(s.ID), strconv.Itoa(s.Capacity)})
	}
	return writeRecords(path, records)
}

func (r *Repository) SaveStudents(students []*domain.Student) error {
	return WriteStudents(r.cfg.Allocate.StudentsFile, students)
}

func (r *Repository) SaveSupervisors(supervisors []*domain.Supervisor) error {
	return WriteSupervisors(r.cfg.Allocate.SupervisorsFile, supervisors)
}
