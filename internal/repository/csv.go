package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ParseError 描述输入文件中格式错误的记录
type ParseError struct {
	Path  string
	Line  int
	Field int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: 第 %d 列: %v", e.Path, e.Line, e.Field+1, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errEmptyField  = errors.New("字段为空")
	errTooFewField = errors.New("字段数量不足")
)

// readRecords 读取整个 csv 文件，每条记录返回其所在行号
func readRecords(path string, fieldsPerRecord int, visit func(line int, record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开文件 %s 失败: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fieldsPerRecord
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return &ParseError{Path: path, Line: csvErr.Line, Field: max(csvErr.Column-1, 0), Err: csvErr.Err}
			}
			return fmt.Errorf("读取文件 %s 失败: %w", path, err)
		}

		line, _ := reader.FieldPos(0)
		if err := visit(line, record); err != nil {
			return err
		}
	}
}

// cleanField 去掉字段两边的空白和引号
func cleanField(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

// parseID 解析记录中的 ID 列，允许带有非数字前缀（例如 Student12 -> 12）
func parseID(s string) (int, error) {
	s = cleanField(s)
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '-' && r != '+'
	})
	return parseInt(s)
}

func parseInt(s string) (int, error) {
	s = cleanField(s)
	if s == "" {
		return 0, errEmptyField
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q 不是合法的整数", s)
	}
	return v, nil
}
