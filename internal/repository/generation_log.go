package repository

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// GenerationLog 以 "<generation> <mean>" 的格式逐行追加每一代的平均适应度
type GenerationLog struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// CreateGenerationLog 创建（或截断）日志文件，必要时创建所在目录
func CreateGenerationLog(path string) (*GenerationLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建目录 %s 失败: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("创建日志文件 %s 失败: %w", path, err)
	}
	return &GenerationLog{path: path, file: f, w: bufio.NewWriter(f)}, nil
}

func (l *GenerationLog) Record(stat domain.GenerationStat) error {
	line := strconv.Itoa(stat.Generation) + " " + FormatMean(stat.MeanFitness) + "\n"
	if _, err := l.w.WriteString(line); err != nil {
		return fmt.Errorf("写入日志文件 %s 失败: %w", l.path, err)
	}
	return nil
}

func (l *GenerationLog) Path() string {
	return l.path
}

func (l *GenerationLog) Close() error {
	if err := l.w.Flush(); err != nil {
		l.file.Close()
		return fmt.Errorf("写入日志文件 %s 失败: %w", l.path, err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("关闭日志文件 %s 失败: %w", l.path, err)
	}
	return nil
}

func FormatMean(mean float64) string {
	return strconv.FormatFloat(mean, 'f', -1, 64)
}

func (r *Repository) CreateAllocationLog() (*GenerationLog, error) {
	return CreateGenerationLog(r.cfg.Allocate.LogFile)
}

// CreateProblemLog 每个字符串问题的日志写到 <OUTPUT_DIR>/<name>.txt
func (r *Repository) CreateProblemLog(name string) (*GenerationLog, error) {
	return CreateGenerationLog(filepath.Join(r.cfg.Evolve.OutputDir, name+".txt"))
}
