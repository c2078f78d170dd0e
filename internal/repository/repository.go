package repository

import (
	"github.com/sysu-ecnc-dev/ga-lab/internal/config"
)

// Repository 负责读取输入数据、写出每一代的日志
type Repository struct {
	cfg *config.Config
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		cfg: cfg,
	}
}
