package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	// 0 表示从系统熵源中获取随机种子
	Seed     uint64 `env:"SEED" envDefault:"0"`
	LogEvery int    `env:"LOG_EVERY" envDefault:"1000" validate:"gt=0"`
	Allocate struct {
		PopulationSize    int     `env:"POPULATION_SIZE" envDefault:"20" validate:"gt=1"`
		Generations       int     `env:"GENERATIONS" envDefault:"10000" validate:"gt=0"`
		CrossoverFraction float64 `env:"CROSSOVER_FRACTION" envDefault:"0.6" validate:"gt=0,lte=1"`
		MutationRate      float64 `env:"MUTATION_RATE" envDefault:"0.4" validate:"gte=0,lte=1"`
		StudentsFile      string  `env:"STUDENTS_FILE" envDefault:"Student-choices.csv" validate:"required"`
		SupervisorsFile   string  `env:"SUPERVISORS_FILE" envDefault:"Supervisors.csv" validate:"required"`
		LogFile           string  `env:"LOG_FILE" envDefault:"part_b.txt" validate:"required"`
	} `envPrefix:"ALLOCATE_"`
	Evolve struct {
		PopulationSize int      `env:"POPULATION_SIZE" envDefault:"10" validate:"gt=1"`
		Length         int      `env:"LENGTH" envDefault:"30" validate:"gt=0"`
		Generations    int      `env:"GENERATIONS" envDefault:"1000" validate:"gt=0"`
		MutationRate   float64  `env:"MUTATION_RATE" envDefault:"0.3" validate:"gte=0,lte=1"`
		Problems       []string `env:"PROBLEMS" envDefault:"Onemax,Evolve,Landscape,Evolve2" envSeparator:"," validate:"min=1,dive,required"`
		OutputDir      string   `env:"OUTPUT_DIR" envDefault:"." validate:"required"`
	} `envPrefix:"EVOLVE_"`
	Plot struct {
		Enabled bool   `env:"ENABLED" envDefault:"false"`
		Dir     string `env:"DIR" envDefault:"plots"`
		Width   int    `env:"WIDTH_INCH" envDefault:"6" validate:"gt=0"`
		Height  int    `env:"HEIGHT_INCH" envDefault:"4" validate:"gt=0"`
	} `envPrefix:"PLOT_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SlogLevel 将 LOG_LEVEL 转换为 slog 的日志级别
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
