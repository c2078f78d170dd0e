package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sysu-ecnc-dev/ga-lab/internal/config"
	"github.com/sysu-ecnc-dev/ga-lab/internal/repository"
	"github.com/sysu-ecnc-dev/ga-lab/internal/seed"
	"github.com/sysu-ecnc-dev/ga-lab/internal/utils"
)

func main() {
	var opts seed.Options
	var seedValue uint64
	var outDir string

	flag.IntVar(&opts.Students, "students", 46, "学生人数（同时也是导师容量之和）")
	flag.IntVar(&opts.Supervisors, "supervisors", 12, "导师人数")
	flag.IntVar(&opts.Prefs, "prefs", 4, "每个学生的志愿数量")
	flag.Uint64Var(&seedValue, "seed", 0, "随机种子，0 表示使用 SEED 环境变量或系统熵源")
	flag.StringVar(&outDir, "out-dir", "", "输出目录，为空时使用配置中的文件路径")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if outDir != "" {
		cfg.Allocate.StudentsFile = filepath.Join(outDir, filepath.Base(cfg.Allocate.StudentsFile))
		cfg.Allocate.SupervisorsFile = filepath.Join(outDir, filepath.Base(cfg.Allocate.SupervisorsFile))
	}
	if seedValue == 0 {
		seedValue = cfg.Seed
	}

	rng, seedValue := utils.NewRand(seedValue)
	logger.Info("随机种子", "seed", seedValue)

	repo := repository.NewRepository(cfg)

	if _, _, err := seed.SeedRandomDataSet(repo, rng, opts); err != nil {
		logger.Error("无法生成数据集", "error", err)
		os.Exit(1)
	}

	logger.Info("数据集已生成",
		"students", cfg.Allocate.StudentsFile,
		"supervisors", cfg.Allocate.SupervisorsFile,
	)
}
