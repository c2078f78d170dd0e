package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sysu-ecnc-dev/ga-lab/internal/allocator"
	"github.com/sysu-ecnc-dev/ga-lab/internal/config"
	"github.com/sysu-ecnc-dev/ga-lab/internal/report"
	"github.com/sysu-ecnc-dev/ga-lab/internal/repository"
	"github.com/sysu-ecnc-dev/ga-lab/internal/utils"
)

func main() {
	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("无法加载配置", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	rng, seed := utils.NewRand(cfg.Seed)
	logger.Info("随机种子", "seed", seed)

	/**********************************************
	 * 读取学生和导师数据
	 **********************************************/
	repo := repository.NewRepository(cfg)

	students, err := repo.GetAllStudents()
	if err != nil {
		logger.Error("无法读取学生志愿", "error", err)
		os.Exit(1)
	}
	supervisors, err := repo.GetAllSupervisors()
	if err != nil {
		logger.Error("无法读取导师数据", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * 创建分配器
	 **********************************************/
	params := &allocator.Parameters{
		PopulationSize:    cfg.Allocate.PopulationSize,
		MaxGenerations:    cfg.Allocate.Generations,
		CrossoverFraction: cfg.Allocate.CrossoverFraction,
		MutationRate:      cfg.Allocate.MutationRate,
		LogEvery:          cfg.LogEvery,
	}
	alloc, err := allocator.New(params, students, supervisors, rng, logger)
	if err != nil {
		logger.Error("无法创建分配器", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * 运行遗传算法
	 **********************************************/
	generationLog, err := repo.CreateAllocationLog()
	if err != nil {
		logger.Error("无法创建日志文件", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, runErr := alloc.Allocate(ctx, generationLog)
	if err := generationLog.Close(); err != nil {
		logger.Error("无法写入日志文件", "path", generationLog.Path(), "error", err)
		os.Exit(1)
	}
	if runErr != nil {
		logger.Error("分配未完成", "error", runErr)
		// 被中断时仍然输出截至目前的结果
		if result != nil {
			_ = report.PrintAllocation(os.Stdout, result, alloc)
		}
		os.Exit(1)
	}

	/**********************************************
	 * 输出结果
	 **********************************************/
	if err := report.PrintAllocation(os.Stdout, result, alloc); err != nil {
		logger.Error("无法输出结果", "error", err)
		os.Exit(1)
	}

	if cfg.Plot.Enabled {
		path := filepath.Join(cfg.Plot.Dir, "allocation.png")
		if err := report.SaveFitnessPlot(path, "Allocation", result.Means, cfg.Plot.Width, cfg.Plot.Height); err != nil {
			logger.Error("无法保存适应度曲线", "error", err)
			os.Exit(1)
		}
		logger.Info("已保存适应度曲线", "path", path)
	}
}
