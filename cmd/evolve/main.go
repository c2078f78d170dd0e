package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sysu-ecnc-dev/ga-lab/internal/config"
	"github.com/sysu-ecnc-dev/ga-lab/internal/evolver"
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
	 * 构造要运行的问题
	 **********************************************/
	problems := make([]*evolver.Problem, 0, len(cfg.Evolve.Problems))
	for _, name := range cfg.Evolve.Problems {
		def, ok := evolver.LookupProblem(name)
		if !ok {
			logger.Error("未知的问题", "problem", name)
			os.Exit(1)
		}
		problem, err := def.Build(cfg.Evolve.Length)
		if err != nil {
			logger.Error("无法构造问题", "problem", name, "error", err)
			os.Exit(1)
		}
		problems = append(problems, problem)
	}

	solver, err := evolver.New(evolver.Config{
		PopulationSize: cfg.Evolve.PopulationSize,
		Length:         cfg.Evolve.Length,
		Generations:    cfg.Evolve.Generations,
		MutationRate:   cfg.Evolve.MutationRate,
		LogEvery:       cfg.LogEvery,
	}, rng, logger)
	if err != nil {
		logger.Error("无法创建求解器", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * 依次运行每个问题
	 **********************************************/
	repo := repository.NewRepository(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("开始运行", "problems", len(problems), "generations", cfg.Evolve.Generations)

	results := make([]evolver.Result, 0, len(problems))
	for _, problem := range problems {
		generationLog, err := repo.CreateProblemLog(problem.Name)
		if err != nil {
			logger.Error("无法创建日志文件", "problem", problem.Name, "error", err)
			os.Exit(1)
		}

		res, runErr := solver.Solve(ctx, problem, generationLog)
		if err := generationLog.Close(); err != nil {
			logger.Error("无法写入日志文件", "path", generationLog.Path(), "error", err)
			os.Exit(1)
		}
		if runErr != nil {
			logger.Error("进化未完成", "problem", problem.Name, "error", runErr)
			os.Exit(1)
		}
		results = append(results, res)

		if cfg.Plot.Enabled {
			path := filepath.Join(cfg.Plot.Dir, problem.Name+".png")
			if err := report.SaveFitnessPlot(path, problem.Name, res.Means, cfg.Plot.Width, cfg.Plot.Height); err != nil {
				logger.Error("无法保存适应度曲线", "problem", problem.Name, "error", err)
				os.Exit(1)
			}
			logger.Info("已保存适应度曲线", "path", path)
		}
	}

	/**********************************************
	 * 输出结果
	 **********************************************/
	if err := report.PrintEvolution(os.Stdout, results); err != nil {
		logger.Error("无法输出结果", "error", err)
		os.Exit(1)
	}
}
