package evolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
	"github.com/sysu-ecnc-dev/ga-lab/internal/ga"
	"github.com/sysu-ecnc-dev/ga-lab/internal/utils"
)

// Solver 字符串进化的遗传算法
type Solver struct {
	Cfg    Config
	Rng    *rand.Rand
	Logger *slog.Logger
}

func New(cfg Config, rng *rand.Rand, logger *slog.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("随机数生成器未初始化（nil）")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{Cfg: cfg, Rng: rng, Logger: logger}, nil
}

// Solve 对一个问题运行固定代数
// 每一代：计算适应度 -> 记录平均适应度 -> 更新最佳个体 -> 轮盘赌选出 N 个父本 -> 两两交叉 -> 变异 -> 替换
func (s *Solver) Solve(ctx context.Context, problem *Problem, recorder GenerationRecorder) (Result, error) {
	start := time.Now()

	if problem == nil {
		return Result{}, errors.New("问题为空")
	}
	if problem.Length != s.Cfg.Length {
		return Result{}, fmt.Errorf("问题 %s 的长度为 %d，配置的基因长度为 %d", problem.Name, problem.Length, s.Cfg.Length)
	}

	size := s.Cfg.PopulationSize
	length := s.Cfg.Length

	// 两个种群：当前（A）和下一代（B）
	makePop := func() []domain.Genome {
		backing := make([]uint8, size*length)
		pop := make([]domain.Genome, size)
		for i := range pop {
			pop[i] = backing[i*length : (i+1)*length]
		}
		return pop
	}
	popA := makePop()
	popB := makePop()
	fitness := make([]int, size)

	// 初始化种群
	for i := range popA {
		copy(popA[i], utils.GenerateRandomGenome(s.Rng, length, problem.Alphabet))
	}

	// 种群大小为奇数时，最后一对的第二个子代写到这里然后丢弃
	scratchChild := make(domain.Genome, length)

	res := Result{
		Problem:        problem.Name,
		BestGeneration: -1,
		Means:          make([]float64, 0, s.Cfg.Generations),
	}

	for gen := 0; gen < s.Cfg.Generations; gen++ {
		// 为了支持通过 context 取消
		if err := ctx.Err(); err != nil {
			res.Generations = gen
			res.Duration = time.Since(start)
			return res, err
		}

		for i, g := range popA {
			fitness[i] = problem.Evaluate(g)
		}
		mean := ga.MeanFitness(fitness)
		res.Means = append(res.Means, mean)

		if recorder != nil {
			if err := recorder.Record(domain.GenerationStat{Generation: gen, MeanFitness: mean}); err != nil {
				return Result{}, err
			}
		}

		idx, best := ga.MaxFitness(fitness)
		if res.BestGeneration < 0 || best > res.BestFitness {
			res.BestFitness = best
			res.BestGeneration = gen
			res.Best = popA[idx].Clone()
		}

		// 选择
		parents := ga.SelectParents(s.Rng, fitness, 0, size)

		// 交叉与变异
		for write := 0; write < size; write += 2 {
			p1 := popA[parents[write]]
			p2 := popA[parents[(write+1)%size]]

			child1 := popB[write]
			hasSecond := write+1 < size
			child2 := scratchChild
			if hasSecond {
				child2 = popB[write+1]
			}

			singlePointCrossover(p1, p2, child1, child2, s.Rng)

			maybeMutate(child1, problem, s.Cfg.MutationRate, s.Rng)
			if hasSecond {
				maybeMutate(child2, problem, s.Cfg.MutationRate, s.Rng)
			}
		}

		// 换代
		popA, popB = popB, popA

		if s.Cfg.LogEvery > 0 && (gen+1)%s.Cfg.LogEvery == 0 {
			s.Logger.Debug("进化中",
				slog.String("problem", problem.Name),
				slog.Int("generation", gen+1),
				slog.Float64("mean", mean),
				slog.Int("best", res.BestFitness),
			)
		}
	}

	res.Generations = s.Cfg.Generations
	res.Duration = time.Since(start)

	s.Logger.Info("进化完成",
		slog.String("problem", problem.Name),
		slog.Int("max_fitness", res.BestFitness),
		slog.String("best", res.Best.String()),
		slog.Duration("duration", res.Duration),
	)

	return res, nil
}
