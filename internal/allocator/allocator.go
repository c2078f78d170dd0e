package allocator

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
	"github.com/sysu-ecnc-dev/ga-lab/internal/ga"
	"github.com/sysu-ecnc-dev/ga-lab/internal/utils"
)

type Allocator struct {
	parameters  *Parameters
	students    map[int]*domain.Student
	studentList []*domain.Student
	studentIDs  []int                // 升序
	supervisors []*domain.Supervisor // 按 ID 升序
	rng         *rand.Rand
	logger      *slog.Logger
}

func (p *Parameters) Validate() error {
	if p.PopulationSize <= 1 {
		return fmt.Errorf("种群大小必须 > 1（得到 %d）", p.PopulationSize)
	}
	if p.MaxGenerations <= 0 {
		return fmt.Errorf("迭代次数必须 > 0（得到 %d）", p.MaxGenerations)
	}
	if p.CrossoverFraction <= 0 || p.CrossoverFraction > 1 {
		return fmt.Errorf("父本比例必须在 (0, 1] 之间（得到 %f）", p.CrossoverFraction)
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("变异概率必须在 [0, 1] 之间（得到 %f）", p.MutationRate)
	}
	return nil
}

// New 校验参数和输入数据，导师总容量与学生人数不一致时返回 domain.ErrCapacityMismatch
func New(parameters *Parameters, students []*domain.Student, supervisors []*domain.Supervisor, rng *rand.Rand, logger *slog.Logger) (*Allocator, error) {
	if parameters == nil {
		return nil, errors.New("遗传算法参数为空")
	}
	if err := parameters.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("随机数生成器未初始化（nil）")
	}
	if len(students) == 0 {
		return nil, errors.New("学生列表为空")
	}
	if err := utils.ValidateCapacity(students, supervisors); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &Allocator{
		parameters:  parameters,
		students:    make(map[int]*domain.Student, len(students)),
		studentList: students,
		studentIDs:  make([]int, 0, len(students)),
		supervisors: slices.Clone(supervisors),
		rng:         rng,
		logger:      logger,
	}

	for _, student := range students {
		if _, exists := a.students[student.ID]; exists {
			return nil, fmt.Errorf("学生 %d 重复出现", student.ID)
		}
		a.students[student.ID] = student
		a.studentIDs = append(a.studentIDs, student.ID)
	}
	slices.Sort(a.studentIDs)

	slices.SortFunc(a.supervisors, func(x, y *domain.Supervisor) int {
		return cmp.Compare(x.ID, y.ID)
	})
	for i := 1; i < len(a.supervisors); i++ {
		if a.supervisors[i].ID == a.supervisors[i-1].ID {
			return nil, fmt.Errorf("导师 %d 重复出现", a.supervisors[i].ID)
		}
	}

	return a, nil
}

// Allocate 运行固定代数的遗传算法
// 每一代：计算适应度 -> 记录平均适应度 -> 更新历史最佳 -> 选择 -> 交叉 -> 变异 -> 替换
// ctx 被取消时在代与代之间停止，返回截至当前的结果以及 ctx 的错误
func (a *Allocator) Allocate(ctx context.Context, recorder GenerationRecorder) (*Result, error) {
	start := time.Now()
	size := a.parameters.PopulationSize

	// 生成初始种群
	pop := make([]*individual, size)
	for i := range pop {
		allocation := a.randomInitAllocation()
		pop[i] = &individual{allocation: allocation, fitness: a.Fitness(allocation)}
	}

	result := &Result{
		BestGeneration: -1,
		Means:          make([]float64, 0, a.parameters.MaxGenerations),
	}
	poolSize := parentPoolSize(size, a.parameters.CrossoverFraction)

	a.logger.Info("开始分配",
		slog.Int("students", len(a.studentIDs)),
		slog.Int("supervisors", len(a.supervisors)),
		slog.Int("population", size),
		slog.Int("generations", a.parameters.MaxGenerations),
	)

	for gen := 0; gen < a.parameters.MaxGenerations; gen++ {
		// 只在代与代之间检查是否取消
		if err := ctx.Err(); err != nil {
			result.Generations = gen
			return result, errors.Join(err, a.finalize(result))
		}

		fitness := fitnessOf(pop)
		mean := ga.MeanFitness(fitness)
		result.Means = append(result.Means, mean)

		if recorder != nil {
			if err := recorder.Record(domain.GenerationStat{Generation: gen, MeanFitness: mean}); err != nil {
				return nil, err
			}
		}

		// 更新历史最佳（平均适应度严格更高才替换），需要深拷贝防止后续繁殖时被修改
		if result.BestGeneration < 0 || mean > result.BestMeanFitness {
			result.BestMeanFitness = mean
			result.BestGeneration = gen
			result.BestPopulation = clonePopulation(pop)
		}

		pop = a.breed(pop, fitness, poolSize)

		if a.parameters.LogEvery > 0 && (gen+1)%a.parameters.LogEvery == 0 {
			a.logger.Debug("进化中",
				slog.Int("generation", gen+1),
				slog.Float64("mean", mean),
				slog.Float64("best_mean", result.BestMeanFitness),
			)
		}
	}

	result.Generations = a.parameters.MaxGenerations
	if err := a.finalize(result); err != nil {
		return nil, err
	}

	a.logger.Info("分配完成",
		slog.Float64("best_mean", result.BestMeanFitness),
		slog.Int("best_generation", result.BestGeneration),
		slog.Int("best_fitness", result.BestFitness),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// breed 由当前种群繁殖出下一代（大小不变）
func (a *Allocator) breed(pop []*individual, fitness []int, poolSize int) []*individual {
	size := len(pop)

	// 选择：从当前种群中按轮盘赌选出父本池
	parentIndexes := ga.SelectParents(a.rng, fitness, 1, poolSize)
	parents := make([]*individual, len(parentIndexes))
	for i, idx := range parentIndexes {
		parents[i] = pop[idx]
	}
	parentFitness := fitnessOf(parents)

	// 在父本池中再用轮盘赌配对，交叉和变异，直到子代数量回到种群大小
	newPop := make([]*individual, 0, size)
	for len(newPop) < size {
		p1 := parents[ga.Roulette(a.rng, parentFitness, 1)]
		p2 := parents[ga.Roulette(a.rng, parentFitness, 1)]

		c1, c2 := a.singlePointCrossover(p1.allocation, p2.allocation)
		a.mutate(c1)
		a.mutate(c2)

		newPop = append(newPop, &individual{allocation: c1, fitness: a.Fitness(c1)})
		if len(newPop) < size {
			newPop = append(newPop, &individual{allocation: c2, fitness: a.Fitness(c2)})
		}
	}

	return newPop
}

// finalize 从历史最佳种群中挑出最好的个体，并检查结果是否满足约束条件
func (a *Allocator) finalize(result *Result) error {
	if len(result.BestPopulation) == 0 {
		return nil
	}

	best := -1
	for i, allocation := range result.BestPopulation {
		if err := utils.ValidateAllocation(allocation, a.studentList, a.supervisors); err != nil {
			return fmt.Errorf("第 %d 代的第 %d 个方案不合法: %w", result.BestGeneration, i, err)
		}
		fitness := a.Fitness(allocation)
		if best < 0 || fitness > result.BestFitness {
			best = i
			result.BestFitness = fitness
		}
	}
	result.Best = result.BestPopulation[best]

	return nil
}
