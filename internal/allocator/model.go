package allocator

import "github.com/sysu-ecnc-dev/ga-lab/internal/domain"

// individual 一个分配方案及其适应度
type individual struct {
	allocation domain.Allocation
	fitness    int
}

// 遗传算法参数
type Parameters struct {
	PopulationSize    int     // 种群大小
	MaxGenerations    int     // 迭代次数（不会提前终止）
	CrossoverFraction float64 // 每一代进入父本池的比例
	MutationRate      float64 // 每个子代发生变异的概率
	LogEvery          int     // 每隔多少代打印一次进度，<= 0 表示不打印
}

func DefaultParameters() Parameters {
	return Parameters{
		PopulationSize:    20,
		MaxGenerations:    10000,
		CrossoverFraction: 0.6,
		MutationRate:      0.4,
		LogEvery:          1000,
	}
}

// GenerationRecorder 接收每一代的平均适应度
type GenerationRecorder interface {
	Record(stat domain.GenerationStat) error
}

// Result 分配结果
type Result struct {
	BestMeanFitness float64             // 历代中最高的种群平均适应度
	BestGeneration  int                 // 取得最高平均适应度的代数
	BestPopulation  []domain.Allocation // 该代种群的深拷贝
	Best            domain.Allocation   // BestPopulation 中适应度最高的个体
	BestFitness     int
	Means           []float64 // 每一代的平均适应度
	Generations     int       // 实际运行的代数
}
