package evolver

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

type Config struct {
	PopulationSize int
	Length         int
	Generations    int
	MutationRate   float64
	LogEvery       int // 每隔多少代打印一次进度，<= 0 表示不打印
}

func DefaultConfig() Config {
	return Config{
		PopulationSize: 10,
		Length:         30,
		Generations:    1000,
		MutationRate:   0.3,
		LogEvery:       100,
	}
}

func (c Config) Validate() error {
	if c.PopulationSize <= 1 {
		return fmt.Errorf("种群大小必须 > 1（得到 %d）", c.PopulationSize)
	}
	if c.Length <= 0 {
		return fmt.Errorf("基因长度必须 > 0（得到 %d）", c.Length)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("迭代次数必须 > 0（得到 %d）", c.Generations)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("变异概率必须在 [0, 1] 之间（得到 %f）", c.MutationRate)
	}
	return nil
}

// GenerationRecorder 接收每一代的平均适应度
type GenerationRecorder interface {
	Record(stat domain.GenerationStat) error
}

type Result struct {
	Problem        string
	Best           domain.Genome // 历代中适应度最高的个体
	BestFitness    int
	BestGeneration int
	Means          []float64 // 每一代的平均适应度
	Generations    int       // 实际运行的代数
	Duration       time.Duration
}
