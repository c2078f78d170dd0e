package allocator

import (
	"math"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// parentPoolSize ceil(populationSize * fraction)，至少为 2 以便配对
func parentPoolSize(populationSize int, fraction float64) int {
	n := int(math.Ceil(float64(populationSize) * fraction))
	return max(n, 2)
}

func fitnessOf(pop []*individual) []int {
	out := make([]int, len(pop))
	for i, ind := range pop {
		out[i] = ind.fitness
	}
	return out
}

func clonePopulation(pop []*individual) []domain.Allocation {
	out := make([]domain.Allocation, len(pop))
	for i, ind := range pop {
		out[i] = ind.allocation.Clone()
	}
	return out
}
