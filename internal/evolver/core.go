package evolver

import (
	"math/rand/v2"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// singlePointCrossover 在 [0, n-1] 中随机选切点 c：
// c1 = p1[:c] + p2[c:]，c2 = p2[:c] + p1[c:]
func singlePointCrossover(p1, p2, c1, c2 domain.Genome, rng *rand.Rand) {
	n := len(p1)
	point := rng.IntN(n)

	copy(c1[:point], p1[:point])
	copy(c1[point:], p2[point:])
	copy(c2[:point], p2[:point])
	copy(c2[point:], p1[point:])
}

// maybeMutate 以 rate 的概率对个体做一次变异
func maybeMutate(g domain.Genome, m Mutator, rate float64, rng *rand.Rand) bool {
	if rng.Float64() >= rate {
		return false
	}
	m.Mutate(g, rng)
	return true
}
