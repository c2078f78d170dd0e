// Package ga 包含两个实验共用的遗传算法部件
package ga

import "math/rand/v2"

// Roulette 轮盘赌选择，返回被选中个体的下标
//
// 在 [floor, total] 中均匀抽取目标值，按种群顺序累加适应度，累加值首次 >= 目标值的个体被选中。
// 总适应度为 0（或 floor > total）时退化为均匀随机选择；种群为空时返回 -1。
func Roulette(rng *rand.Rand, fitness []int, floor int) int {
	if len(fitness) == 0 {
		return -1
	}

	total := 0
	for _, f := range fitness {
		total += f
	}
	if total <= 0 || floor > total {
		return rng.IntN(len(fitness))
	}

	target := floor + rng.IntN(total-floor+1)
	partial := 0
	for i, f := range fitness {
		partial += f
		if partial >= target {
			return i
		}
	}

	// 理论上不会运行到这个地方
	return len(fitness) - 1
}

// SelectParents 用轮盘赌抽取 n 个父本的下标（可重复）
func SelectParents(rng *rand.Rand, fitness []int, floor int, n int) []int {
	parents := make([]int, 0, n)
	for range n {
		parents = append(parents, Roulette(rng, fitness, floor))
	}
	return parents
}
