package ga

import (
	"gonum.org/v1/gonum/stat"
)

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// MeanFitness 种群平均适应度
func MeanFitness(fitness []int) float64 {
	if len(fitness) == 0 {
		return 0
	}
	return stat.Mean(toFloats(fitness), nil)
}

// MaxFitness 返回适应度最高的个体下标及其适应度，种群为空时返回 -1
func MaxFitness(fitness []int) (int, int) {
	if len(fitness) == 0 {
		return -1, 0
	}
	best := 0
	for i := 1; i < len(fitness); i++ {
		if fitness[i] > fitness[best] {
			best = i
		}
	}
	return best, fitness[best]
}

// Trend 对每代平均适应度做最小二乘拟合，返回斜率
func Trend(means []float64) float64 {
	if len(means) < 2 {
		return 0
	}
	xs := make([]float64, len(means))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, means, nil, false)
	return slope
}

// MovingAverage 计算窗口大小为 window 的滑动平均
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 || len(values) < window {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	for i := 0; i+window <= len(values); i++ {
		out = append(out, stat.Mean(values[i:i+window], nil))
	}
	return out
}
