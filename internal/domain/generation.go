package domain

// GenerationStat 每一代写入日志的一行
type GenerationStat struct {
	Generation  int     `json:"generation"`
	MeanFitness float64 `json:"meanFitness"`
}
