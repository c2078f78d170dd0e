// Package report 负责运行结束后的输出：控制台摘要与平均适应度曲线图
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sysu-ecnc-dev/ga-lab/internal/allocator"
	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
	"github.com/sysu-ecnc-dev/ga-lab/internal/evolver"
)

// AllocationScorer 计算单个导师以及整个方案的适应度，*allocator.Allocator 实现了该接口
type AllocationScorer interface {
	AssignmentFitness(asg domain.Assignment) int
	Fitness(allocation domain.Allocation) int
}

// PrintAllocation 输出平均适应度最高的那一代中的全部方案
func PrintAllocation(w io.Writer, result *allocator.Result, scorer AllocationScorer) error {
	if result == nil || len(result.BestPopulation) == 0 {
		_, err := fmt.Fprintln(w, "No allocation found.")
		return err
	}

	if _, err := fmt.Fprintf(w, "Best (fitness: %s, generation: %d) generation mappings are:\n\n",
		strconv.FormatFloat(result.BestMeanFitness, 'f', -1, 64), result.BestGeneration); err != nil {
		return err
	}

	for _, allocation := range result.BestPopulation {
		for _, asg := range allocation {
			if _, err := fmt.Fprintf(w, "Supervisor: %d Students", asg.SupervisorID); err != nil {
				return err
			}
			for _, id := range asg.StudentIDs {
				if _, err := fmt.Fprintf(w, " %d", id); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "  Fitness: %d\n", scorer.AssignmentFitness(asg)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Total fitness: %d\n\n", scorer.Fitness(allocation)); err != nil {
			return err
		}
	}

	return nil
}

// PrintEvolution 每个问题一行：最高适应度和对应的个体
func PrintEvolution(w io.Writer, results []evolver.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s finished. Max fitness: %d Best: %s (generation %d)\n",
			res.Problem, res.BestFitness, res.Best, res.BestGeneration); err != nil {
			return err
		}
	}
	return nil
}
