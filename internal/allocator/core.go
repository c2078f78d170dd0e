package allocator

import (
	"slices"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// randomInitAllocation 随机初始化一个分配方案
// 按导师顺序从未分配的学生中无放回地抽取恰好 capacity 个学生，因此一定满足划分约束
func (a *Allocator) randomInitAllocation() domain.Allocation {
	unallocated := slices.Clone(a.studentIDs)
	allocation := make(domain.Allocation, 0, len(a.supervisors))

	for _, supervisor := range a.supervisors {
		studentIDs := make([]int, 0, supervisor.Capacity)
		for range supervisor.Capacity {
			idx := a.rng.IntN(len(unallocated))
			studentIDs = append(studentIDs, unallocated[idx])
			unallocated = slices.Delete(unallocated, idx, idx+1)
		}

		allocation = append(allocation, domain.Assignment{
			SupervisorID: supervisor.ID,
			StudentIDs:   studentIDs,
		})
	}

	return allocation
}

// AssignmentFitness 计算单个导师分配的适应度
// 每个学生的得分为 len(志愿) - 该导师在志愿中的位置，导师不在志愿中时得 0
func (a *Allocator) AssignmentFitness(asg domain.Assignment) int {
	fitness := 0
	for _, id := range asg.StudentIDs {
		if student, exists := a.students[id]; exists {
			fitness += student.Score(asg.SupervisorID)
		}
	}
	return fitness
}

// Fitness 计算整个分配方案的适应度，越高越好
func (a *Allocator) Fitness(allocation domain.Allocation) int {
	fitness := 0
	for _, asg := range allocation {
		fitness += a.AssignmentFitness(asg)
	}
	return fitness
}

// 单点交叉
// 对每个导师分别在其学生列表中随机选一个切点，交换切点之后的学生，子代携带拼接后的列表
func (a *Allocator) singlePointCrossover(p1, p2 domain.Allocation) (domain.Allocation, domain.Allocation) {
	if len(p1) != len(p2) {
		// 两个方案的导师顺序都来自同一份导师列表，按理来说长度一定相等
		// 这里只是以防万一
		return p1.Clone(), p2.Clone()
	}

	c1 := make(domain.Allocation, len(p1))
	c2 := make(domain.Allocation, len(p2))

	for j := range p1 {
		s1 := p1[j].StudentIDs
		s2 := p2[j].StudentIDs

		ids1 := make([]int, 0, len(s1))
		ids2 := make([]int, 0, len(s2))

		if len(s1) > 0 && len(s1) == len(s2) {
			point := a.rng.IntN(len(s1))
			ids1 = append(append(ids1, s1[:point]...), s2[point:]...)
			ids2 = append(append(ids2, s2[:point]...), s1[point:]...)
		} else {
			ids1 = append(ids1, s1...)
			ids2 = append(ids2, s2...)
		}

		c1[j] = domain.Assignment{SupervisorID: p1[j].SupervisorID, StudentIDs: ids1}
		c2[j] = domain.Assignment{SupervisorID: p2[j].SupervisorID, StudentIDs: ids2}
	}

	a.repairAllocation(c1)
	a.repairAllocation(c2)

	return c1, c2
}

type slot struct {
	assignment int
	index      int
}

// repairAllocation 拼接后同一个学生可能出现在两个导师下
// 将第二次出现的位置替换为缺失的学生（缺失学生的顺序随机打乱），各导师的人数保持不变
func (a *Allocator) repairAllocation(allocation domain.Allocation) {
	seen := make(map[int]bool, len(a.studentIDs))
	duplicates := make([]slot, 0)

	for j, asg := range allocation {
		for k, id := range asg.StudentIDs {
			if seen[id] {
				duplicates = append(duplicates, slot{assignment: j, index: k})
				continue
			}
			seen[id] = true
		}
	}

	if len(duplicates) == 0 {
		return
	}

	missing := make([]int, 0, len(duplicates))
	for _, id := range a.studentIDs {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	a.rng.Shuffle(len(missing), func(i, j int) {
		missing[i], missing[j] = missing[j], missing[i]
	})

	for i := 0; i < len(duplicates) && i < len(missing); i++ {
		d := duplicates[i]
		allocation[d.assignment].StudentIDs[d.index] = missing[i]
	}
}

// 变异
// 以 MutationRate 的概率随机选两个不同的（学生列表非空的）导师，各随机取一个学生互换
// 一换一不会改变各导师的人数，也不会破坏划分约束；返回是否发生了变异
func (a *Allocator) mutate(allocation domain.Allocation) bool {
	if a.rng.Float64() >= a.parameters.MutationRate {
		return false
	}

	candidates := make([]int, 0, len(allocation))
	for j, asg := range allocation {
		if len(asg.StudentIDs) > 0 {
			candidates = append(candidates, j)
		}
	}
	if len(candidates) < 2 {
		return false
	}

	i := a.rng.IntN(len(candidates))
	j := a.rng.IntN(len(candidates) - 1)
	if j >= i {
		j++
	}
	s1 := allocation[candidates[i]].StudentIDs
	s2 := allocation[candidates[j]].StudentIDs

	k1 := a.rng.IntN(len(s1))
	k2 := a.rng.IntN(len(s2))
	s1[k1], s2[k2] = s2[k2], s1[k1]

	return true
}
