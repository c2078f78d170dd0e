package utils

import (
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// ValidateCapacity 检查导师总容量是否与学生人数一致
func ValidateCapacity(students []*domain.Student, supervisors []*domain.Supervisor) error {
	total := domain.TotalCapacity(supervisors)
	if total != len(students) {
		return fmt.Errorf("%w: 导师总容量为 %d，学生人数为 %d", domain.ErrCapacityMismatch, total, len(students))
	}
	return nil
}

// ValidateAllocation 检查分配方案是否满足约束：
//  1. 导师与导师列表一一对应，且每个导师分到的人数等于其容量
//  2. 每个学生恰好出现一次
func ValidateAllocation(allocation domain.Allocation, students []*domain.Student, supervisors []*domain.Supervisor) error {
	if len(allocation) != len(supervisors) {
		return fmt.Errorf("分配方案中有 %d 个导师，应为 %d 个", len(allocation), len(supervisors))
	}

	capacity := make(map[int]int, len(supervisors))
	for _, s := range supervisors {
		capacity[s.ID] = s.Capacity
	}

	known := make(map[int]bool, len(students))
	for _, s := range students {
		known[s.ID] = true
	}

	seenSupervisors := make(map[int]bool, len(allocation))
	seenStudents := make(map[int]int, len(students))

	for _, asg := range allocation {
		c, exists := capacity[asg.SupervisorID]
		if !exists {
			return fmt.Errorf("导师 %d 不在导师列表中", asg.SupervisorID)
		}
		if seenSupervisors[asg.SupervisorID] {
			return fmt.Errorf("导师 %d 在分配方案中出现了多次", asg.SupervisorID)
		}
		seenSupervisors[asg.SupervisorID] = true

		if len(asg.StudentIDs) != c {
			return fmt.Errorf("导师 %d 分到了 %d 个学生，容量为 %d", asg.SupervisorID, len(asg.StudentIDs), c)
		}

		for _, id := range asg.StudentIDs {
			if !known[id] {
				return fmt.Errorf("学生 %d 不在学生列表中", id)
			}
			if prev, exists := seenStudents[id]; exists {
				return fmt.Errorf("学生 %d 同时被分配给了导师 %d 和导师 %d", id, prev, asg.SupervisorID)
			}
			seenStudents[id] = asg.SupervisorID
		}
	}

	if len(seenStudents) != len(students) {
		return errors.New("存在未被分配的学生")
	}

	return nil
}
