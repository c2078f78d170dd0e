package domain

// Assignment 表示某个导师分到的学生
type Assignment struct {
	SupervisorID int   `json:"supervisorID"`
	StudentIDs   []int `json:"studentIDs"`
}

// Allocation 是一个完整的分配方案（一个个体），按导师 ID 升序排列
// 所有 Assignment 的 StudentIDs 恰好覆盖全部学生且互不相交
type Allocation []Assignment

// Clone 深拷贝，防止后续繁殖的过程中修改到原有的学生列表
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for i, asg := range a {
		out[i] = Assignment{
			SupervisorID: asg.SupervisorID,
			StudentIDs:   append([]int(nil), asg.StudentIDs...),
		}
	}
	return out
}

// StudentCount 统计方案中出现的学生数量（含重复）
func (a Allocation) StudentCount() int {
	n := 0
	for _, asg := range a {
		n += len(asg.StudentIDs)
	}
	return n
}
