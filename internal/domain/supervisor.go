package domain

type Supervisor struct {
	ID       int `json:"id"`
	Capacity int `json:"capacity"`
}

// TotalCapacity 计算所有导师的容量之和
func TotalCapacity(supervisors []*Supervisor) int {
	total := 0
	for _, s := range supervisors {
		total += s.Capacity
	}
	return total
}
