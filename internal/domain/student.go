package domain

import "slices"

// Student 学生及其导师志愿（越靠前越想要）
type Student struct {
	ID          int   `json:"id"`
	Preferences []int `json:"preferences"`
}

// Rank 返回导师在志愿列表中的位置，不在列表中时返回 len(Preferences)
func (s *Student) Rank(supervisorID int) int {
	idx := slices.Index(s.Preferences, supervisorID)
	if idx < 0 {
		return len(s.Preferences)
	}
	return idx
}

// Score 为被分配到 supervisorID 时的得分：第一志愿得 len(Preferences)，不在志愿中得 0
func (s *Student) Score(supervisorID int) int {
	return len(s.Preferences) - s.Rank(supervisorID)
}
