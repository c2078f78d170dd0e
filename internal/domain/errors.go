package domain

import "errors"

var (
	ErrCapacityMismatch = errors.New("导师总容量与学生人数不一致")
	ErrTargetLength     = errors.New("目标串长度与基因长度不一致")
	ErrInvalidAlphabet  = errors.New("字母表大小必须在 [2, 10] 之间")
)
