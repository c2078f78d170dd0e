package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// NewSeed 从系统熵源中获取一个随机种子
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewRand 创建整个运行过程共用的随机数生成器，seed 为 0 时从系统熵源获取
// 返回实际使用的种子，方便复现
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = NewSeed()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// GenerateRandomCapacities 把 students 个名额随机分给 supervisors 个导师
func GenerateRandomCapacities(rng *rand.Rand, supervisors, students int) []*domain.Supervisor {
	out := make([]*domain.Supervisor, supervisors)
	for i := range out {
		out[i] = &domain.Supervisor{ID: i + 1}
	}
	if supervisors == 0 {
		return out
	}

	// 先尽量平均分，再随机挪动一部分名额
	for i := range students {
		out[i%supervisors].Capacity++
	}
	for range students / 2 {
		from := rng.IntN(supervisors)
		to := rng.IntN(supervisors)
		if out[from].Capacity > 0 {
			out[from].Capacity--
			out[to].Capacity++
		}
	}

	return out
}

// GenerateRandomStudents 生成 n 个学生，每人从导师中随机选出 prefs 个不同的志愿
func GenerateRandomStudents(rng *rand.Rand, n int, supervisors []*domain.Supervisor, prefs int) []*domain.Student {
	ids := make([]int, len(supervisors))
	for i, s := range supervisors {
		ids[i] = s.ID
	}
	prefs = min(prefs, len(ids))

	students := make([]*domain.Student, n)
	for i := range students {
		// 用 Fisher-Yates 洗牌算法来生成随机的志愿顺序
		shuffled := append([]int(nil), ids...)
		for j := len(shuffled) - 1; j > 0; j-- {
			k := rng.IntN(j + 1)
			shuffled[j], shuffled[k] = shuffled[k], shuffled[j]
		}

		students[i] = &domain.Student{
			ID:          i + 1,
			Preferences: shuffled[:prefs],
		}
	}

	return students
}

// GenerateRandomGenome 每个位置独立地从字母表中均匀抽取
func GenerateRandomGenome(rng *rand.Rand, length int, alphabet domain.Alphabet) domain.Genome {
	g := make(domain.Genome, length)
	for i := range g {
		g[i] = uint8(rng.IntN(int(alphabet)))
	}
	return g
}
