package evolver

import (
	"fmt"
	"math/rand/v2"

	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

// Evaluator 适应度函数，必须是纯函数，越高越好
type Evaluator interface {
	Evaluate(g domain.Genome) int
}

// Mutator 对单个个体做一次变异
type Mutator interface {
	Mutate(g domain.Genome, rng *rand.Rand)
}

type FitnessKind string

const (
	FitnessOneMax    FitnessKind = "onemax"
	FitnessTarget    FitnessKind = "target"
	FitnessDeceptive FitnessKind = "deceptive"
)

type MutationKind string

const (
	MutationFlip  MutationKind = "flip"
	MutationDigit MutationKind = "digit"
)

// OneMax 统计值为 1 的位置个数
type OneMax struct{}

func (OneMax) Evaluate(g domain.Genome) int {
	n := 0
	for _, s := range g {
		if s == 1 {
			n++
		}
	}
	return n
}

// TargetMatch 统计与目标串相同的位置个数
type TargetMatch struct {
	Target domain.Genome
}

func (t TargetMatch) Evaluate(g domain.Genome) int {
	n := 0
	for i := 0; i < len(g) && i < len(t.Target); i++ {
		if g[i] == t.Target[i] {
			n++
		}
	}
	return n
}

// Deceptive 与 OneMax 相同，但全 0 的个体得 2*len，是一个局部最优陷阱
type Deceptive struct{}

func (Deceptive) Evaluate(g domain.Genome) int {
	n := OneMax{}.Evaluate(g)
	if n == 0 {
		return 2 * len(g)
	}
	return n
}

// FlipBit 随机翻转一位
type FlipBit struct{}

func (FlipBit) Mutate(g domain.Genome, rng *rand.Rand) {
	if len(g) == 0 {
		return
	}
	g[rng.IntN(len(g))] ^= 1
}

// RandomDigit 随机选一个位置，重新均匀抽取一个符号
type RandomDigit struct {
	Alphabet domain.Alphabet
}

func (r RandomDigit) Mutate(g domain.Genome, rng *rand.Rand) {
	if len(g) == 0 {
		return
	}
	g[rng.IntN(len(g))] = uint8(rng.IntN(int(r.Alphabet)))
}

// Problem 一个具体的字符串进化问题
type Problem struct {
	Name     string
	Alphabet domain.Alphabet
	Length   int
	Evaluator
	Mutator
}

// Definition 由配置选择的问题定义：适应度种类 x 变异种类
type Definition struct {
	Name     string
	Alphabet domain.Alphabet
	Fitness  FitnessKind
	Mutation MutationKind
	Target   string // 仅 FitnessTarget 使用
}

var StandardProblems = []Definition{
	{Name: "Onemax", Alphabet: domain.Binary, Fitness: FitnessOneMax, Mutation: MutationFlip},
	{Name: "Evolve", Alphabet: domain.Binary, Fitness: FitnessTarget, Mutation: MutationFlip, Target: "110110111011001010110101011010"},
	{Name: "Landscape", Alphabet: domain.Binary, Fitness: FitnessDeceptive, Mutation: MutationFlip},
	{Name: "Evolve2", Alphabet: domain.Decimal, Fitness: FitnessTarget, Mutation: MutationDigit, Target: "129384373440352123804353457823"},
}

func LookupProblem(name string) (Definition, bool) {
	for _, d := range StandardProblems {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Build 为给定的基因长度构造问题，目标串长度必须与基因长度一致
func (d Definition) Build(length int) (*Problem, error) {
	if err := d.Alphabet.Validate(); err != nil {
		return nil, fmt.Errorf("问题 %s: %w", d.Name, err)
	}
	if length <= 0 {
		return nil, fmt.Errorf("问题 %s: 基因长度必须 > 0（得到 %d）", d.Name, length)
	}

	p := &Problem{
		Name:     d.Name,
		Alphabet: d.Alphabet,
		Length:   length,
	}

	switch d.Fitness {
	case FitnessOneMax:
		p.Evaluator = OneMax{}
	case FitnessDeceptive:
		p.Evaluator = Deceptive{}
	case FitnessTarget:
		target, err := domain.ParseGenome(d.Target, d.Alphabet)
		if err != nil {
			return nil, fmt.Errorf("问题 %s 的目标串不合法: %w", d.Name, err)
		}
		if len(target) != length {
			return nil, fmt.Errorf("问题 %s: %w（目标串 %d，基因 %d）", d.Name, domain.ErrTargetLength, len(target), length)
		}
		p.Evaluator = TargetMatch{Target: target}
	default:
		return nil, fmt.Errorf("问题 %s: 未知的适应度种类 %q", d.Name, d.Fitness)
	}

	switch d.Mutation {
	case MutationFlip:
		if d.Alphabet != domain.Binary {
			return nil, fmt.Errorf("问题 %s: 翻转变异只能用于二进制字母表", d.Name)
		}
		p.Mutator = FlipBit{}
	case MutationDigit:
		p.Mutator = RandomDigit{Alphabet: d.Alphabet}
	default:
		return nil, fmt.Errorf("问题 %s: 未知的变异种类 %q", d.Name, d.Mutation)
	}

	return p, nil
}
