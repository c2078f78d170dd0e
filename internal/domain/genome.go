package domain

import (
	"fmt"
	"strings"
)

// Alphabet 表示每个位置可取的符号个数，符号取值为 [0, Alphabet)
type Alphabet int

const (
	Binary  Alphabet = 2
	Decimal Alphabet = 10
)

func (a Alphabet) Validate() error {
	if a < 2 || a > 10 {
		return fmt.Errorf("%w: %d", ErrInvalidAlphabet, a)
	}
	return nil
}

// Genome 定长符号序列
type Genome []uint8

// ParseGenome 将 "0110" 这样的数字串转换为 Genome
func ParseGenome(s string, alphabet Alphabet) (Genome, error) {
	if err := alphabet.Validate(); err != nil {
		return nil, err
	}
	g := make(Genome, len(s))
	for i, c := range s {
		if c < '0' || int(c-'0') >= int(alphabet) {
			return nil, fmt.Errorf("位置 %d 的字符 %q 不属于 %d 进制字母表", i, c, alphabet)
		}
		g[i] = uint8(c - '0')
	}
	return g, nil
}

func (g Genome) Clone() Genome {
	return append(Genome(nil), g...)
}

func (g Genome) String() string {
	var b strings.Builder
	b.Grow(len(g))
	for _, s := range g {
		b.WriteByte('0' + s)
	}
	return b.String()
}
