package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentScore(t *testing.T) {
	s := &Student{ID: 1, Preferences: []int{4, 2, 7}}

	assert.Equal(t, 3, s.Score(4))
	assert.Equal(t, 2, s.Score(2))
	assert.Equal(t, 1, s.Score(7))
	assert.Equal(t, 0, s.Score(9))
	assert.Equal(t, 3, s.Rank(9))
}

func TestAllocationClone(t *testing.T) {
	a := Allocation{{SupervisorID: 1, StudentIDs: []int{1, 2}}, {SupervisorID: 2, StudentIDs: []int{3}}}
	b := a.Clone()
	require.Equal(t, a, b)

	b[0].StudentIDs[0] = 9
	assert.Equal(t, 1, a[0].StudentIDs[0])
	assert.Equal(t, 3, a.StudentCount())
}

func TestGenome(t *testing.T) {
	g, err := ParseGenome("0192", Decimal)
	require.NoError(t, err)
	assert.Equal(t, Genome{0, 1, 9, 2}, g)
	assert.Equal(t, "0192", g.String())

	_, err = ParseGenome("0120", Binary)
	assert.Error(t, err)

	_, err = ParseGenome("01", Alphabet(11))
	assert.ErrorIs(t, err, ErrInvalidAlphabet)

	c := g.Clone()
	c[0] = 5
	assert.Equal(t, uint8(0), g[0])
}
