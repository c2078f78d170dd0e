package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

func TestNewRandReproducible(t *testing.T) {
	r1, seed := NewRand(42)
	assert.Equal(t, uint64(42), seed)
	r2, _ := NewRand(42)
	for range 10 {
		assert.Equal(t, r1.Uint64(), r2.Uint64())
	}

	_, seed = NewRand(0)
	assert.NotZero(t, seed)
}

func TestGenerateRandomDataSet(t *testing.T) {
	rng, _ := NewRand(5)

	supervisors := GenerateRandomCapacities(rng, 6, 31)
	require.Len(t, supervisors, 6)
	assert.Equal(t, 31, domain.TotalCapacity(supervisors))

	students := GenerateRandomStudents(rng, 31, supervisors, 4)
	require.Len(t, students, 31)
	require.NoError(t, ValidateCapacity(students, supervisors))

	for _, s := range students {
		assert.Len(t, s.Preferences, 4)
		seen := map[int]bool{}
		for _, p := range s.Preferences {
			assert.False(t, seen[p], "duplicate preference %d", p)
			seen[p] = true
		}
	}

	g := GenerateRandomGenome(rng, 30, domain.Decimal)
	assert.Len(t, g, 30)
	for _, s := range g {
		assert.Less(t, s, uint8(10))
	}
}

func TestValidateCapacity(t *testing.T) {
	students := []*domain.Student{{ID: 1}, {ID: 2}}
	err := ValidateCapacity(students, []*domain.Supervisor{{ID: 1, Capacity: 3}})
	assert.ErrorIs(t, err, domain.ErrCapacityMismatch)
}

func TestValidateAllocation(t *testing.T) {
	students := []*domain.Student{{ID: 1}, {ID: 2}, {ID: 3}}
	supervisors := []*domain.Supervisor{{ID: 1, Capacity: 2}, {ID: 2, Capacity: 1}}

	valid := domain.Allocation{
		{SupervisorID: 1, StudentIDs: []int{3, 1}},
		{SupervisorID: 2, StudentIDs: []int{2}},
	}
	assert.NoError(t, ValidateAllocation(valid, students, supervisors))

	cases := map[string]domain.Allocation{
		"duplicate student": {
			{SupervisorID: 1, StudentIDs: []int{1, 1}},
			{SupervisorID: 2, StudentIDs: []int{2}},
		},
		"over capacity": {
			{SupervisorID: 1, StudentIDs: []int{1, 2, 3}},
			{SupervisorID: 2, StudentIDs: []int{}},
		},
		"unknown student": {
			{SupervisorID: 1, StudentIDs: []int{1, 4}},
			{SupervisorID: 2, StudentIDs: []int{2}},
		},
		"unknown supervisor": {
			{SupervisorID: 1, StudentIDs: []int{1, 3}},
			{SupervisorID: 5, StudentIDs: []int{2}},
		},
		"repeated supervisor": {
			{SupervisorID: 1, StudentIDs: []int{1, 3}},
			{SupervisorID: 1, StudentIDs: []int{2}},
		},
		"missing supervisor": {
			{SupervisorID: 1, StudentIDs: []int{1, 3}},
		},
	}

	for name, allocation := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateAllocation(allocation, students, supervisors))
		})
	}
}
