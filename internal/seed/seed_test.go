package seed

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/ga-lab/internal/config"
	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
	"github.com/sysu-ecnc-dev/ga-lab/internal/repository"
)

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Allocate.StudentsFile = filepath.Join(dir, "Student-choices.csv")
	cfg.Allocate.SupervisorsFile = filepath.Join(dir, "Supervisors.csv")
	return repository.NewRepository(cfg)
}

func TestSeedRandomDataSet(t *testing.T) {
	repo := newRepository(t)
	rng := rand.New(rand.NewPCG(3, 4))

	students, supervisors, err := SeedRandomDataSet(repo, rng, Options{Students: 46, Supervisors: 12, Prefs: 4})
	require.NoError(t, err)
	assert.Equal(t, 46, domain.TotalCapacity(supervisors))

	gotStudents, err := repo.GetAllStudents()
	require.NoError(t, err)
	assert.Equal(t, students, gotStudents)

	gotSupervisors, err := repo.GetAllSupervisors()
	require.NoError(t, err)
	assert.Equal(t, supervisors, gotSupervisors)
}

func TestSeedRejectsInvalidOptions(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for name, opts := range map[string]Options{
		"no students":    {Students: 0, Supervisors: 2, Prefs: 1},
		"no supervisors": {Students: 5, Supervisors: 0, Prefs: 1},
		"too many prefs": {Students: 5, Supervisors: 2, Prefs: 3},
		"no preferences": {Students: 5, Supervisors: 2, Prefs: 0},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := SeedRandomDataSet(newRepository(t), rng, opts)
			assert.Error(t, err)
		})
	}
}
