package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/ga-lab/internal/config"
	"github.com/sysu-ecnc-dev/ga-lab/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadStudents(t *testing.T) {
	path := writeFile(t, "students.csv", `"Student1","3","1","2"
"Student2", "2", "3"
3,1
`)

	students, err := ReadStudents(path)
	require.NoError(t, err)
	require.Len(t, students, 3)

	assert.Equal(t, 1, students[0].ID)
	assert.Equal(t, []int{3, 1, 2}, students[0].Preferences)
	assert.Equal(t, 2, students[1].ID)
	assert.Equal(t, []int{2, 3}, students[1].Preferences)
	assert.Equal(t, 3, students[2].ID)
	assert.Equal(t, []int{1}, students[2].Preferences)
}

func TestReadStudentsMalformed(t *testing.T) {
	cases := map[string]struct {
		content string
		line    int
		field   int
	}{
		"non-numeric preference": {content: "1,2,x\n", line: 1, field: 2},
		"missing preferences":    {content: "1,2\n2\n", line: 2, field: 1},
		"missing id":             {content: "1,2\nabc,1\n", line: 2, field: 0},
		"duplicate id":           {content: "1,2\n1,3\n", line: 2, field: 0},
		"negative id":            {content: "-4,2\n", line: 1, field: 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "students.csv", tc.content)

			_, err := ReadStudents(path)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "%v", err)
			assert.Equal(t, path, parseErr.Path)
			assert.Equal(t, tc.line, parseErr.Line)
			assert.Equal(t, tc.field, parseErr.Field)
		})
	}
}

func TestReadSupervisors(t *testing.T) {
	path := writeFile(t, "supervisors.csv", `"Supervisor1","2"
"Supervisor2","1"
`)

	supervisors, err := ReadSupervisors(path)
	require.NoError(t, err)
	require.Len(t, supervisors, 2)

	assert.Equal(t, domain.Supervisor{ID: 1, Capacity: 2}, *supervisors[0])
	assert.Equal(t, domain.Supervisor{ID: 2, Capacity: 1}, *supervisors[1])
	assert.Equal(t, 3, domain.TotalCapacity(supervisors))
}

func TestReadSupervisorsMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"extra field":       "1,2,3\n",
		"missing capacity":  "1\n",
		"bad capacity":      "1,two\n",
		"negative capacity": "1,-2\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "supervisors.csv", content)

			_, err := ReadSupervisors(path)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "%v", err)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := ReadStudents(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestGenerationLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "Onemax.txt")

	log, err := CreateGenerationLog(path)
	require.NoError(t, err)

	require.NoError(t, log.Record(domain.GenerationStat{Generation: 0, MeanFitness: 15}))
	require.NoError(t, log.Record(domain.GenerationStat{Generation: 1, MeanFitness: 16.5}))
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0 15\n1 16.5\n", string(data))
}

func TestRepositoryUsesConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Allocate.StudentsFile = writeFile(t, "s.csv", "1,1\n2,1\n")
	cfg.Allocate.SupervisorsFile = writeFile(t, "v.csv", "1,2\n")
	cfg.Evolve.OutputDir = dir

	repo := NewRepository(cfg)

	students, err := repo.GetAllStudents()
	require.NoError(t, err)
	assert.Len(t, students, 2)

	supervisors, err := repo.GetAllSupervisors()
	require.NoError(t, err)
	assert.Len(t, supervisors, 1)

	log, err := repo.CreateProblemLog("Evolve")
	require.NoError(t, err)
	require.NoError(t, log.Close())
	assert.FileExists(t, filepath.Join(dir, "Evolve.txt"))
}

func TestWriteThenReadDataSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	students := []*domain.Student{
		{ID: 1, Preferences: []int{2, 1}},
		{ID: 2, Preferences: []int{1}},
	}
	supervisors := []*domain.Supervisor{{ID: 1, Capacity: 1}, {ID: 2, Capacity: 1}}

	require.NoError(t, WriteStudents(filepath.Join(dir, "students.csv"), students))
	require.NoError(t, WriteSupervisors(filepath.Join(dir, "supervisors.csv"), supervisors))

	data, err := os.ReadFile(filepath.Join(dir, "students.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Student1,2,1\nStudent2,1\n", string(data))

	gotStudents, err := ReadStudents(filepath.Join(dir, "students.csv"))
	require.NoError(t, err)
	assert.Equal(t, students, gotStudents)

	gotSupervisors, err := ReadSupervisors(filepath.Join(dir, "supervisors.csv"))
	require.NoError(t, err)
	assert.Equal(t, supervisors, gotSupervisors)
}
