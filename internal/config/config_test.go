package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Allocate.PopulationSize)
	assert.Equal(t, 10000, cfg.Allocate.Generations)
	assert.InDelta(t, 0.6, cfg.Allocate.CrossoverFraction, 1e-9)
	assert.InDelta(t, 0.4, cfg.Allocate.MutationRate, 1e-9)
	assert.Equal(t, "part_b.txt", cfg.Allocate.LogFile)

	assert.Equal(t, 10, cfg.Evolve.PopulationSize)
	assert.Equal(t, 30, cfg.Evolve.Length)
	assert.Equal(t, 1000, cfg.Evolve.Generations)
	assert.InDelta(t, 0.3, cfg.Evolve.MutationRate, 1e-9)
	assert.Equal(t, []string{"Onemax", "Evolve", "Landscape", "Evolve2"}, cfg.Evolve.Problems)

	assert.False(t, cfg.Plot.Enabled)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ALLOCATE_POPULATION_SIZE", "40")
	t.Setenv("EVOLVE_PROBLEMS", "Onemax,Landscape")
	t.Setenv("SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Allocate.PopulationSize)
	assert.Equal(t, []string{"Onemax", "Landscape"}, cfg.Evolve.Problems)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"ALLOCATE_MUTATION_RATE":      "1.5",
		"ALLOCATE_POPULATION_SIZE":    "1",
		"ALLOCATE_CROSSOVER_FRACTION": "0",
		"EVOLVE_LENGTH":               "0",
		"LOG_LEVEL":                   "verbose",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigRejectsUnparsableValues(t *testing.T) {
	t.Setenv("EVOLVE_GENERATIONS", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	assert.Equal(t, "DEBUG", cfg.SlogLevel().String())

	cfg.LogLevel = "info"
	assert.Equal(t, "INFO", cfg.SlogLevel().String())
}
