package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReplayConfig(t *testing.T) {
	t.Run("optional missing config", func(t *testing.T) {
		config, err := loadReplayConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
		require.NoError(t, err)
		assert.Equal(t, 1, config.RecomputeEvery)
		assert.Equal(t, 200, config.Tracker.SamplingLength)
	})

	t.Run("required missing config", func(t *testing.T) {
		_, err := loadReplayConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
		assert.Error(t, err)
	})

	t.Run("default config", func(t *testing.T) {
		config, err := loadReplayConfig("../../peaktrack.yaml", false)
		require.NoError(t, err)
		assert.Equal(t, "BTCUSDT", config.Symbol)
		assert.Equal(t, 5, config.RecomputeEvery)
		assert.Equal(t, 100, config.RoundLength)
		assert.Equal(t, filepath.Join("..", "..", "testdata", "samples.csv"), config.SamplesFile)
	})
}
