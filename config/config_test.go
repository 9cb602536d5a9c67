package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winstonewert/aminograph/config"
)

func TestNew_AppliesInferDefaults(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, config.DefaultInferRounds, cfg.Rounds)
	assert.Equal(t, int64(config.DefaultSeed), cfg.Seed)
	assert.Equal(t, config.DefaultShuffleSize, cfg.ShuffleSize)
	assert.False(t, cfg.StrictSimpleGapExclusion)
	require.NoError(t, cfg.Validate())
}

func TestNew_OptionsOverrideDefaults(t *testing.T) {
	cfg := config.New(
		config.WithRounds(config.DefaultExpandRounds),
		config.WithSeed(42),
		config.WithShuffleSize(3),
		config.WithStrictSimpleGapExclusion(true),
	)
	assert.Equal(t, config.DefaultExpandRounds, cfg.Rounds)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.ShuffleSize)
	assert.True(t, cfg.StrictSimpleGapExclusion)
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsOutOfRangeFields(t *testing.T) {
	negativeRounds := config.New(config.WithRounds(0))
	assert.ErrorIs(t, negativeRounds.Validate(), config.ErrInvalidRounds)

	negativeShuffle := config.New(config.WithShuffleSize(-1))
	assert.ErrorIs(t, negativeShuffle.Validate(), config.ErrInvalidShuffleSize)
}
