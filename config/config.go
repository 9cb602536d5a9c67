package config

// Defaults matching the original CLI's hard-coded constants.
const (
	DefaultInferRounds  = 1000
	DefaultExpandRounds = 8
	DefaultShuffleSize  = 7
	DefaultSeed         = 1337
)

// Config collects the per-run numeric settings a search command needs.
// Zero values are not valid configuration; callers build one with New and
// the With* options, then call Validate before using it.
type Config struct {
	Rounds                   int
	Seed                     int64
	ShuffleSize              int
	StrictSimpleGapExclusion bool
}

// Option mutates a Config during construction.
type Option func(cfg *Config)

// New returns a Config seeded with the infer command's defaults, then
// applies each Option in order. Later options override earlier ones.
func New(opts ...Option) *Config {
	cfg := &Config{
		Rounds:                   DefaultInferRounds,
		Seed:                     DefaultSeed,
		ShuffleSize:              DefaultShuffleSize,
		StrictSimpleGapExclusion: false,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRounds overrides the outer search-round count.
func WithRounds(rounds int) Option {
	return func(cfg *Config) { cfg.Rounds = rounds }
}

// WithSeed overrides the shuffle RNG seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.Seed = seed }
}

// WithShuffleSize overrides the number of random moves applied to a bucket
// each time it is reset.
func WithShuffleSize(size int) Option {
	return func(cfg *Config) { cfg.ShuffleSize = size }
}

// WithStrictSimpleGapExclusion toggles Open Question (a): when strict, a
// column in which some sequence carries a Gap, and Gap is not the repeated
// residue, is classified Standard instead of Simple.
func WithStrictSimpleGapExclusion(strict bool) Option {
	return func(cfg *Config) { cfg.StrictSimpleGapExclusion = strict }
}

// Validate reports whether cfg's fields are usable. Rounds must be
// positive; RunBuckets runs that many outer rounds. ShuffleSize must be
// non-negative.
func (cfg *Config) Validate() error {
	if cfg.Rounds <= 0 {
		return ErrInvalidRounds
	}
	if cfg.ShuffleSize < 0 {
		return ErrInvalidShuffleSize
	}
	return nil
}
