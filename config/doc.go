// Package config collects the per-run numeric settings every CLI command
// needs (search round count, RNG seed, shuffle size, the Simple-position
// Gap-exclusion toggle) into a single validated struct.
package config
