// Package sampledata generates synthetic initiative and composition tables
// for demos, load checks and tests.
package sampledata

// Default generation parameters.
const (
	DefaultCompanies   = 12
	DefaultInitiatives = 150
	DefaultStartYear   = 2021
	DefaultYears       = 3
	DefaultSeed        = 1
)

// Config holds generation parameters. Equal configs produce equal datasets.
type Config struct {
	Companies   int   // number of distinct companies
	Initiatives int   // total initiative rows
	StartYear   int   // first reporting year
	Years       int   // number of consecutive years
	Seed        int64 // random seed
}

// Option applies a configuration option to Config.
type Option func(*Config)

// WithCompanies sets the number of companies.
func WithCompanies(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Companies = n
		}
	}
}

// WithInitiatives sets the number of initiative rows.
func WithInitiatives(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.Initiatives = n
		}
	}
}

// WithYears sets the reporting period.
func WithYears(start, count int) Option {
	return func(c *Config) {
		if start > 0 && count > 0 {
			c.StartYear = start
			c.Years = count
		}
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// NewConfig returns defaults with opts applied.
func NewConfig(opts ...Option) Config {
	c := Config{
		Companies:   DefaultCompanies,
		Initiatives: DefaultInitiatives,
		StartYear:   DefaultStartYear,
		Years:       DefaultYears,
		Seed:        DefaultSeed,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
