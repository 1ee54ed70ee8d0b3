package identifier

// Config collects the candidate-cluster shaping knobs shared by every
// identifier family.
type Config struct {
	NeverCritical      []string
	MaximumCandidates  int
	MinClusterPower    *float64
	TryAllCombinations bool
}

// Option configures a Config.
type Option func(*Config)

func defaultConfig() Config {
	return Config{}
}

// WithNeverCritical excludes the named generators from ever being
// considered critical, regardless of their ranking.
func WithNeverCritical(names ...string) Option {
	return func(c *Config) { c.NeverCritical = names }
}

// WithMaximumCandidates caps the number of candidate cluster pairs
// CandidateClusters returns. A value of 0 or below means unlimited.
func WithMaximumCandidates(n int) Option {
	return func(c *Config) { c.MaximumCandidates = n }
}

// WithMinClusterPower discards candidate clusters (and retries with a
// smaller threshold, for threshold-based identifiers) whose aggregate
// active power falls under p.
func WithMinClusterPower(p float64) Option {
	return func(c *Config) { c.MinClusterPower = &p }
}

// WithTryAllCombinations switches candidate generation from the default
// suffix-slice shrink to a full powerset of the ranked candidates.
func WithTryAllCombinations(v bool) Option {
	return func(c *Config) { c.TryAllCombinations = v }
}
