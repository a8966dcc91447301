package dataset

// ============================================================================
// LOAD OPTIONS — Functional options for Load()
// ============================================================================

// Option configures loading behavior.
type Option func(*config)

type config struct {
	SyntheticRows int // fallback table size when the source is unavailable
}

// WithSyntheticRows sets the size of the synthetic fallback table.
func WithSyntheticRows(n int) Option {
	return func(c *config) {
		c.SyntheticRows = n
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{SyntheticRows: DefaultSyntheticRows}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
