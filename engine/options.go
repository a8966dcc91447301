package engine

// ============================================================================
// FRAME OPTIONS — Functional options for BuildFrame()
// ============================================================================

// Option configures frame assembly via functional options.
type Option func(*config)

type config struct {
	IntakeTopN  int // categories shown on the intake-type chart
	OutcomeTopN int // categories shown on the outcome-type chart
}

// WithIntakeTopN caps the intake-type chart at n categories.
func WithIntakeTopN(n int) Option {
	return func(c *config) { c.IntakeTopN = n }
}

// WithOutcomeTopN caps the outcome-type chart at n categories.
func WithOutcomeTopN(n int) Option {
	return func(c *config) { c.OutcomeTopN = n }
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		IntakeTopN:  6,
		OutcomeTopN: 10,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
