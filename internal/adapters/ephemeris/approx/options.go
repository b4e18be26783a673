package approx

// Option applies a configuration option to the Adapter.
type Option func(*Adapter)

// WithAyanamsaOffset shifts the computed ayanamsa by a constant, letting
// callers reconcile against an external ephemeris reading.
func WithAyanamsaOffset(degrees float64) Option {
	return func(a *Adapter) {
		a.ayanamsaOffset = degrees
	}
}
