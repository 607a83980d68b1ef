package dedupe

// Option applies a configuration option to the key tracker.
type Option func(*keyTracker)

// WithMaxSize bounds how many keys are remembered. Once full, the oldest
// key is forgotten first. A value <= 0 keeps every key.
func WithMaxSize(maxSize int) Option {
	return func(t *keyTracker) {
		t.maxSize = maxSize
	}
}
