package stream

// StreamOption configures Decoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	entities map[string]string
}

// WithEntities makes the named entities resolvable, in addition to the five
// predefined ones. xml.HTMLEntity is a ready-made table.
func WithEntities(m map[string]string) StreamOption {
	return func(opts *streamOpts) {
		opts.entities = m
	}
}
