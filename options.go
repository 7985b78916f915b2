package lexgo

import "github.com/hupe1980/lexgo/query"

type options struct {
	logger         *Logger
	maxSegmentSize int
	similarity     query.Similarity
}

// Option configures Index constructor behavior.
type Option func(*options)

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMaxSegmentSize configures how many documents a segment holds before
// the index rolls over to a new one. Each segment is searched with its own
// independent iterator tree.
//
// Values below 1 fall back to the default.
func WithMaxSegmentSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultMaxSegmentSize
		}
		o.maxSegmentSize = n
	}
}

// WithSimilarity configures the term-frequency saturation function used by
// the term scorers. If nil is passed, query.DefaultSimilarity is used.
func WithSimilarity(sim query.Similarity) Option {
	return func(o *options) {
		o.similarity = sim
	}
}
