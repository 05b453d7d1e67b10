package priority

import "go.uber.org/zap"

// options defines the configuration of a queue.
type options struct {
	degree int         // Degree of the btrees backing both indices
	logger *zap.Logger // Receives rollback, merge and copy events
}

// Option is a function that configures a queue.
type Option func(*options)

// WithDegree sets the degree of the btrees used for both indices. Values
// below 2 are ignored.
func WithDegree(degree int) Option {
	return func(o *options) {
		if degree >= 2 {
			o.degree = degree
		}
	}
}

// WithLogger sets the logger used by the queue.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		degree: 16,
		logger: zap.NewNop(),
	}
}
