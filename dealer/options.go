package dealer

import "go.uber.org/zap"

// DefaultMaxAttempts bounds how many polynomials Deal samples before
// giving up on a zero contribution.
const DefaultMaxAttempts = 8

type options struct {
	logger      *zap.Logger
	maxAttempts int
}

// Option configures a Dealer or Recipient.
type Option func(*options)

// WithLogger sets the logger. Secret values are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxAttempts sets how many polynomials Deal may sample.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxAttempts = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:      zap.NewNop(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
