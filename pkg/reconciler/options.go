package reconciler

import (
	"github.com/agentstation/utc"

	"github.com/agentstation/ctrlmap/pkg/constants"
	"github.com/agentstation/ctrlmap/pkg/errors"
)

// options configures a reconciler.
type options struct {
	safeguardPrefix string
	now             func() utc.Time
}

func defaultOptions() *options {
	return &options{
		safeguardPrefix: constants.SafeguardPrefix,
		now:             utc.Now,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithSafeguardPrefix sets the label put in front of numeric CIS
// identifiers ("CIS-" by default).
func WithSafeguardPrefix(prefix string) Option {
	return func(o *options) error {
		if prefix == "" {
			return &errors.ValidationError{
				Field:   "safeguard_prefix",
				Message: "cannot be empty",
			}
		}
		o.safeguardPrefix = prefix
		return nil
	}
}

// WithClock sets the time source used for result metadata.
func WithClock(now func() utc.Time) Option {
	return func(o *options) error {
		if now == nil {
			return &errors.ValidationError{
				Field:   "clock",
				Message: "cannot be nil",
			}
		}
		o.now = now
		return nil
	}
}
