package campaign

import (
	"fmt"

	"github.com/QuangTung97/crowdfund-admin/pkg/units"
	"go.uber.org/zap"
)

// BatchPolicy decides what a batch fetch does when a single record fails
type BatchPolicy int

const (
	// BatchPolicyPartial logs and skips a failing record, the rest of the batch is returned
	BatchPolicyPartial BatchPolicy = 1

	// BatchPolicyStrict fails the whole batch on the first failing record
	BatchPolicyStrict BatchPolicy = 2
)

// ParseBatchPolicy parses "partial" or "strict"
func ParseBatchPolicy(s string) (BatchPolicy, error) {
	switch s {
	case "", "partial":
		return BatchPolicyPartial, nil
	case "strict":
		return BatchPolicyStrict, nil
	default:
		return 0, fmt.Errorf("invalid batch policy: %q", s)
	}
}

// String ...
func (p BatchPolicy) String() string {
	if p == BatchPolicyStrict {
		return "strict"
	}
	return "partial"
}

type serviceOptions struct {
	batchPolicy      BatchPolicy
	decimals         int32
	fetchConcurrency int
	logger           *zap.Logger
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		batchPolicy:      BatchPolicyPartial,
		decimals:         units.DefaultDecimals,
		fetchConcurrency: 8,
		logger:           zap.NewNop(),
	}
}

func newServiceOptions(options ...Option) serviceOptions {
	opts := defaultServiceOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *serviceOptions)

// WithBatchPolicy ...
func WithBatchPolicy(policy BatchPolicy) Option {
	return func(opts *serviceOptions) {
		opts.batchPolicy = policy
	}
}

// WithDecimals sets the number of decimals of the base currency
func WithDecimals(decimals int32) Option {
	return func(opts *serviceOptions) {
		opts.decimals = decimals
	}
}

// WithFetchConcurrency limits the number of in-flight record fetches, values < 1 mean 1
func WithFetchConcurrency(n int) Option {
	return func(opts *serviceOptions) {
		if n < 1 {
			n = 1
		}
		opts.fetchConcurrency = n
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *serviceOptions) {
		opts.logger = logger
	}
}
