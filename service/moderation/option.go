package moderation

import (
	"time"

	"go.uber.org/zap"
)

// Navigator is called after a mutation settles, it must not block
type Navigator func(path string)

type controllerOptions struct {
	navigator Navigator
	recorder  Recorder
	metrics   *Metrics
	logger    *zap.Logger
	now       func() time.Time
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		navigator: func(string) {},
		recorder:  nopRecorder{},
		metrics:   NewMetrics(),
		logger:    zap.NewNop(),
		now:       time.Now,
	}
}

// Option ...
type Option func(opts *controllerOptions)

// WithNavigator ...
func WithNavigator(nav Navigator) Option {
	return func(opts *controllerOptions) {
		opts.navigator = nav
	}
}

// WithRecorder ...
func WithRecorder(r Recorder) Option {
	return func(opts *controllerOptions) {
		opts.recorder = r
	}
}

// WithMetrics ...
func WithMetrics(m *Metrics) Option {
	return func(opts *controllerOptions) {
		opts.metrics = m
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *controllerOptions) {
		opts.logger = logger
	}
}

// WithNowFunc ...
func WithNowFunc(now func() time.Time) Option {
	return func(opts *controllerOptions) {
		opts.now = now
	}
}
