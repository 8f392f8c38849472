package retry

import (
	"context"
	"fmt"
	"time"

	"k8s.io/utils/clock"
)

const (
	DefaultAttempts = 5
	DefaultInterval = 5 * time.Second
)

// Disposition tells Batch what to do with a failed item.
type Disposition int

const (
	// Retry keeps the item in the remaining set for the next attempt.
	Retry Disposition = iota
	// Drop removes the item from future attempts without aborting the batch.
	Drop
)

// Classifier maps an operation error to a Disposition.
type Classifier func(error) Disposition

// Config holds retry configuration.
type Config struct {
	Attempts int
	Interval time.Duration
	Clock    clock.Clock
	// OnFailure is called for every failed item on every attempt.
	OnFailure func(attempt int, key string, err error, d Disposition)
}

// Option is a functional option for retry configuration.
type Option func(*Config)

func WithAttempts(n int) Option {
	return func(c *Config) {
		c.Attempts = n
	}
}

func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithClock replaces the clock used for sleeping between attempts.
func WithClock(clk clock.Clock) Option {
	return func(c *Config) {
		c.Clock = clk
	}
}

func WithFailureHook(fn func(attempt int, key string, err error, d Disposition)) Option {
	return func(c *Config) {
		c.OnFailure = fn
	}
}

func newConfig(opts []Option) *Config {
	cfg := &Config{
		Attempts: DefaultAttempts,
		Interval: DefaultInterval,
		Clock:    clock.RealClock{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	return cfg
}

// PartialTeardownWarning reports a resource that was still not removable after
// the whole attempt budget. It is a warning: callers keep going.
type PartialTeardownWarning struct {
	Resource string
	Attempts int
	Err      error
}

func (w *PartialTeardownWarning) Error() string {
	return fmt.Sprintf("%s not removed after %d attempts: %v", w.Resource, w.Attempts, w.Err)
}

func (w *PartialTeardownWarning) Unwrap() error {
	return w.Err
}

// Failure is an item dropped by the classifier.
type Failure[T any] struct {
	Item    T
	Key     string
	Attempt int
	Err     error
}

// Result is the outcome of a Batch.
type Result[T any] struct {
	Succeeded []T
	Dropped   []Failure[T]
	Remaining []T
	Warnings  []*PartialTeardownWarning
	// Attempts is the number of attempts actually made.
	Attempts int
}

// Batch runs op for every item, retrying items the classifier marks Retry until
// none remain or the attempt budget is spent. It sleeps Interval between
// attempts, never after the last one.
func Batch[T any](ctx context.Context, items []T, key func(T) string, op func(context.Context, T) error, classify Classifier, opts ...Option) Result[T] {
	cfg := newConfig(opts)

	var res Result[T]
	remaining := append([]T(nil), items...)
	lastErr := make(map[string]error)

	for attempt := 1; attempt <= cfg.Attempts && len(remaining) > 0; attempt++ {
		if attempt > 1 {
			cfg.Clock.Sleep(cfg.Interval)
		}
		res.Attempts = attempt

		var next []T
		for _, item := range remaining {
			k := key(item)
			err := op(ctx, item)
			if err == nil {
				res.Succeeded = append(res.Succeeded, item)
				delete(lastErr, k)
				continue
			}

			d := classify(err)
			if cfg.OnFailure != nil {
				cfg.OnFailure(attempt, k, err, d)
			}
			if d == Drop {
				res.Dropped = append(res.Dropped, Failure[T]{Item: item, Key: k, Attempt: attempt, Err: err})
				delete(lastErr, k)
				continue
			}
			lastErr[k] = err
			next = append(next, item)
		}
		remaining = next
	}

	res.Remaining = remaining
	for _, item := range remaining {
		k := key(item)
		res.Warnings = append(res.Warnings, &PartialTeardownWarning{
			Resource: k,
			Attempts: res.Attempts,
			Err:      lastErr[k],
		})
	}
	return res
}

// Do retries a single operation. It returns nil on success, the error itself
// when the classifier drops it, or a *PartialTeardownWarning when the budget
// runs out.
func Do(ctx context.Context, name string, op func(context.Context) error, classify Classifier, opts ...Option) error {
	res := Batch(ctx, []string{name},
		func(s string) string { return s },
		func(ctx context.Context, _ string) error { return op(ctx) },
		classify, opts...)
	switch {
	case len(res.Dropped) > 0:
		return res.Dropped[0].Err
	case len(res.Warnings) > 0:
		return res.Warnings[0]
	}
	return nil
}

// Always retries every error.
func Always(error) Disposition { return Retry }
