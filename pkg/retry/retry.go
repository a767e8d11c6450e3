// Package retry wraps calls to external providers with bounded, jittered
// exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy suits a synchronous request path: three attempts within
// roughly a second.
var DefaultPolicy = Policy{
	MaxAttempts:     3,
	InitialInterval: 200 * time.Millisecond,
	MaxInterval:     2 * time.Second,
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Classifier decides whether an error is transient. Nil means every error is
// retried.
type Classifier func(error) bool

// Do calls fn until it succeeds, returns a permanent error, the classifier
// rejects the error, attempts run out, or ctx is done. The last error from fn
// is returned unwrapped.
func Do(ctx context.Context, p Policy, retryable Classifier, op string, fn func(context.Context) error) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialInterval
	eb.MaxInterval = p.MaxInterval
	eb.MaxElapsedTime = 0

	var b backoff.BackOff = backoff.WithMaxRetries(eb, uint64(p.MaxAttempts-1)) // #nosec G115
	b = backoff.WithContext(b, ctx)

	log := slogx.FromContext(ctx)
	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		err := fn(ctx)
		if err != nil && retryable != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b, func(err error, wait time.Duration) {
		log.Warn("retrying provider call", "op", op, "attempt", attempt, "wait", wait, "err", err)
	})

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	return err
}
