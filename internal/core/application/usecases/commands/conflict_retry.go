package commands

import (
	"context"
	"errors"
	"time"

	"careshare/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// DefaultConflictRetries is the number of extra attempts made after a store conflict.
const DefaultConflictRetries = 3

const (
	conflictInitialInterval = 10 * time.Millisecond
	conflictMaxInterval     = 200 * time.Millisecond
)

// ConflictRetry re-runs a whole unit of work when the store reports a
// concurrent modification. Any other error ends the loop at once.
type ConflictRetry struct {
	maxRetries uint64
}

// NewConflictRetry returns a policy allowing maxRetries extra attempts.
// Zero disables retries.
func NewConflictRetry(maxRetries uint64) ConflictRetry {
	return ConflictRetry{maxRetries: maxRetries}
}

func (r ConflictRetry) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = conflictInitialInterval
	exp.MaxInterval = conflictMaxInterval
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, r.maxRetries), ctx)
}

func runWithConflictRetry[T any](ctx context.Context, policy ConflictRetry, op func() (T, error)) (T, error) {
	return backoff.RetryWithData(func() (T, error) {
		result, err := op()
		if err != nil && !errors.Is(err, errs.ErrStoreConflict) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}, policy.newBackOff(ctx))
}
