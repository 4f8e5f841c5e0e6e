package retry

// This code follows: https://github.com/gruntwork-io/terratest/blob/master/modules/retry/retry.go

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// DoWithRetry runs the specified action. If it returns nil, return nil. If it returns a FatalError, return its
// underlying error immediately. If it returns any other error, sleep for sleepBetweenRetries and try again, up to a
// maximum of maxRetries retries. If maxRetries is exceeded, return a MaxRetriesExceeded error.
func DoWithRetry(ctx context.Context, actionDescription string, maxRetries int, sleepBetweenRetries time.Duration, logger *logrus.Entry, action func(attempt int) error) error {
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		logger.Debugf(actionDescription)

		err := action(i)
		if err == nil {
			return nil
		}

		if fatal, ok := err.(FatalError); ok {
			return fatal.Underlying
		}

		lastErr = err

		// don't sleep after the final retry attempt
		if i < maxRetries {
			logger.WithError(err).Warningf("%s returned an error: %s. Sleeping for %s and will try again. Retry Count: %v.", actionDescription, err.Error(), sleepBetweenRetries, i)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sleepBetweenRetries):
			}
		} else {
			logger.WithError(err).Warningf("%s returned an error: %s. Retry Count: %v.", actionDescription, err.Error(), i)
		}
	}

	return MaxRetriesExceeded{Description: actionDescription, MaxRetries: maxRetries, Last: lastErr}
}

// MaxRetriesExceeded is an error that occurs when the maximum amount of retries is exceeded.
type MaxRetriesExceeded struct {
	Description string
	MaxRetries  int
	Last        error
}

func (err MaxRetriesExceeded) Error() string {
	return fmt.Sprintf("'%s' unsuccessful after %d retries: %v", err.Description, err.MaxRetries, err.Last)
}

func (err MaxRetriesExceeded) Unwrap() error {
	return err.Last
}

// FatalError is an error returned by an action to stop retrying immediately.
type FatalError struct {
	Underlying error
}

func (err FatalError) Error() string {
	return fmt.Sprintf("FatalError{Underlying: %v}", err.Underlying)
}
