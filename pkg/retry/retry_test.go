package retry_test

import (
	"context"
	"errors"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/optum/vmdeploy/pkg/retry"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var logger *logrus.Entry

func TestMain(m *testing.M) {

	log := logrus.New()
	log.Level = logrus.InfoLevel
	logger = log.WithField("", "")

	flag.Parse()
	exitCode := m.Run()

	// Exit
	os.Exit(exitCode)
}

func TestDoRetry_ShouldIncrementAttempt(t *testing.T) {
	t.Parallel()
	var i int

	err := retry.DoWithRetry(context.Background(), "create storage account", 3, 1*time.Millisecond, logger, func(attempt int) error {

		require.Equal(t, i, attempt, "attempt should increment")
		i++
		return errors.New("error")
	})

	require.Equal(t, 4, i)
	require.IsType(t, retry.MaxRetriesExceeded{}, err)
	require.EqualError(t, errors.Unwrap(err), "error")
}

func TestDoRetry_ShouldStopOnSuccess(t *testing.T) {
	t.Parallel()
	var calls int

	err := retry.DoWithRetry(context.Background(), "create storage account", 3, 1*time.Millisecond, logger, func(attempt int) error {
		calls++
		if attempt == 1 {
			return nil
		}
		return errors.New("name taken")
	})

	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestDoRetry_ShouldStopOnFatalError(t *testing.T) {
	t.Parallel()
	var calls int
	quota := errors.New("quota exceeded")

	err := retry.DoWithRetry(context.Background(), "create storage account", 3, 1*time.Millisecond, logger, func(attempt int) error {
		calls++
		return retry.FatalError{Underlying: quota}
	})

	require.Equal(t, quota, err)
	require.Equal(t, 1, calls)
}

func TestDoRetry_ShouldStopWhenContextIsCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.DoWithRetry(ctx, "create storage account", 3, time.Hour, logger, func(attempt int) error {
		return errors.New("name taken")
	})

	require.ErrorIs(t, err, context.Canceled)
}
