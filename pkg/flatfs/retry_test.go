package flatfs

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetryFirstAttempt(t *testing.T) {
	calls := 0

	res, err := retryValue(6, time.Millisecond, func() (int, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	require.Equal(t, 42, res)
	require.Equal(t, 1, calls)
}

func TestRetryTransientFailure(t *testing.T) {
	calls := 0

	res, err := retryValue(6, time.Millisecond, func() (string, error) {
		if calls++; calls < 3 {
			return "", errors.New("busy")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	require.Equal(t, "ok", res)
	require.Equal(t, 3, calls)
}

func TestRetryExhausted(t *testing.T) {
	calls := 0

	_, err := retryValue(6, time.Millisecond, func() (int, error) {
		calls++
		return 0, fmt.Errorf("attempt %d failed", calls)
	})

	require.Equal(t, 6, calls)
	// The last attempt's error comes back verbatim.
	require.EqualError(t, err, "attempt 6 failed")
}
