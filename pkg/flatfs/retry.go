package flatfs

import "time"

// Constant-delay retry bounds shared by all retried filesystem calls. Local
// filesystem failures worth retrying are momentary contention (a racing
// mkdir, a short-lived lock), so the delay is flat and the budget small.
const (
	retryDelay    = 200 * time.Millisecond
	retryAttempts = 6
)

// retryValue runs op up to attempts times, sleeping delay between attempts,
// and returns the first success or the last attempt's error verbatim. Every
// error kind is retried the same way, call sites are expected to wrap only
// filesystem operations, never validation.
func retryValue[T any](attempts int, delay time.Duration, op func() (T, error)) (T, error) {
	var (
		res T
		err error
	)

	for i := 0; i < attempts; i++ {
		res, err = op()
		if err == nil {
			return res, nil
		}

		if i < attempts-1 {
			time.Sleep(delay)
		}
	}

	return res, err
}

// retry is retryValue for operations without a result, bound to the store's
// budget.
func (s *Store) retry(op func() error) error {
	_, err := retryValue(s.retryAttempts, s.retryDelay, func() (struct{}, error) {
		return struct{}{}, op()
	})

	return err
}
