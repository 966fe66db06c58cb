package flatfs

import (
	"fmt"
	"os"
)

// Get returns the value stored under key. A missing key surfaces as a
// wrapped fs.ErrNotExist after the retry budget is exhausted.
func (s *Store) Get(key string) (value []byte, err error) {
	defer func() { s.metrics.observe(opGet, err) }()

	if err = verifyKey(key); err != nil {
		return nil, err
	}

	p := s.treePath(key)

	value, err = retryValue(s.retryAttempts, s.retryDelay, func() ([]byte, error) { return os.ReadFile(p) })
	if err != nil {
		return nil, fmt.Errorf("read file %q: %w", p, err)
	}

	return value, nil
}

// GetSize returns the byte length of the value stored under key without
// reading its contents. A single metadata query, not retried.
func (s *Store) GetSize(key string) (size uint64, err error) {
	defer func() { s.metrics.observe(opGetSize, err) }()

	if err = verifyKey(key); err != nil {
		return 0, err
	}

	p := s.treePath(key)

	fi, err := os.Stat(p)
	if err != nil {
		return 0, fmt.Errorf("stat file %q: %w", p, err)
	}

	return uint64(fi.Size()), nil
}
