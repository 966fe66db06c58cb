package flatfs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Delete removes the value stored under key. Deleting a key that is not
// present is an error, there is no idempotent delete.
func (s *Store) Delete(key string) (err error) {
	defer func() { s.metrics.observe(opDelete, err) }()

	if err = verifyKey(key); err != nil {
		return err
	}

	p := s.treePath(key)

	err = s.retry(func() error { return os.Remove(p) })
	if err != nil {
		return fmt.Errorf("remove file %q: %w", p, err)
	}

	s.log.Debug("store operation",
		zap.String("op", "DELETE"),
		zap.String("key", key))

	return nil
}
