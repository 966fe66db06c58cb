package flatfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Put stores value under key, replacing any previous value.
//
// The value is first written to a temporary sibling file and then renamed
// onto the final path. Rename is atomic with respect to readers opening the
// destination name, so a concurrent Get never observes a partially written
// value and concurrent puts of the same key resolve last-writer-wins. A
// crash between write and rename leaves at most a stray temporary file.
func (s *Store) Put(key string, value []byte) (err error) {
	defer func() { s.metrics.observe(opPut, err) }()

	if err = verifyKey(key); err != nil {
		return err
	}

	if dir := s.shard.Dir(key); dir != "" {
		dirPath := filepath.Join(s.root, dir)

		if _, statErr := os.Stat(dirPath); statErr != nil {
			mkdirErr := s.retry(func() error { return os.Mkdir(dirPath, s.perm) })
			// A racing writer creating the same shard directory first is
			// success, not failure.
			if mkdirErr != nil && !errors.Is(mkdirErr, fs.ErrExist) {
				return fmt.Errorf("create shard directory %q: %w", dirPath, mkdirErr)
			}
		}
	}

	tmpPath := s.tempPath(key)

	err = s.retry(func() error { return os.WriteFile(tmpPath, value, s.perm) })
	if err != nil {
		return fmt.Errorf("write temporary file %q: %w", tmpPath, err)
	}

	p := s.treePath(key)

	err = s.retry(func() error { return os.Rename(tmpPath, p) })
	if err != nil {
		return fmt.Errorf("rename %q to %q: %w", tmpPath, p, err)
	}

	s.log.Debug("store operation",
		zap.String("op", "PUT"),
		zap.String("key", key),
		zap.Int("size", len(value)))

	return nil
}
