package flatfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Iterate walks over every stored entry and calls handler with the key and
// value of each. The walk is single-pass and lazy: values are read one at a
// time, and a non-nil error from handler stops the walk immediately and is
// returned as is, which is also how a caller consumes only the first n
// entries.
//
// The shard descriptor and temporary files are never surfaced. Entries put
// or deleted while the walk is in flight may or may not be observed.
//
// A failure to read an entry is passed to errorHandler together with the
// entry's key; the walk continues if errorHandler returns nil and aborts
// with its error otherwise. A nil errorHandler aborts the walk on the first
// failure. Directory read failures are reported the same way, with an empty
// key.
func (s *Store) Iterate(handler func(key string, value []byte) error, errorHandler func(key string, err error) error) error {
	return s.iterate(true, handler, errorHandler)
}

// IterateKeys is Iterate for the keys alone: no file contents are read, so
// per-entry read failures cannot occur.
func (s *Store) IterateKeys(handler func(key string) error) error {
	return s.iterate(false, func(key string, _ []byte) error { return handler(key) }, nil)
}

// IterateValues is Iterate for the values alone.
func (s *Store) IterateValues(handler func(value []byte) error, errorHandler func(key string, err error) error) error {
	return s.iterate(true, func(_ string, value []byte) error { return handler(value) }, errorHandler)
}

// iterate drives the walk with an explicit stack of pending directories
// instead of recursion, so memory stays proportional to tree depth and
// stopping early is simply not pulling further.
func (s *Store) iterate(readValues bool, handler func(key string, value []byte) error, errorHandler func(key string, err error) error) error {
	pending := []string{s.root}

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			err = fmt.Errorf("read directory %q: %w", dir, err)
			if errorHandler == nil {
				return err
			}
			if err = errorHandler("", err); err != nil {
				return err
			}
			continue
		}

		for _, entry := range entries {
			p := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				pending = append(pending, p)
				continue
			}

			key, ok := entryKey(entry.Name())
			if !ok {
				continue
			}

			var value []byte
			if readValues {
				value, err = os.ReadFile(p)
				if err != nil {
					err = fmt.Errorf("read file %q: %w", p, err)
					if errorHandler == nil {
						return err
					}
					if err = errorHandler(key, err); err != nil {
						return err
					}
					continue
				}
			}

			if err = handler(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// entryKey recovers the key from a value file's name. Anything else under
// the root (the shard descriptor, temporary files) does not carry the data
// extension and is skipped.
func entryKey(name string) (string, bool) {
	key, ok := strings.CutSuffix(name, dataExtension)
	if !ok || key == "" {
		return "", false
	}

	return key, true
}

// DiskUsage returns the total size in bytes of every regular file under the
// store root, the shard descriptor included. The walk is best-effort: it is
// not consistent with concurrent writers.
func (s *Store) DiskUsage() (uint64, error) {
	var total uint64

	pending := []string{s.root}

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return 0, fmt.Errorf("read directory %q: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				pending = append(pending, filepath.Join(dir, entry.Name()))
				continue
			}

			fi, err := entry.Info()
			if err != nil {
				return 0, fmt.Errorf("stat file %q: %w", filepath.Join(dir, entry.Name()), err)
			}

			if fi.Mode().IsRegular() {
				total += uint64(fi.Size())
			}
		}
	}

	return total, nil
}
