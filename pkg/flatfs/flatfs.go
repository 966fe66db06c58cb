package flatfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/flatstore/flatfs/pkg/flatfs/shard"
	"go.uber.org/zap"
)

// Extensions of the files a store keeps under its root. Temporary files only
// exist between the write and rename halves of a Put and are never surfaced
// by iteration.
const (
	dataExtension = ".data"
	tempExtension = ".temp"
)

// ErrInvalidKey is returned when a key does not satisfy the key rule: ASCII,
// at least 2 characters, no path separator.
var ErrInvalidKey = errors.New("invalid key")

// ErrShardMismatch is returned when a root was created with a different
// sharding strategy than the one requested on open.
var ErrShardMismatch = errors.New("sharding strategy mismatch")

// Store is a flat-file key-value store. Every value lives in its own file
// under the store root, grouped into subdirectories by the sharding strategy
// the root was created with.
//
// A Store is immutable after construction and safe for concurrent use from
// multiple goroutines or processes sharing one root: Put is atomic with
// respect to readers (write-then-rename), concurrent puts of the same key
// are last-writer-wins. Nothing else is synchronized.
type Store struct {
	root  string
	shard shard.Shard

	perm    fs.FileMode
	log     *zap.Logger
	metrics *opMetrics

	retryAttempts int
	retryDelay    time.Duration
}

// New opens the store rooted at path, creating it first if it does not exist
// yet. A root exists when both the directory and its shard descriptor file
// are present; anything else is bootstrapped from scratch with the requested
// strategy. Opening an existing root with a strategy other than the one it
// was created with fails with ErrShardMismatch.
func New(path string, opts ...Option) (*Store, error) {
	s := &Store{
		root:  path,
		shard: shard.Default(),
		perm:  0o700,
		log:   zap.NewNop(),

		retryAttempts: retryAttempts,
		retryDelay:    retryDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	_, rootErr := os.Stat(path)
	_, descriptorErr := os.Stat(s.descriptorPath())

	if rootErr == nil && descriptorErr == nil {
		return s.open()
	}

	return s.create()
}

// create bootstraps a fresh root: the directory tree, then the descriptor.
// The descriptor write is a plain one-shot write. The root did not exist
// before, so no reader can race it.
func (s *Store) create() (*Store, error) {
	if err := os.MkdirAll(s.root, s.perm); err != nil {
		return nil, fmt.Errorf("create store root %q: %w", s.root, err)
	}

	p := s.descriptorPath()
	if err := os.WriteFile(p, []byte(s.shard.String()), s.perm); err != nil {
		return nil, fmt.Errorf("write shard descriptor %q: %w", p, err)
	}

	s.log.Info("created new store",
		zap.String("root", s.root),
		zap.Stringer("shard", s.shard))

	return s.open()
}

// open validates that the persisted descriptor matches the requested
// strategy and returns the ready store.
func (s *Store) open() (*Store, error) {
	p := s.descriptorPath()

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read shard descriptor %q: %w", p, err)
	}

	existing, err := shard.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse shard descriptor %q: %w", p, err)
	}

	if existing != s.shard {
		return nil, fmt.Errorf("%w: store uses %s, requested %s", ErrShardMismatch, existing, s.shard)
	}

	return s, nil
}

// Root returns the store's root directory path.
func (s *Store) Root() string {
	return s.root
}

// Shard returns the sharding strategy the store operates with.
func (s *Store) Shard() shard.Shard {
	return s.shard
}

func (s *Store) descriptorPath() string {
	return filepath.Join(s.root, shard.FileName)
}

// treePath resolves key to the final path of its value file.
// filepath.Join drops the empty shard directory of the no-sharding strategy.
func (s *Store) treePath(key string) string {
	return filepath.Join(s.root, s.shard.Dir(key), key+dataExtension)
}

// tempPath resolves key to the sibling its value is written to before the
// rename onto the final path.
func (s *Store) tempPath(key string) string {
	return filepath.Join(s.root, s.shard.Dir(key), key+tempExtension)
}

// verifyKey enforces the key rule shared by all key-taking operations. It
// runs before any filesystem access and its failures are never retried.
func verifyKey(key string) error {
	if len(key) < 2 {
		return fmt.Errorf("%w: %q is shorter than 2 characters", ErrInvalidKey, key)
	}

	for i := 0; i < len(key); i++ {
		if key[i] >= utf8.RuneSelf {
			return fmt.Errorf("%w: %q contains non-ASCII characters", ErrInvalidKey, key)
		}
	}

	if strings.Contains(key, "/") {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidKey, key)
	}

	return nil
}
