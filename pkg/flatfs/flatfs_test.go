package flatfs

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flatstore/flatfs/pkg/flatfs/shard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCreateEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, shard.FileName))
	require.NoError(t, err)
	require.Equal(t, shard.Default().String(), string(data))
}

func TestCreateNestedRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "store")

	s, err := New(dir)
	require.NoError(t, err)
	require.Equal(t, dir, s.Root())
}

func TestOpenExisting(t *testing.T) {
	dir := t.TempDir()
	sh := shard.Shard{Kind: shard.Prefix, Width: 2}

	_, err := New(dir, WithShard(sh))
	require.NoError(t, err)

	// Same strategy opens fine.
	s, err := New(dir, WithShard(sh))
	require.NoError(t, err)
	require.Equal(t, sh, s.Shard())

	// Any other strategy is rejected.
	_, err = New(dir)
	require.ErrorIs(t, err, ErrShardMismatch)

	_, err = New(dir, WithShard(shard.Shard{Kind: shard.Prefix, Width: 3}))
	require.ErrorIs(t, err, ErrShardMismatch)
}

func TestOpenCorruptDescriptor(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, shard.FileName), []byte("garbage"), 0o600))

	_, err := New(dir)
	require.ErrorIs(t, err, shard.ErrBadDescriptor)
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, "ba", "foobar.data"), s.treePath("foobar"))
	require.Equal(t, filepath.Join(dir, "ba", "foobar.temp"), s.tempPath("foobar"))
}

func TestPathsNoSharding(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir, WithShard(shard.Shard{Kind: shard.None}))
	require.NoError(t, err)

	require.NoError(t, s.Put("foobar", []byte("x")))
	require.FileExists(t, filepath.Join(dir, "foobar.data"))
}

func testValue(i int) []byte {
	return bytes.Repeat([]byte{byte(i)}, 128)
}

// newTestStore shrinks the retry delay so that tests exercising failing
// operations do not sit out the full backoff budget.
func newTestStore(t *testing.T, opts ...Option) *Store {
	s, err := New(t.TempDir(), opts...)
	require.NoError(t, err)

	s.retryDelay = time.Millisecond

	return s
}

func TestPutGet(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Put(fmt.Sprintf("foo%d", i), testValue(i)))
	}

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("foo%d", i)

		value, err := s.Get(key)
		require.NoError(t, err)
		require.Equal(t, testValue(i), value)

		size, err := s.GetSize(key)
		require.NoError(t, err)
		require.EqualValues(t, 128, size)
	}
}

func TestPutOverwrite(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("foobar", []byte("old")))
	require.NoError(t, s.Put("foobar", []byte("new value")))

	value, err := s.Get("foobar")
	require.NoError(t, err)
	require.Equal(t, []byte("new value"), value)

	size, err := s.GetSize("foobar")
	require.NoError(t, err)
	require.EqualValues(t, len("new value"), size)
}

func TestPutLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put("foobar", []byte("x")))
	require.NoFileExists(t, filepath.Join(dir, "ba", "foobar.temp"))
}

func TestPutGetDel(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Put(fmt.Sprintf("foo%d", i), testValue(i)))
	}

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Delete(fmt.Sprintf("foo%d", i)))
	}

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("foo%d", i)

		if i < 5 {
			_, err := s.Get(key)
			require.ErrorIs(t, err, fs.ErrNotExist, key)

			// No idempotent delete: the second removal fails too.
			require.ErrorIs(t, s.Delete(key), fs.ErrNotExist, key)
		} else {
			value, err := s.Get(key)
			require.NoError(t, err, key)
			require.Equal(t, testValue(i), value)
		}
	}
}

func TestMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("nosuchkey")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = s.GetSize("nosuchkey")
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.ErrorIs(t, s.Delete("nosuchkey"), fs.ErrNotExist)
}

func TestKeyValidation(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)

	for _, key := range []string{
		"",
		"a",
		"foo/bar",
		"héllo",
	} {
		t.Run(fmt.Sprintf("%q", key), func(t *testing.T) {
			require.ErrorIs(t, s.Put(key, []byte("x")), ErrInvalidKey)

			_, err := s.Get(key)
			require.ErrorIs(t, err, ErrInvalidKey)

			_, err = s.GetSize(key)
			require.ErrorIs(t, err, ErrInvalidKey)

			require.ErrorIs(t, s.Delete(key), ErrInvalidKey)
		})
	}

	// Nothing but the descriptor may have been created along the way.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, shard.FileName, entries[0].Name())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	s := newTestStore(t, WithMetricsRegisterer(reg))

	require.NoError(t, s.Put("foobar", []byte("x")))

	_, err := s.Get("foobar")
	require.NoError(t, err)

	_, err = s.Get("missing")
	require.Error(t, err)

	require.EqualValues(t, 1, testutil.ToFloat64(s.metrics.calls.WithLabelValues(opPut)))
	require.EqualValues(t, 2, testutil.ToFloat64(s.metrics.calls.WithLabelValues(opGet)))
	require.EqualValues(t, 1, testutil.ToFloat64(s.metrics.failures.WithLabelValues(opGet)))
	require.EqualValues(t, 0, testutil.ToFloat64(s.metrics.failures.WithLabelValues(opPut)))
}
