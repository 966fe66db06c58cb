package flatfs

import (
	"io/fs"

	"github.com/flatstore/flatfs/pkg/flatfs/shard"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a Store during New.
type Option func(*Store)

// WithShard sets the sharding strategy to create the root with, or to expect
// from an existing root. Defaults to shard.Default().
func WithShard(sh shard.Shard) Option {
	return func(s *Store) {
		s.shard = sh
	}
}

// WithPerm sets the permission bits for directories and files the store
// creates. Defaults to 0700.
func WithPerm(perm fs.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

// WithLogger sets the logger for operation records. Defaults to a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetricsRegisterer registers per-operation counters with r. Without
// this option the store collects no metrics.
func WithMetricsRegisterer(r prometheus.Registerer) Option {
	return func(s *Store) {
		s.metrics = newOpMetrics(r)
	}
}
