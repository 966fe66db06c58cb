/*
Package flatfs implements a flat-file key-value store: every value is a
single file on disk, placed into a subdirectory chosen by a pluggable
sharding strategy.

The layout of a store root looks like this for the default strategy
(next-to-last/2):

	root/
	├── SHARDING
	├── ba/
	│   └── foobar.data
	└── a0/
	    └── beta01.data

The SHARDING file pins the strategy the root was created with; opening the
root with any other strategy fails, so every process sharing a root agrees
on where keys live. Keys are ASCII strings of at least two characters with
no path separator.

Writes go through a temporary file followed by a rename, so readers never
see partial values and concurrent writers of one key settle last-writer-wins.
Transient filesystem failures are absorbed by a constant-delay bounded retry
on every filesystem call a key operation makes.

There is no index and no cache: the filesystem is the only source of truth,
which keeps the store durable, trivially inspectable with standard tools and
cheap to embed.
*/
package flatfs
