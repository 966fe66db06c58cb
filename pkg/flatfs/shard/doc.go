/*
Package shard implements the sharding strategies of a flatfs store.

A strategy maps a key to the name of the subdirectory its value file is kept
in, so that no single directory accumulates an unbounded number of files. The
strategy a root was created with is persisted in a SHARDING file as a
single-line, path-like descriptor, e.g.

	/repo/flatfs/shard/v1/next-to-last/2

and every process opening that root must request the exact same strategy.
The variant set is closed; see Kind.
*/
package shard
