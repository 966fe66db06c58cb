package shard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FileName is the reserved name of the descriptor file kept at a store root.
const FileName = "SHARDING"

// descriptorPrefix is the fixed part of the textual descriptor form.
const descriptorPrefix = "/repo/flatfs/shard/v1"

// ErrBadDescriptor is returned by Parse when the given text is not a valid
// shard descriptor.
var ErrBadDescriptor = errors.New("bad shard descriptor")

// Kind is a sharding function variant. The set is closed: both Dir and the
// descriptor codec switch over it exhaustively.
type Kind uint8

const (
	// None stores all value files directly under the root.
	None Kind = iota
	// Prefix groups keys by their first Width characters.
	Prefix
	// Suffix groups keys by their last Width characters.
	Suffix
	// NextToLast groups keys by the Width characters that precede the last
	// character. Keys that differ only in the final character (sequential
	// counters, hash tails) still spread across directories this way.
	NextToLast
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	case NextToLast:
		return "next-to-last"
	default:
		return "unknown " + strconv.FormatUint(uint64(k), 10)
	}
}

// Shard is a sharding strategy: a pure function from a key to the single
// directory name the key's file lives under. It is comparable, two values
// are the same strategy iff they are ==.
type Shard struct {
	Kind  Kind
	Width int
}

// Default returns the strategy new stores are created with unless the caller
// picks another one.
func Default() Shard {
	return Shard{Kind: NextToLast, Width: 2}
}

// Dir returns the directory name under which key's file is stored. It is
// deterministic and stable across restarts for a given descriptor. Windows
// that do not fit into the key are clamped to the characters available,
// widths are expected to be smaller than the keys in practice.
func (s Shard) Dir(key string) string {
	switch s.Kind {
	case None:
		return ""
	case Prefix:
		return key[:min(s.Width, len(key))]
	case Suffix:
		return key[len(key)-min(s.Width, len(key)):]
	case NextToLast:
		end := len(key) - 1
		return key[end-min(s.Width, end) : end]
	default:
		panic("unexpected shard kind " + s.Kind.String())
	}
}

// String returns the single-line descriptor form, e.g.
// "/repo/flatfs/shard/v1/next-to-last/2". It is the exact content of the
// SHARDING file and the inverse of Parse.
func (s Shard) String() string {
	return fmt.Sprintf("%s/%s/%d", descriptorPrefix, s.Kind, s.Width)
}

// Parse decodes a descriptor previously produced by String. Any malformed or
// unrecognized input results in an error wrapping ErrBadDescriptor.
func Parse(descriptor string) (Shard, error) {
	trimmed := strings.TrimSuffix(descriptor, "\n")

	rest, ok := strings.CutPrefix(trimmed, descriptorPrefix+"/")
	if !ok {
		return Shard{}, fmt.Errorf("%w: %q lacks %q prefix", ErrBadDescriptor, trimmed, descriptorPrefix)
	}

	kindStr, widthStr, ok := strings.Cut(rest, "/")
	if !ok {
		return Shard{}, fmt.Errorf("%w: %q lacks width component", ErrBadDescriptor, trimmed)
	}

	var kind Kind
	switch kindStr {
	case "none":
		kind = None
	case "prefix":
		kind = Prefix
	case "suffix":
		kind = Suffix
	case "next-to-last":
		kind = NextToLast
	default:
		return Shard{}, fmt.Errorf("%w: unknown kind %q", ErrBadDescriptor, kindStr)
	}

	width, err := strconv.Atoi(widthStr)
	if err != nil || width < 0 {
		return Shard{}, fmt.Errorf("%w: invalid width %q", ErrBadDescriptor, widthStr)
	}

	return Shard{Kind: kind, Width: width}, nil
}
