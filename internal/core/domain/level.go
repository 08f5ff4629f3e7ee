package domain

import "fmt"

// CompressionLevel is the four valued compression effort hint carried in
// the FLEVEL bits of a ZLIB header. The numeric value of each level is
// exactly the two bit code written to the wire.
type CompressionLevel uint8

const (
	// LevelNone stores data without compression (stored DEFLATE blocks).
	LevelNone CompressionLevel = iota

	// LevelFast favors throughput over ratio.
	LevelFast

	// LevelBalanced is the default trade-off between speed and ratio.
	LevelBalanced

	// LevelBest favors compression ratio regardless of CPU cost.
	LevelBest
)

// DefaultLevel is used whenever a caller doesn't specify a level.
const DefaultLevel = LevelBalanced

// Code returns the two bit FLEVEL code for the level.
func (l CompressionLevel) Code() uint8 {
	return uint8(l) & 0x03
}

// Valid reports whether l is one of the four defined levels.
func (l CompressionLevel) Valid() bool {
	return l <= LevelBest
}

func (l CompressionLevel) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelFast:
		return "fast"
	case LevelBalanced:
		return "balanced"
	case LevelBest:
		return "best"
	default:
		return "unknown"
	}
}

// ParseLevel converts a configuration string into a CompressionLevel.
func ParseLevel(s string) (CompressionLevel, error) {
	switch s {
	case "none":
		return LevelNone, nil
	case "fast":
		return LevelFast, nil
	case "", "balanced":
		return LevelBalanced, nil
	case "best":
		return LevelBest, nil
	default:
		return DefaultLevel, fmt.Errorf("unsupported compression level: %q", s)
	}
}
