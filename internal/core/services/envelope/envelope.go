// Package envelope composes and parses the ZLIB container format: a
// two byte header, a DEFLATE payload produced by an external codec, and
// a four byte big-endian Adler-32 trailer computed over the
// uncompressed data.
//
// All operations are pure with respect to their inputs. Input slices
// are never mutated, and the append variants only ever grow dst, so a
// single Codec is safe for concurrent use as long as the underlying
// DEFLATE port is.
package envelope

import (
	"github.com/iamNilotpal/zlib/internal/core/ports"
	"github.com/iamNilotpal/zlib/internal/core/services/header"
	"github.com/iamNilotpal/zlib/pkg/adler32"
)

const (
	// TrailerSize is the width of the Adler-32 trailer.
	TrailerSize = adler32.Size

	// MinStreamSize is the enforced lower bound on a stream: header plus
	// trailer around an empty payload. A well formed DEFLATE stream is
	// never empty, but the floor is kept at 6 for compatibility with
	// producers that emit degenerate payloads.
	MinStreamSize = header.Size + TrailerSize
)

// Codec wraps an external DEFLATE implementation with ZLIB envelope
// handling.
type Codec struct {
	deflate ports.Deflate
}

// New creates a Codec around the given DEFLATE port.
func New(deflate ports.Deflate) *Codec {
	return &Codec{deflate: deflate}
}
