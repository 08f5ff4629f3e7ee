package ports

import "github.com/iamNilotpal/zlib/internal/core/domain"

// Deflate is the external DEFLATE codec the envelope wraps. The
// envelope treats the payload as opaque; any RFC 1951 implementation
// can stand behind this interface.
type Deflate interface {
	// Compress encodes data as a DEFLATE stream at the given level.
	// Compression never fails: any byte sequence is valid input.
	Compress(data []byte, level domain.CompressionLevel) []byte

	// Decompress decodes a DEFLATE stream back into the original bytes.
	// The returned error is the codec's own and is passed through to
	// callers unmodified, wrapped as a deflate decode error.
	Decompress(data []byte) ([]byte, error)
}
