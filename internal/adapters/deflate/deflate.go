// Package deflate provides the DEFLATE codec behind the envelope's
// compression port, backed by the klauspost/compress flate
// implementation. Compression levels are mapped from the envelope's
// four valued hint onto the flate encoder's numeric levels.
package deflate

import (
	"bytes"
	"io"

	"github.com/iamNilotpal/zlib/internal/core/domain"
	"github.com/iamNilotpal/zlib/pkg/pool"
	"github.com/klauspost/compress/flate"
)

// Deflate implements ports.Deflate. Scratch buffers for compression are
// drawn from a pool, so a single instance can be shared across
// goroutines.
type Deflate struct {
	buffers *pool.BufferPool
}

// New creates a flate backed codec with the given options.
//
// Returns an error if the options fail validation.
func New(opts Options) (*Deflate, error) {
	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if err := Validate(&opts); err != nil {
		return nil, err
	}
	return &Deflate{buffers: pool.NewBufferPool(int(opts.BufferSize))}, nil
}

// Compress encodes data as a raw DEFLATE stream. It never fails: every
// byte sequence is compressible, and writing to an in-memory buffer
// cannot error. The result is always a fresh slice, even for empty
// input, because DEFLATE marks the end of stream with a final block.
func (d *Deflate) Compress(data []byte, level domain.CompressionLevel) []byte {
	buf := d.buffers.Get()
	defer d.buffers.Put(buf)

	// flateLevel only yields levels the encoder accepts, so the
	// constructor error cannot fire.
	w, _ := flate.NewWriter(buf, flateLevel(level))
	w.Write(data)
	w.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// Decompress decodes a raw DEFLATE stream. Decoder failures are
// returned as-is; the envelope layer wraps them.
func (d *Deflate) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func flateLevel(level domain.CompressionLevel) int {
	switch level {
	case domain.LevelNone:
		return flate.NoCompression
	case domain.LevelFast:
		return flate.BestSpeed
	case domain.LevelBest:
		return flate.BestCompression
	default:
		return flate.DefaultCompression
	}
}
