package deflate

import (
	"errors"

	validation "github.com/iamNilotpal/zlib/pkg/errors"
)

// Options configures the flate adapter.
type Options struct {
	// BufferSize is the initial capacity, in bytes, of the pooled
	// scratch buffers used during compression. Zero selects
	// DefaultBufferSize. Larger values reduce reallocation for large
	// inputs at the cost of idle memory held by the pool.
	BufferSize uint32
}

const (
	// DefaultBufferSize holds a full 32K DEFLATE window plus room for
	// incompressible expansion.
	DefaultBufferSize uint32 = 64 * 1024

	// MaxBufferSize caps pooled buffers so a single oversized request
	// cannot pin large allocations in the pool.
	MaxBufferSize uint32 = 16 * 1024 * 1024
)

// DefaultOptions returns recommended adapter settings.
func DefaultOptions() Options {
	return Options{BufferSize: DefaultBufferSize}
}

// Validate checks adapter options and returns a ValidationError for any
// value outside acceptable bounds.
func Validate(opts *Options) error {
	if opts.BufferSize > MaxBufferSize {
		return validation.NewValidationError(
			"bufferSize", opts.BufferSize, errors.New("scratch buffer size exceeds maximum"),
		)
	}
	return nil
}
