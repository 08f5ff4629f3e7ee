package envelope

import (
	"encoding/binary"

	"github.com/iamNilotpal/zlib/internal/core/services/header"
	"github.com/iamNilotpal/zlib/pkg/adler32"
	"github.com/iamNilotpal/zlib/pkg/errors"
)

// Decompress validates the envelope of input, decompresses the DEFLATE
// payload and verifies the Adler-32 trailer against the decompressed
// bytes. On success it returns the original data as a fresh slice.
func (c *Codec) Decompress(input []byte) ([]byte, error) {
	out, err := c.AppendDecompress(nil, input)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendDecompress appends the decompressed payload of input to dst and
// returns the extended slice. Bytes already in dst are left untouched;
// on error dst is returned unmodified.
func (c *Codec) AppendDecompress(dst, input []byte) ([]byte, error) {
	payload, err := Unwrap(input)
	if err != nil {
		return dst, err
	}

	out, derr := c.deflate.Decompress(payload)
	if derr != nil {
		return dst, errors.NewDeflateError(derr)
	}

	expected := binary.BigEndian.Uint32(input[len(input)-TrailerSize:])
	if actual := adler32.Checksum(out); actual != expected {
		return dst, errors.NewChecksumMismatch(expected, actual)
	}

	return append(dst, out...), nil
}

// Unwrap validates the envelope and returns the raw DEFLATE payload
// between header and trailer, without decompressing it or verifying the
// checksum. The result aliases input; callers that need an independent
// copy should use AppendUnwrap.
func Unwrap(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, errors.NewEmptyInput()
	}
	if len(input) < MinStreamSize {
		return nil, errors.NewTooShort()
	}
	if err := header.Validate(input[0], input[1]); err != nil {
		return nil, err
	}
	return input[header.Size : len(input)-TrailerSize], nil
}

// AppendUnwrap appends the raw DEFLATE payload of input to dst and
// returns the extended slice; on error dst is returned unmodified.
func AppendUnwrap(dst, input []byte) ([]byte, error) {
	payload, err := Unwrap(input)
	if err != nil {
		return dst, err
	}
	return append(dst, payload...), nil
}
