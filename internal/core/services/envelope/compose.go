package envelope

import (
	"encoding/binary"

	"github.com/iamNilotpal/zlib/internal/core/domain"
	"github.com/iamNilotpal/zlib/internal/core/services/header"
	"github.com/iamNilotpal/zlib/pkg/adler32"
)

// Compress builds a complete ZLIB stream from raw input: header,
// DEFLATE compressed payload, Adler-32 trailer over the uncompressed
// bytes. It never fails.
func (c *Codec) Compress(input []byte, level domain.CompressionLevel) []byte {
	return c.AppendCompress(nil, input, level)
}

// AppendCompress appends a complete ZLIB stream for input to dst and
// returns the extended slice. Bytes already in dst are left untouched.
func (c *Codec) AppendCompress(dst, input []byte, level domain.CompressionLevel) []byte {
	dst = header.AppendEncode(dst, level)
	dst = append(dst, c.deflate.Compress(input, level)...)
	return binary.BigEndian.AppendUint32(dst, adler32.Checksum(input))
}

// Wrap builds a ZLIB stream around DEFLATE data the caller produced
// out-of-band. The level only selects the header's FLEVEL hint; the
// trailer checksum is computed over original, the uncompressed bytes
// the deflated payload decodes to, never over the payload itself.
func Wrap(deflated []byte, level domain.CompressionLevel, original []byte) []byte {
	return AppendWrap(nil, deflated, level, original)
}

// AppendWrap appends the envelope around pre-compressed deflated data
// to dst and returns the extended slice.
func AppendWrap(dst, deflated []byte, level domain.CompressionLevel, original []byte) []byte {
	dst = header.AppendEncode(dst, level)
	dst = append(dst, deflated...)
	return binary.BigEndian.AppendUint32(dst, adler32.Checksum(original))
}
