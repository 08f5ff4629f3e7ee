// Package header encodes and validates the two byte ZLIB stream header
// defined by RFC 1950. The first byte (CMF) carries the compression
// method and window size, the second (FLG) the check digit, the preset
// dictionary flag and the compression level hint.
package header

import (
	"github.com/iamNilotpal/zlib/internal/core/domain"
	"github.com/iamNilotpal/zlib/pkg/errors"
)

const (
	// Size is the header length in bytes.
	Size = 2

	// MethodDeflate is the only compression method the format defines.
	MethodDeflate uint8 = 8

	// MaxWindowInfo is the largest valid window-info nibble, encoding
	// the 32K window.
	MaxWindowInfo uint8 = 7

	// CMFDefault is the CMF byte this package always emits: method 8
	// with the fixed 32K window. The familiar 0x78 leading byte of most
	// ZLIB streams in the wild.
	CMFDefault byte = byte(MethodDeflate) | byte(MaxWindowInfo)<<4
)

// Fields holds the decoded header fields. LevelHint is informational
// only; decoding never rejects a stream because of it.
type Fields struct {
	Method           uint8
	WindowInfo       uint8
	LevelHint        domain.CompressionLevel
	PresetDictionary bool
}

// Encode produces the header bytes for a stream compressed with the
// given level. The check digit is the unique value in 0..30 that makes
// the 16-bit big-endian header a multiple of 31.
func Encode(level domain.CompressionLevel) (cmf, flg byte) {
	cmf = CMFDefault
	flg = level.Code() << 6
	value := uint16(cmf)<<8 | uint16(flg)
	flg |= byte((31 - value%31) % 31)
	return cmf, flg
}

// AppendEncode appends the encoded header to dst.
func AppendEncode(dst []byte, level domain.CompressionLevel) []byte {
	cmf, flg := Encode(level)
	return append(dst, cmf, flg)
}

// Validate checks the header bytes of an incoming stream. Checks run in
// a fixed order: compression method, window size, header check digit,
// preset dictionary flag. The first failing check wins.
func Validate(cmf, flg byte) *errors.DecodeError {
	if method := cmf & 0x0F; method != MethodDeflate {
		return errors.NewInvalidCompressionMethod(method)
	}
	if windowInfo := cmf >> 4; windowInfo > MaxWindowInfo {
		return errors.NewInvalidWindowSize(windowInfo)
	}
	if (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		return errors.NewInvalidHeaderChecksum()
	}
	if flg>>5&0x01 != 0 {
		return errors.NewPresetDictionaryRequired()
	}
	return nil
}

// Parse validates the header and returns its decoded fields.
func Parse(cmf, flg byte) (Fields, *errors.DecodeError) {
	if err := Validate(cmf, flg); err != nil {
		return Fields{}, err
	}
	return Fields{
		Method:           cmf & 0x0F,
		WindowInfo:       cmf >> 4,
		LevelHint:        domain.CompressionLevel(flg >> 6),
		PresetDictionary: false,
	}, nil
}
