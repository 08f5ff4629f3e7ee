package errors

import (
	"errors"
	"fmt"
)

// DecodeKind classifies the ways parsing a ZLIB stream can fail. The
// set is closed: every error returned by envelope or header decoding
// carries exactly one of these kinds, so callers can switch over them
// exhaustively.
type DecodeKind int

const (
	// KindEmpty indicates a zero length input.
	KindEmpty DecodeKind = iota + 1

	// KindTooShort indicates an input below the six byte minimum of
	// header plus trailer.
	KindTooShort

	// KindInvalidCompressionMethod indicates a CMF method nibble other
	// than 8 (DEFLATE).
	KindInvalidCompressionMethod

	// KindInvalidWindowSize indicates a CMF window-info nibble above 7,
	// i.e. a window larger than 32K.
	KindInvalidWindowSize

	// KindInvalidHeaderChecksum indicates a 16-bit header value that is
	// not a multiple of 31.
	KindInvalidHeaderChecksum

	// KindPresetDictionaryRequired indicates a stream with the FDICT
	// flag set. Preset dictionaries are not supported.
	KindPresetDictionaryRequired

	// KindChecksumMismatch indicates a trailer that disagrees with the
	// Adler-32 checksum recomputed over the decompressed payload.
	KindChecksumMismatch

	// KindDeflate wraps a failure reported by the external DEFLATE
	// decompressor.
	KindDeflate
)

// String returns the string representation of the decode kind.
// This is useful for logging and error reporting.
func (k DecodeKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTooShort:
		return "too-short"
	case KindInvalidCompressionMethod:
		return "invalid-compression-method"
	case KindInvalidWindowSize:
		return "invalid-window-size"
	case KindInvalidHeaderChecksum:
		return "invalid-header-checksum"
	case KindPresetDictionaryRequired:
		return "preset-dictionary-required"
	case KindChecksumMismatch:
		return "checksum-mismatch"
	case KindDeflate:
		return "deflate"
	default:
		return "unknown"
	}
}

// DecodeError is the single error type produced while parsing a ZLIB
// stream. Kind selects the variant; the remaining fields carry the
// diagnostic payload for the kinds that have one and are zero
// otherwise.
type DecodeError struct {
	Kind DecodeKind

	// Method is the offending method nibble for
	// KindInvalidCompressionMethod.
	Method uint8

	// WindowInfo is the offending window-info nibble for
	// KindInvalidWindowSize.
	WindowInfo uint8

	// Expected and Actual are the trailer and recomputed checksums for
	// KindChecksumMismatch.
	Expected uint32
	Actual   uint32

	// Err is the inner decompressor error for KindDeflate.
	Err error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindEmpty:
		return "zlib: empty input"
	case KindTooShort:
		return "zlib: input shorter than minimum stream size"
	case KindInvalidCompressionMethod:
		return fmt.Sprintf("zlib: invalid compression method %d, want 8", e.Method)
	case KindInvalidWindowSize:
		return fmt.Sprintf("zlib: invalid window info %d, want at most 7", e.WindowInfo)
	case KindInvalidHeaderChecksum:
		return "zlib: header value is not a multiple of 31"
	case KindPresetDictionaryRequired:
		return "zlib: stream requires a preset dictionary, which is unsupported"
	case KindChecksumMismatch:
		return fmt.Sprintf("zlib: checksum mismatch, trailer 0x%08X, computed 0x%08X", e.Expected, e.Actual)
	case KindDeflate:
		return fmt.Sprintf("zlib: deflate: %v", e.Err)
	default:
		return "zlib: unknown decode error"
	}
}

// Unwrap exposes the inner decompressor error so callers can reach it
// with errors.Is and errors.As. It is nil for every kind except
// KindDeflate.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewEmptyInput() *DecodeError {
	return &DecodeError{Kind: KindEmpty}
}

func NewTooShort() *DecodeError {
	return &DecodeError{Kind: KindTooShort}
}

func NewInvalidCompressionMethod(method uint8) *DecodeError {
	return &DecodeError{Kind: KindInvalidCompressionMethod, Method: method}
}

func NewInvalidWindowSize(windowInfo uint8) *DecodeError {
	return &DecodeError{Kind: KindInvalidWindowSize, WindowInfo: windowInfo}
}

func NewInvalidHeaderChecksum() *DecodeError {
	return &DecodeError{Kind: KindInvalidHeaderChecksum}
}

func NewPresetDictionaryRequired() *DecodeError {
	return &DecodeError{Kind: KindPresetDictionaryRequired}
}

func NewChecksumMismatch(expected, actual uint32) *DecodeError {
	return &DecodeError{Kind: KindChecksumMismatch, Expected: expected, Actual: actual}
}

func NewDeflateError(inner error) *DecodeError {
	return &DecodeError{Kind: KindDeflate, Err: inner}
}

// IsDecodeError checks if a given error is of type DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// AsDecodeError attempts to extract a DecodeError from a given error.
func AsDecodeError(err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	return nil
}
