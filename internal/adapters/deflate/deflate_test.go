package deflate

import (
	"bytes"
	stdflate "compress/flate"
	"io"
	"testing"

	"github.com/iamNilotpal/zlib/internal/core/domain"
	validation "github.com/iamNilotpal/zlib/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T) *Deflate {
	t.Helper()
	codec, err := New(DefaultOptions())
	require.NoError(t, err)
	return codec
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	codec := newCodec(t)

	inputs := [][]byte{
		nil,
		{0x42},
		[]byte("a short string"),
		bytes.Repeat([]byte("compressible "), 4096),
	}
	levels := []domain.CompressionLevel{
		domain.LevelNone, domain.LevelFast, domain.LevelBalanced, domain.LevelBest,
	}

	for _, input := range inputs {
		for _, level := range levels {
			compressed := codec.Compress(input, level)
			require.NotEmpty(t, compressed, "a deflate stream always has a final block")

			out, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, input, append([]byte(nil), out...), "level %s, input %d bytes", level, len(input))
		}
	}
}

func TestCompressInteropWithStandardFlate(t *testing.T) {
	codec := newCodec(t)
	input := []byte("interop with the standard library decoder")

	r := stdflate.NewReader(bytes.NewReader(codec.Compress(input, domain.LevelBalanced)))
	defer r.Close()

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestDecompressCorruptStream(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.Decompress([]byte{0xFF, 0xFF, 0xFF})
	assert.Error(t, err)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{BufferSize: MaxBufferSize + 1})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))

	codec, err := New(Options{})
	require.NoError(t, err)
	assert.NotNil(t, codec)
}
