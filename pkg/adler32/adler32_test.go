package adler32

import (
	"bytes"
	stdadler32 "hash/adler32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"empty input is defined as 1", nil, 0x00000001},
		{"empty slice equals nil", []byte{}, 0x00000001},
		{"single zero byte", []byte{0x00}, 0x00010001},
		{"single 0xFF byte", []byte{0xFF}, 0x01000100},
		{"rfc 1950 style ascii", []byte("Wikipedia"), 0x11E60398},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.data))
		})
	}
}

func TestChecksumMatchesStandardLibrary(t *testing.T) {
	// Exercise inputs on both sides of the nmax reduction boundary.
	sizes := []int{1, 255, nmax - 1, nmax, nmax + 1, 3*nmax + 17}
	for _, size := range sizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i*7 + i>>8)
		}
		require.Equal(t, stdadler32.Checksum(data), Checksum(data), "size %d", size)
	}
}

func TestUpdateIsIncremental(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	want := Checksum(data)

	for split := 0; split <= len(data); split++ {
		d := New()
		d.Update(data[:split])
		d.Update(data[split:])
		require.Equal(t, want, d.Value(), "split at %d", split)
	}
}

func TestNewSeedResumesChecksum(t *testing.T) {
	data := bytes.Repeat([]byte("resume me "), 1200)
	want := Checksum(data)

	half := New()
	half.Update(data[:len(data)/2])

	resumed := NewSeed(half.Value())
	resumed.Update(data[len(data)/2:])
	assert.Equal(t, want, resumed.Value())
}

func TestDigestHashInterface(t *testing.T) {
	d := New()

	n, err := d.Write([]byte("Wikipedia"))
	require.NoError(t, err)
	require.Equal(t, 9, n)

	assert.Equal(t, uint32(0x11E60398), d.Sum32())
	assert.Equal(t, []byte{0x11, 0xE6, 0x03, 0x98}, d.Sum(nil))
	assert.Equal(t, []byte{0xAA, 0x11, 0xE6, 0x03, 0x98}, d.Sum([]byte{0xAA}))
	assert.Equal(t, Size, d.Size())
	assert.Equal(t, 1, d.BlockSize())

	d.Reset()
	assert.Equal(t, uint32(1), d.Value())
}

func TestVerify(t *testing.T) {
	data := []byte("Wikipedia")
	assert.True(t, Verify(data, 0x11E60398))
	assert.False(t, Verify(data, 0x11E60399))
	assert.True(t, Verify(nil, 1))
}
