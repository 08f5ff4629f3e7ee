// Package adler32 implements the rolling Adler-32 checksum used by the
// ZLIB trailer (RFC 1950 section 8.2). Unlike the standard library hash,
// a Digest can be seeded from a previously computed checksum so that an
// interrupted computation can be resumed elsewhere.
package adler32

import (
	"encoding/binary"
	"hash"
)

// Size is the checksum width in bytes.
const Size = 4

// mod is the largest prime smaller than 2^16.
const mod = 65521

// nmax is the largest n such that 255*n*(n+1)/2 + (n+1)*(mod-1) fits in
// an unsigned 32-bit integer. Both accumulators must be reduced at least
// once every nmax bytes.
const nmax = 5552

// Digest holds the two running Adler-32 accumulators. The zero value is
// not a valid digest; use New or NewSeed. A Digest is a plain value and
// may be copied freely, but a single instance must not be updated from
// multiple goroutines.
type Digest struct {
	s1, s2 uint32
}

// New returns a digest initialized to the checksum of empty input,
// which is defined as 1.
func New() *Digest {
	return &Digest{s1: 1}
}

// NewSeed returns a digest resuming from a previously computed checksum
// value. The low half of seed restores the byte sum, the high half the
// sum of sums.
func NewSeed(seed uint32) *Digest {
	return &Digest{s1: seed & 0xffff, s2: seed >> 16}
}

// Update folds p into the running checksum. Calling Update(A) then
// Update(B) yields the same value as a single Update over A followed
// by B.
func (d *Digest) Update(p []byte) {
	s1, s2 := d.s1, d.s2

	for len(p) > 0 {
		chunk := p
		if len(chunk) > nmax {
			chunk = chunk[:nmax]
		}
		p = p[len(chunk):]

		for _, b := range chunk {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= mod
		s2 %= mod
	}

	d.s1, d.s2 = s1, s2
}

// Value returns the current checksum: the sum-of-sums accumulator in
// the high 16 bits and the byte sum in the low 16 bits.
func (d *Digest) Value() uint32 {
	return d.s2<<16 | d.s1
}

// Reset returns the digest to its initial state.
func (d *Digest) Reset() {
	d.s1, d.s2 = 1, 0
}

// Write implements io.Writer so the digest satisfies hash.Hash32.
// It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Sum appends the big-endian checksum to b and returns the result.
func (d *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Value())
}

func (d *Digest) Sum32() uint32 { return d.Value() }
func (d *Digest) Size() int     { return Size }

func (d *Digest) BlockSize() int { return 1 }

var _ hash.Hash32 = (*Digest)(nil)

// Checksum returns the Adler-32 checksum of data.
func Checksum(data []byte) uint32 {
	d := New()
	d.Update(data)
	return d.Value()
}

// Verify reports whether data matches the expected checksum.
func Verify(data []byte, checksum uint32) bool {
	return Checksum(data) == checksum
}
