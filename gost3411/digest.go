package gost3411

import "fmt"

// Size256 and Size512 are the two digest sizes GOST R 34.11-2018 defines,
// in bits, as accepted by NewDigest and Hash.
const (
	Size256 = 256
	Size512 = 512
)

// Digest is the incremental hashing state of spec.md §4.5: the chaining
// triple (h, N, sigma), a scratch buffer for the trailing partial block,
// and a flag that makes the absorbing/finalized state machine explicit.
//
// A Digest absorbs bytes via Write until Finalize is called, at which point
// it performs the standard's Stage-3 padding and length/sigma injection and
// becomes immutable. Unlike the hash.Hash convention this package's teacher
// follows for BLAKE2b — where Sum may be called repeatedly and Write
// resumed afterwards — finalization here is one-way: the standard's N/sigma
// injection is destructive, and spec.md §9 asks that the absorbing and
// finalized states be unrepresentable as anything but what they are. Write
// after Finalize, or Digest before Finalize, are programmer errors and
// panic rather than return an error (spec.md §7: these are not recoverable
// runtime errors).
type Digest struct {
	h, n, sigma block512
	buf         block512
	b           int // bytes currently buffered, 0 <= b < blockSize
	size        int // digest size in bytes: 32 or 64
	finalized   bool
}

// NewDigest returns a Digest initialised for the given digest size in bits
// (Size256 or Size512). Any other size is a programmer error and panics.
func NewDigest(sizeBits int) *Digest {
	d := &Digest{}
	switch sizeBits {
	case Size512:
		d.h = ivZero
		d.size = 64
	case Size256:
		d.h = ivOnes
		d.size = 32
	default:
		panic(fmt.Sprintf("gost3411: invalid digest size %d, want %d or %d", sizeBits, Size256, Size512))
	}
	return d
}

// Write absorbs p into the running hash, compressing every full 64-byte
// block as it fills. It never returns an error; n is always len(p). Write
// after Finalize panics.
func (d *Digest) Write(p []byte) (n int, err error) {
	if d.finalized {
		panic("gost3411: Write called on a finalized Digest")
	}
	n = len(p)
	for len(p) > 0 {
		free := blockSize - d.b
		take := free
		if take > len(p) {
			take = len(p)
		}
		copy(d.buf[d.b:d.b+take], p[:take])
		d.b += take
		p = p[take:]

		if d.b == blockSize {
			d.absorbBlock(d.buf)
			d.b = 0
		}
	}
	return n, nil
}

// WriteBlock absorbs exactly one caller-aligned block of n bytes, n in
// [0, blockSize]. It is the streaming block API of spec.md §4.7, for callers
// that already operate in 64-byte chunks; it passes b[:n] to Write, so the
// bytes still go through Write's buffer.
// n must equal blockSize unless this is the final block before Finalize.
func (d *Digest) WriteBlock(b []byte, n int) {
	if n < 0 || n > blockSize {
		panic("gost3411: WriteBlock: n out of range")
	}
	d.Write(b[:n])
}

// absorbBlock performs one Stage-2 step (spec.md §4.5): compress a full
// block, advance N by 512 bits, and fold the block into sigma.
func (d *Digest) absorbBlock(m block512) {
	d.h = compressG(d.h, m, d.n)
	d.n = addLE(d.n, blockFromUint64(512))
	d.sigma = addLE(d.sigma, m)
}

// Finalize performs the standard's Stage 3 on the buffered tail (spec.md
// §4.5): pad the remaining b bytes, compress once more, then fold N and
// sigma into h via two final zero-N compressions. Finalize after Finalize
// panics.
func (d *Digest) Finalize() {
	if d.finalized {
		panic("gost3411: Finalize called twice")
	}

	var padded block512
	copy(padded[:d.b], d.buf[:d.b])
	padded[d.b] = 0x01

	d.h = compressG(d.h, padded, d.n)
	d.n = addLE(d.n, blockFromUint64(uint64(d.b)*8))
	d.sigma = addLE(d.sigma, padded)

	d.h = compressG(d.h, d.n, ivZero)
	d.h = compressG(d.h, d.sigma, ivZero)

	d.finalized = true
}

// FinalizeBlock is an alias for Finalize, named to match the streaming
// block API's finalize_block() of spec.md §4.7.
func (d *Digest) FinalizeBlock() { d.Finalize() }

// Digest returns the big-endian digest bytes (spec.md §4.5): the 512-bit
// case reverses h byte-for-byte; the 256-bit case takes the high 32 bytes
// of that reversal. Calling Digest before Finalize panics.
func (d *Digest) Digest() []byte {
	if !d.finalized {
		panic("gost3411: Digest called before Finalize")
	}
	be := reverseBytes(d.h)
	out := make([]byte, d.size)
	copy(out, be[:d.size])
	return out
}

// Size returns the digest output size in bytes (32 or 64).
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size in bytes.
func (d *Digest) BlockSize() int { return blockSize }

// Hash is the one-shot convenience API of spec.md §4.6: init; write message;
// finalize; digest.
func Hash(message []byte, sizeBits int) []byte {
	d := NewDigest(sizeBits)
	d.Write(message)
	d.Finalize()
	return d.Digest()
}
