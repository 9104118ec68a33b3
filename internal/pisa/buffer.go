package pisa

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/you-not-fish/prism/internal/rtabi"
)

// InitialCapacity is the number of words a new Buffer holds before growing.
const InitialCapacity = 1024

// Buffer is the growable machine code buffer of one compilation.
type Buffer struct {
	words []uint32
}

// NewBuffer returns an empty buffer with InitialCapacity words reserved.
func NewBuffer() *Buffer {
	return &Buffer{words: make([]uint32, 0, InitialCapacity)}
}

// Emit appends one instruction word, doubling the capacity when full.
func (b *Buffer) Emit(w uint32) {
	if len(b.words) == cap(b.words) {
		n := 2 * cap(b.words)
		if n == 0 {
			n = InitialCapacity
		}
		grown := make([]uint32, len(b.words), n)
		copy(grown, b.words)
		b.words = grown
	}
	b.words = append(b.words, w)
}

// EmitInst encodes and appends in.
func (b *Buffer) EmitInst(in Inst) {
	b.Emit(in.Word())
}

// Words returns the emitted words. The slice aliases the buffer.
func (b *Buffer) Words() []uint32 { return b.words }

// Len returns the number of emitted words.
func (b *Buffer) Len() int { return len(b.words) }

// Cap returns the current capacity in words.
func (b *Buffer) Cap() int { return cap(b.words) }

// Size returns the artifact size in bytes.
func (b *Buffer) Size() int { return len(b.words) * rtabi.WordSize }

// Bytes returns the artifact: the words densely packed little-endian, with
// no header or padding.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.Size())
	for i, w := range b.words {
		binary.LittleEndian.PutUint32(out[i*rtabi.WordSize:], w)
	}
	return out
}

// WriteTo writes the artifact to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), errors.Wrap(err, "writing machine code")
}

// Digest returns the BLAKE2b-256 hash of the artifact, used as its build id.
func (b *Buffer) Digest() [blake2b.Size256]byte {
	return blake2b.Sum256(b.Bytes())
}

// ReadWords decodes an artifact produced by WriteTo.
func ReadWords(r io.Reader) ([]uint32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading machine code")
	}
	if len(data)%rtabi.WordSize != 0 {
		return nil, errors.Errorf("machine code size %d is not a multiple of %d", len(data), rtabi.WordSize)
	}
	words := make([]uint32, len(data)/rtabi.WordSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*rtabi.WordSize:])
	}
	return words, nil
}
