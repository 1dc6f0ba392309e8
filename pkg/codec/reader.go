package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader is a decoding cursor over an in-memory buffer. All reads are
// little-endian and advance the cursor. A failed read reports the offset at
// which the buffer ran out and leaves the cursor where it was.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return fmt.Errorf("need %d bytes at offset %#x, have %d: %w",
			n, r.off, r.Remaining(), io.ErrUnexpectedEOF)
	}
	return nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

// ReadU16 reads a little-endian 16-bit value.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

// ReadU32 reads a little-endian 32-bit value.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// ReadI32 reads a little-endian signed 32-bit value.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadBytes reads exactly n raw bytes. The result is a copy and remains
// valid after further reads.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, r.buf[r.off:])
	r.off += n
	return b, nil
}

// ReadPrefixedBytes reads a one-byte length followed by that many raw bytes.
func (r *Reader) ReadPrefixedBytes() ([]byte, error) {
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		// restore the cursor to the length byte so a failed read leaves
		// the Reader unchanged
		r.off--
		return nil, err
	}
	return b, nil
}
