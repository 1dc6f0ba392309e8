package codec

import (
	"encoding/binary"
	"fmt"
)

// Writer is an append-only encoding buffer mirroring Reader's primitives.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Bytes returns the encoded buffer. The slice aliases the Writer's internal
// storage and is invalidated by further writes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU16 appends a little-endian 16-bit value.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends a little-endian 32-bit value.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteI32 appends a little-endian signed 32-bit value.
func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

// WriteBytes appends raw bytes with no length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WritePrefixedBytes appends a one-byte length followed by the bytes.
// Callers must pre-truncate; a slice longer than 255 bytes cannot be
// represented and is a programming error.
func (w *Writer) WritePrefixedBytes(b []byte) {
	if len(b) > 255 {
		panic(fmt.Sprintf("codec: prefixed byte string of %d bytes exceeds the 1-byte length prefix", len(b)))
	}
	w.WriteU8(uint8(len(b)))
	w.buf = append(w.buf, b...)
}
