package psyq

import (
	"fmt"

	"github.com/psykit/psyk/pkg/codec"
)

// Export is one entry of a module's metadata export index: the name of a
// symbol the module defines, stored as a length-prefixed byte string. The
// index lets the librarian answer "which module defines X" without decoding
// module bodies.
//
// A zero-length export terminates the list on disk. The terminator is kept
// in the decoded slice so encoding reproduces the input exactly; accessors
// that enumerate exports skip it.
//
// Some archives carry entries whose first byte is NUL. The original listing
// tool printed these with a leading "*"; their meaning is unknown, so the
// raw bytes are preserved untouched.
type Export struct {
	name []byte
}

// NewExport builds an export for a symbol name, truncating to the 255 bytes
// the length prefix can express.
func NewExport(name string) Export {
	b := []byte(name)
	if len(b) > 255 {
		b = b[:255]
	}
	return Export{name: b}
}

// Name returns the display form of the export: NUL-prefixed names render
// with a leading "*" in place of the NUL.
func (e Export) Name() string {
	if len(e.name) > 0 && e.name[0] == 0 {
		return "*" + string(e.name[1:])
	}
	return string(e.name)
}

// IsEmpty reports whether this entry is the list terminator.
func (e Export) IsEmpty() bool {
	return len(e.name) == 0
}

// encodedLen is the on-disk size of the entry: length byte plus payload.
func (e Export) encodedLen() int {
	return 1 + len(e.name)
}

func (e Export) appendTo(w *codec.Writer) {
	w.WritePrefixedBytes(e.name)
}

func decodeExport(r *codec.Reader) (Export, error) {
	name, err := r.ReadPrefixedBytes()
	if err != nil {
		return Export{}, fmt.Errorf("export name: %w", err)
	}
	return Export{name: name}, nil
}
