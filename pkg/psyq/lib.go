package psyq

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/psykit/psyk/pkg/codec"
)

// LibMagic introduces every archive.
var LibMagic = []byte("LIB")

// LibVersion is the only archive format revision the toolchain ever
// shipped.
const LibVersion uint8 = 1

// ErrEmptyArchive reports an archive with no modules. The format has no
// module count; an archive ends at end of file, and one with nothing after
// the header was never produced by the original tools.
var ErrEmptyArchive = errors.New("psyq: archive contains no modules")

// Lib is a decoded LIB archive.
type Lib struct {
	Version uint8
	Modules []Module
}

// NewLib builds an archive from a module list. An empty list is a bug in
// the caller, not a data error, so it panics; use DecodeLib's
// ErrEmptyArchive for untrusted input.
func NewLib(modules []Module) *Lib {
	if len(modules) == 0 {
		panic("psyq: an archive requires at least one module")
	}
	return &Lib{Version: LibVersion, Modules: modules}
}

// DecodeLib reads a complete archive from r: magic, version, then modules
// until the buffer is exhausted.
func DecodeLib(r *codec.Reader) (*Lib, error) {
	version, err := decodeLibHeader(r)
	if err != nil {
		return nil, err
	}

	lib := &Lib{Version: version}
	for r.Remaining() > 0 {
		m, err := decodeModule(r)
		if err != nil {
			return nil, err
		}
		lib.Modules = append(lib.Modules, m)
	}
	if len(lib.Modules) == 0 {
		return nil, ErrEmptyArchive
	}
	return lib, nil
}

// DecodeLibOpaque reads an archive without decoding module bodies. Module
// boundaries come from the metadata size fields alone, so this is the fast
// path for listing and metadata-only edits.
func DecodeLibOpaque(r *codec.Reader) (uint8, []OpaqueModule, error) {
	version, err := decodeLibHeader(r)
	if err != nil {
		return 0, nil, err
	}

	var modules []OpaqueModule
	for r.Remaining() > 0 {
		m, err := DecodeOpaqueModule(r)
		if err != nil {
			return 0, nil, err
		}
		modules = append(modules, m)
	}
	if len(modules) == 0 {
		return 0, nil, ErrEmptyArchive
	}
	return version, modules, nil
}

func decodeLibHeader(r *codec.Reader) (uint8, error) {
	magic, err := r.ReadBytes(len(LibMagic))
	if err != nil {
		return 0, fmt.Errorf("lib magic: %w", err)
	}
	if !bytes.Equal(magic, LibMagic) {
		return 0, &MagicError{Want: LibMagic, Got: magic}
	}
	version, err := r.ReadU8()
	if err != nil {
		return 0, fmt.Errorf("lib version: %w", err)
	}
	if version != LibVersion {
		return 0, fmt.Errorf("lib: unsupported version %d", version)
	}
	return version, nil
}

// Encode serializes the archive. Decoding the result yields an equal value;
// encoding a decoded archive reproduces the source bytes exactly.
func (l *Lib) Encode() []byte {
	var w codec.Writer
	w.WriteBytes(LibMagic)
	w.WriteU8(l.Version)
	for i := range l.Modules {
		l.Modules[i].appendTo(&w)
	}
	return w.Bytes()
}

// Module returns the named module, matching the padded name's trimmed
// form.
func (l *Lib) Module(name string) (*Module, bool) {
	for i := range l.Modules {
		if l.Modules[i].Name() == name {
			return &l.Modules[i], true
		}
	}
	return nil, false
}
