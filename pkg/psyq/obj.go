package psyq

import (
	"bytes"
	"fmt"

	"github.com/psykit/psyk/pkg/codec"
)

// ObjMagic introduces every OBJ stream, standalone or embedded in an
// archive module.
var ObjMagic = []byte("LNK")

// ObjVersion is the only format revision the toolchain ever shipped.
const ObjVersion uint8 = 2

// Obj is a decoded OBJ file: the format version and the section list,
// terminator included.
type Obj struct {
	Version  uint8
	Sections []Section
}

// NewObj builds an OBJ from a section list. The list must be non-empty and
// end with the NOP terminator; violating that is a bug in the caller, not a
// data error, so it panics.
func NewObj(sections []Section) *Obj {
	if len(sections) == 0 {
		panic("psyq: an OBJ requires at least the terminating NOP section")
	}
	if _, ok := sections[len(sections)-1].(NOP); !ok {
		panic("psyq: an OBJ's section list must end with NOP")
	}
	return &Obj{Version: ObjVersion, Sections: sections}
}

// DecodeObj reads a complete OBJ from r: magic, version, and sections up to
// and including the NOP terminator. Bytes after the terminator are left
// unread, which is how archive modules share a buffer.
func DecodeObj(r *codec.Reader) (*Obj, error) {
	magic, err := r.ReadBytes(len(ObjMagic))
	if err != nil {
		return nil, fmt.Errorf("obj magic: %w", err)
	}
	if !bytes.Equal(magic, ObjMagic) {
		return nil, &MagicError{Want: ObjMagic, Got: magic}
	}
	version, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("obj version: %w", err)
	}
	if version != ObjVersion {
		return nil, fmt.Errorf("obj: unsupported version %d", version)
	}

	obj := &Obj{Version: version}
	for {
		s, err := DecodeSection(r)
		if err != nil {
			return nil, err
		}
		obj.Sections = append(obj.Sections, s)
		if _, done := s.(NOP); done {
			return obj, nil
		}
	}
}

func (o *Obj) appendTo(w *codec.Writer) {
	w.WriteBytes(ObjMagic)
	w.WriteU8(o.Version)
	for _, s := range o.Sections {
		s.appendTo(w)
	}
}

// Encode serializes the OBJ. Decoding the result yields an equal value;
// encoding a decoded OBJ reproduces the source bytes exactly.
func (o *Obj) Encode() []byte {
	var w codec.Writer
	o.appendTo(&w)
	return w.Bytes()
}

// Exports lists the symbol names this OBJ defines for other modules: its
// XDEF and XBSS entries, in section order. These are the names an archive's
// metadata index carries.
func (o *Obj) Exports() []Export {
	var exports []Export
	for _, s := range o.Sections {
		switch v := s.(type) {
		case *XDEFSection:
			exports = append(exports, Export{name: v.name})
		case *XBSSSection:
			exports = append(exports, Export{name: v.name})
		}
	}
	return exports
}
