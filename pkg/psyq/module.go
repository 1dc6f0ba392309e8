package psyq

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/psykit/psyk/pkg/codec"
)

// ModuleMetadata is the fixed-layout header preceding each OBJ inside an
// archive: an 8-byte space-padded name, a packed creation timestamp, two
// derived length fields, and the export index.
//
// Offset and Size are computed once at construction and stored, never
// recomputed: Offset is the metadata's own encoded length (20 fixed bytes
// plus the export list, terminator included) and Size adds the encoded OBJ
// length on top. Readers that skip module bodies trust these stored values,
// so they must survive round trips untouched.
type ModuleMetadata struct {
	name    [8]byte
	Created Timestamp
	Offset  uint32
	Size    uint32

	// exports includes the zero-length terminator as its last entry,
	// mirroring the on-disk list.
	exports []Export
}

const metadataFixedSize = 20

// NewModuleMetadata derives a metadata block. name passes through the same
// 8-byte truncation as file-derived names, objSize is the encoded length of
// the module's OBJ, and exports must not include a terminator entry (one is
// appended here).
func NewModuleMetadata(name string, created time.Time, objSize uint32, exports []Export) ModuleMetadata {
	withTerm := make([]Export, 0, len(exports)+1)
	withTerm = append(withTerm, exports...)
	withTerm = append(withTerm, Export{})

	offset := uint32(metadataFixedSize)
	for _, e := range withTerm {
		offset += uint32(e.encodedLen())
	}
	return ModuleMetadata{
		name:    moduleNameFromString(name),
		Created: NewTimestamp(created),
		Offset:  offset,
		Size:    offset + objSize,
		exports: withTerm,
	}
}

// Name returns the module name with its space padding removed.
func (m *ModuleMetadata) Name() string {
	return strings.TrimRight(string(m.name[:]), " ")
}

// RawName returns the full 8-byte padded name as stored.
func (m *ModuleMetadata) RawName() [8]byte {
	return m.name
}

// Exports lists the export entries, terminator excluded.
func (m *ModuleMetadata) Exports() []Export {
	out := make([]Export, 0, len(m.exports))
	for _, e := range m.exports {
		if !e.IsEmpty() {
			out = append(out, e)
		}
	}
	return out
}

func decodeModuleMetadata(r *codec.Reader) (ModuleMetadata, error) {
	var m ModuleMetadata

	name, err := r.ReadBytes(len(m.name))
	if err != nil {
		return m, fmt.Errorf("module name: %w", err)
	}
	copy(m.name[:], name)

	d := sectionDecoder{r: r}
	m.Created = Timestamp(d.u32())
	m.Offset = d.u32()
	m.Size = d.u32()
	if d.err != nil {
		return m, fmt.Errorf("module metadata: %w", d.err)
	}

	for {
		e, err := decodeExport(r)
		if err != nil {
			return m, err
		}
		m.exports = append(m.exports, e)
		if e.IsEmpty() {
			return m, nil
		}
	}
}

func (m *ModuleMetadata) appendTo(w *codec.Writer) {
	w.WriteBytes(m.name[:])
	w.WriteU32(uint32(m.Created))
	w.WriteU32(m.Offset)
	w.WriteU32(m.Size)
	for _, e := range m.exports {
		e.appendTo(w)
	}
}

// Module is one archive entry: metadata plus the fully decoded OBJ.
type Module struct {
	Metadata ModuleMetadata
	Obj      *Obj
}

// NewModule pairs an OBJ with ready-made metadata.
func NewModule(obj *Obj, metadata ModuleMetadata) Module {
	return Module{Metadata: metadata, Obj: obj}
}

// NewModuleFromPath reads the OBJ file at path and derives its module
// metadata: the name from the file name, the creation timestamp from the
// file's modification time, and the export index from the OBJ's XDEF and
// XBSS records.
func NewModuleFromPath(path string) (Module, error) {
	name, err := ModuleNameFromPath(path)
	if err != nil {
		return Module{}, err
	}

	obj, err := ReadObj(path)
	if err != nil {
		return Module{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Module{}, err
	}

	meta := NewModuleMetadata("", info.ModTime(), uint32(info.Size()), obj.Exports())
	meta.name = name
	return Module{Metadata: meta, Obj: obj}, nil
}

// Name returns the module name without padding.
func (m *Module) Name() string {
	return m.Metadata.Name()
}

// Exports lists the module's exported symbols from the metadata index.
func (m *Module) Exports() []Export {
	return m.Metadata.Exports()
}

// Created returns the module's creation time, when the stored timestamp
// forms a valid date.
func (m *Module) Created() (time.Time, bool) {
	return m.Metadata.Created.Time()
}

func decodeModule(r *codec.Reader) (Module, error) {
	meta, err := decodeModuleMetadata(r)
	if err != nil {
		return Module{}, err
	}
	obj, err := DecodeObj(r)
	if err != nil {
		return Module{}, err
	}
	return Module{Metadata: meta, Obj: obj}, nil
}

func (m *Module) appendTo(w *codec.Writer) {
	m.Metadata.appendTo(w)
	m.Obj.appendTo(w)
}

// OpaqueModule is a module whose OBJ body is kept as raw bytes. Archive
// operations that only consult metadata (listing, symbol search, member
// deletion) use it to avoid decoding bodies they will copy or skip
// verbatim.
type OpaqueModule struct {
	Metadata ModuleMetadata
	Raw      []byte
}

// DecodeOpaqueModule reads a module but leaves the OBJ body undecoded. The
// body length comes from the stored Size field.
func DecodeOpaqueModule(r *codec.Reader) (OpaqueModule, error) {
	meta, err := decodeModuleMetadata(r)
	if err != nil {
		return OpaqueModule{}, err
	}
	if meta.Size < 16 {
		return OpaqueModule{}, fmt.Errorf("module %q: size field %d too small", meta.Name(), meta.Size)
	}
	// The body length is size-16, the accounting the original tools used.
	// It is not size-offset; opaque reads deliberately match the historic
	// behavior byte for byte.
	raw, err := r.ReadBytes(int(meta.Size) - 16)
	if err != nil {
		return OpaqueModule{}, fmt.Errorf("module %q body: %w", meta.Name(), err)
	}
	return OpaqueModule{Metadata: meta, Raw: raw}, nil
}

func (m *OpaqueModule) appendTo(w *codec.Writer) {
	m.Metadata.appendTo(w)
	w.WriteBytes(m.Raw)
}
