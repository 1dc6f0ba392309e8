package psyq

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/psykit/psyk/pkg/codec"
)

func TestModuleDecodeSprintf(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "sprintf.mod"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	r := codec.NewReader(fixture)
	m, err := decodeModule(r)
	if err != nil {
		t.Fatalf("decodeModule failed: %v", err)
	}
	if r.Remaining() != 0 {
		t.Errorf("decode left %d bytes unread", r.Remaining())
	}

	if m.Name() != "SPRINTF" {
		t.Errorf("Name(): got %q", m.Name())
	}
	if got := m.Metadata.Created.String(); got != "15-05-96 16:09:38" {
		t.Errorf("Created: got %q", got)
	}
	if m.Metadata.Offset != 29 {
		t.Errorf("Offset: got %d, want 29", m.Metadata.Offset)
	}
	if m.Metadata.Size != 3621 {
		t.Errorf("Size: got %d, want 3621", m.Metadata.Size)
	}

	exports := m.Exports()
	if len(exports) != 1 || exports[0].Name() != "sprintf" {
		t.Errorf("Exports(): got %v", exports)
	}

	if m.Obj.Version != 2 {
		t.Errorf("Obj.Version: got %d", m.Obj.Version)
	}
	cpu, ok := m.Obj.Sections[0].(*CPUSection)
	if !ok || cpu.CPU != CPUMIPSR3000 {
		t.Errorf("first section: got %#v", m.Obj.Sections[0])
	}

	var w codec.Writer
	m.appendTo(&w)
	if !bytes.Equal(w.Bytes(), fixture) {
		t.Error("re-encode should reproduce the input bytes")
	}
}

func TestNewModuleMetadataDerivedFields(t *testing.T) {
	created := mustTime(t, 0x813320af)
	meta := NewModuleMetadata("sprintf", created, 3592, []Export{NewExport("sprintf")})

	if meta.Name() != "SPRINTF" {
		t.Errorf("Name(): got %q", meta.Name())
	}
	if raw := meta.RawName(); raw != [8]byte{'S', 'P', 'R', 'I', 'N', 'T', 'F', ' '} {
		t.Errorf("RawName(): got %q", string(raw[:]))
	}
	// 20 fixed bytes, an 8-byte export entry, a 1-byte terminator
	if meta.Offset != 29 {
		t.Errorf("Offset: got %d, want 29", meta.Offset)
	}
	if meta.Size != 3621 {
		t.Errorf("Size: got %d, want 3621", meta.Size)
	}
	if got := meta.Created.String(); got != "15-05-96 16:09:38" {
		t.Errorf("Created: got %q", got)
	}
}

func TestOpaqueModuleRoundTrip(t *testing.T) {
	body := bytes.Repeat([]byte{0xab}, 30)
	meta := NewModuleMetadata("blob", mustTime(t, 0x813320af), 0, nil)
	meta.Size = 16 + uint32(len(body))

	var w codec.Writer
	meta.appendTo(&w)
	w.WriteBytes(body)
	fixture := w.Bytes()

	r := codec.NewReader(fixture)
	m, err := DecodeOpaqueModule(r)
	if err != nil {
		t.Fatalf("DecodeOpaqueModule failed: %v", err)
	}
	if m.Metadata.Name() != "BLOB" {
		t.Errorf("Name(): got %q", m.Metadata.Name())
	}
	if !bytes.Equal(m.Raw, body) {
		t.Errorf("Raw: got %d bytes", len(m.Raw))
	}

	var back codec.Writer
	m.appendTo(&back)
	if !bytes.Equal(back.Bytes(), fixture) {
		t.Error("re-encode should reproduce the input bytes")
	}
}

func TestOpaqueModuleBadSize(t *testing.T) {
	meta := NewModuleMetadata("blob", mustTime(t, 0x813320af), 0, nil)
	meta.Size = 4

	var w codec.Writer
	meta.appendTo(&w)
	if _, err := DecodeOpaqueModule(codec.NewReader(w.Bytes())); err == nil {
		t.Error("size below the fixed overhead should fail")
	}
}

func TestNewModuleFromPath(t *testing.T) {
	objBytes := mustHex(t, `
		4c4e4b022e08140b338003627373100c330b330806627373656e64060c330c0a
		330c330000000003656e6400`)
	path := filepath.Join(t.TempDir(), "stub.obj")
	if err := os.WriteFile(path, objBytes, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	m, err := NewModuleFromPath(path)
	if err != nil {
		t.Fatalf("NewModuleFromPath failed: %v", err)
	}
	if m.Name() != "STUB" {
		t.Errorf("Name(): got %q", m.Name())
	}

	exports := m.Exports()
	if len(exports) != 1 || exports[0].Name() != "end" {
		t.Errorf("Exports(): got %v", exports)
	}

	// 20 fixed bytes, a 4-byte export entry, a 1-byte terminator
	if m.Metadata.Offset != 25 {
		t.Errorf("Offset: got %d, want 25", m.Metadata.Offset)
	}
	if m.Metadata.Size != 25+uint32(len(objBytes)) {
		t.Errorf("Size: got %d, want %d", m.Metadata.Size, 25+len(objBytes))
	}
	if _, ok := m.Created(); !ok {
		t.Error("Created() should be valid for a fresh file")
	}
}

func TestNewModuleFromPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewModuleFromPath(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(bad, []byte("LIB\x01junk"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := NewModuleFromPath(bad); err == nil {
		t.Error("non-OBJ content should fail")
	}
}
