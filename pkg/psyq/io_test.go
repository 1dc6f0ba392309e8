package psyq

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psykit/psyk/pkg/codec"
)

func writeFixtureFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestReadAutoDetect(t *testing.T) {
	libPath := writeFixtureFile(t, "runtime.lib", mustHex(t, exitLibHex))
	objPath := writeFixtureFile(t, "startup.obj", mustHex(t, startupObjHex))

	lib, obj, err := Read(libPath)
	if err != nil {
		t.Fatalf("Read(lib) failed: %v", err)
	}
	if lib == nil || obj != nil {
		t.Errorf("Read(lib): lib=%v obj=%v", lib, obj)
	}

	lib, obj, err = Read(objPath)
	if err != nil {
		t.Fatalf("Read(obj) failed: %v", err)
	}
	if obj == nil || lib != nil {
		t.Errorf("Read(obj): lib=%v obj=%v", lib, obj)
	}
}

func TestReadUnrecognizedMagic(t *testing.T) {
	path := writeFixtureFile(t, "elf.o", []byte("\x7fELF\x01\x01\x01"))
	_, _, err := Read(path)
	if err == nil {
		t.Fatal("unknown magic should fail")
	}
	var magicErr *MagicError
	if !errors.As(err, &magicErr) {
		t.Fatalf("expected MagicError, got %v", err)
	}
	if magicErr.Want != nil {
		t.Errorf("auto-detect should not name a wanted magic, got %q", magicErr.Want)
	}
	if !strings.Contains(err.Error(), `unrecognized magic "\x7fEL"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestReadTooSmall(t *testing.T) {
	path := writeFixtureFile(t, "tiny.obj", []byte("LNK"))
	if _, _, err := Read(path); !errors.Is(err, ErrTooSmall) {
		t.Errorf("Read: got %v, want ErrTooSmall", err)
	}
	if _, err := ReadObj(path); !errors.Is(err, ErrTooSmall) {
		t.Errorf("ReadObj: got %v, want ErrTooSmall", err)
	}
	if _, err := ReadLib(path); !errors.Is(err, ErrTooSmall) {
		t.Errorf("ReadLib: got %v, want ErrTooSmall", err)
	}
}

func TestReadObjRejectsArchive(t *testing.T) {
	path := writeFixtureFile(t, "runtime.lib", mustHex(t, exitLibHex))
	_, err := ReadObj(path)
	if err == nil {
		t.Fatal("ReadObj on an archive should fail")
	}
	var magicErr *MagicError
	if !errors.As(err, &magicErr) {
		t.Fatalf("expected MagicError, got %v", err)
	}
	if !strings.Contains(err.Error(), `bad magic at 0x0: "LIB", want "LNK"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestReadLibRejectsObj(t *testing.T) {
	path := writeFixtureFile(t, "startup.obj", mustHex(t, startupObjHex))
	_, err := ReadLib(path)
	if err == nil {
		t.Fatal("ReadLib on an OBJ should fail")
	}
	if !strings.Contains(err.Error(), `bad magic at 0x0: "LNK", want "LIB"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, _, err := Read(filepath.Join(t.TempDir(), "absent.lib")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}

func TestReadLibOpaqueMetadata(t *testing.T) {
	// a hand-built archive whose size field uses the historic accounting
	body := bytes.Repeat([]byte{0x5a}, 24)
	meta := NewModuleMetadata("util", mustTime(t, 0x813320af), 0, []Export{NewExport("memcpy")})
	meta.Size = 16 + uint32(len(body))

	var w codec.Writer
	w.WriteBytes(LibMagic)
	w.WriteU8(LibVersion)
	m := OpaqueModule{Metadata: meta, Raw: body}
	m.appendTo(&w)
	path := writeFixtureFile(t, "util.lib", w.Bytes())

	version, modules, err := ReadLibOpaque(path)
	if err != nil {
		t.Fatalf("ReadLibOpaque failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version: got %d", version)
	}
	if len(modules) != 1 {
		t.Fatalf("modules: got %d, want 1", len(modules))
	}
	if modules[0].Metadata.Name() != "UTIL" {
		t.Errorf("Name(): got %q", modules[0].Metadata.Name())
	}
	exports := modules[0].Metadata.Exports()
	if len(exports) != 1 || exports[0].Name() != "memcpy" {
		t.Errorf("Exports(): got %v", exports)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	lib, err := ReadLib(writeFixtureFile(t, "runtime.lib", mustHex(t, exitLibHex)))
	if err != nil {
		t.Fatalf("ReadLib failed: %v", err)
	}
	var libBuf bytes.Buffer
	if err := WriteLib(lib, &libBuf); err != nil {
		t.Fatalf("WriteLib failed: %v", err)
	}
	if !bytes.Equal(libBuf.Bytes(), mustHex(t, exitLibHex)) {
		t.Error("WriteLib should reproduce the input bytes")
	}

	obj, err := ReadObj(writeFixtureFile(t, "startup.obj", mustHex(t, startupObjHex)))
	if err != nil {
		t.Fatalf("ReadObj failed: %v", err)
	}
	var objBuf bytes.Buffer
	if err := WriteObj(obj, &objBuf); err != nil {
		t.Fatalf("WriteObj failed: %v", err)
	}
	if !bytes.Equal(objBuf.Bytes(), mustHex(t, startupObjHex)) {
		t.Error("WriteObj should reproduce the input bytes")
	}
}
