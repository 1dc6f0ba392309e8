package psyq

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/psykit/psyk/pkg/codec"
)

// ErrTooSmall reports a file shorter than the four bytes a magic number
// and version occupy.
var ErrTooSmall = errors.New("file too small to contain a magic number")

// MagicError reports leading bytes that are not the expected magic. Want
// is nil when either format would have been accepted.
type MagicError struct {
	Want []byte
	Got  []byte
}

func (e *MagicError) Error() string {
	if e.Want == nil {
		return fmt.Sprintf("unrecognized magic %q", e.Got)
	}
	return fmt.Sprintf("bad magic at 0x0: %q, want %q", e.Got, e.Want)
}

// Read loads the file at path as whichever format its magic announces.
// Exactly one of the returned values is non-nil on success.
func Read(path string) (*Lib, *Obj, error) {
	buf, err := readMagicChecked(path)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case bytes.HasPrefix(buf, LibMagic):
		l, err := DecodeLib(codec.NewReader(buf))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return l, nil, nil
	case bytes.HasPrefix(buf, ObjMagic):
		o, err := DecodeObj(codec.NewReader(buf))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, o, nil
	default:
		return nil, nil, fmt.Errorf("%s: %w", path, &MagicError{Got: buf[:len(LibMagic)]})
	}
}

// ReadLib loads the archive at path.
func ReadLib(path string) (*Lib, error) {
	buf, err := readMagicChecked(path)
	if err != nil {
		return nil, err
	}
	l, err := DecodeLib(codec.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ReadObj loads the OBJ file at path.
func ReadObj(path string) (*Obj, error) {
	buf, err := readMagicChecked(path)
	if err != nil {
		return nil, err
	}
	o, err := DecodeObj(codec.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// ReadLibOpaque loads the archive at path without decoding module bodies.
func ReadLibOpaque(path string) (uint8, []OpaqueModule, error) {
	buf, err := readMagicChecked(path)
	if err != nil {
		return 0, nil, err
	}
	version, modules, err := DecodeLibOpaque(codec.NewReader(buf))
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", path, err)
	}
	return version, modules, nil
}

func readMagicChecked(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(buf) < len(LibMagic)+1 {
		return nil, fmt.Errorf("%s: %w", path, ErrTooSmall)
	}
	return buf, nil
}

// WriteLib serializes the archive to w.
func WriteLib(l *Lib, w io.Writer) error {
	_, err := w.Write(l.Encode())
	return err
}

// WriteObj serializes the OBJ to w.
func WriteObj(o *Obj, w io.Writer) error {
	_, err := w.Write(o.Encode())
	return err
}
