package psyq

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ModuleNameFromPath derives the 8-byte archive member name from a file
// path: the base name up to the first '.', uppercased, truncated to 8 bytes
// and padded with spaces.
//
// The original toolchain only ever saw DOS 8.3 names, so ASCII paths copy
// straight through. Non-ASCII names are accepted as a convenience but must
// be valid UTF-8, and truncation walks grapheme clusters so the stored name
// never ends in a broken code point or a detached combining mark.
func ModuleNameFromPath(path string) ([8]byte, error) {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return [8]byte{}, fmt.Errorf("module name: path %q has no file name", path)
	}
	prefix, _, _ := strings.Cut(base, ".")
	if prefix == "" {
		return [8]byte{}, fmt.Errorf("module name: path %q has no file name", path)
	}

	upper := asciiUpper(prefix)

	name := [8]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	if isASCII(upper) {
		copy(name[:], upper)
		return name, nil
	}

	if !utf8.ValidString(upper) {
		return [8]byte{}, fmt.Errorf("module name: path %q is not valid UTF-8", path)
	}
	copy(name[:], upper[:graphemeFit(upper, len(name))])
	return name, nil
}

// moduleNameFromString packs a caller-provided name the same way path
// derivation does, minus the extension split and the validity checks.
func moduleNameFromString(s string) [8]byte {
	upper := asciiUpper(s)
	name := [8]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	if isASCII(upper) {
		copy(name[:], upper)
		return name
	}
	copy(name[:], upper[:graphemeFit(upper, len(name))])
	return name
}

// graphemeFit returns the longest prefix of s, in bytes, that fits in limit
// bytes without splitting a grapheme cluster.
func graphemeFit(s string, limit int) int {
	size := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		offset, end := g.Positions()
		if offset > limit-1 || end > limit {
			break
		}
		size = end
	}
	return size
}

// asciiUpper uppercases only the ASCII letters, leaving multi-byte
// sequences alone. Case-mapping non-ASCII text can change its byte length,
// which an 8-byte fixed field cannot tolerate.
func asciiUpper(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
