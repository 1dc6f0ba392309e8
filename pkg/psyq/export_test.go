package psyq

import (
	"strings"
	"testing"

	"github.com/psykit/psyk/pkg/codec"
)

func TestExportName(t *testing.T) {
	if got := NewExport("printf").Name(); got != "printf" {
		t.Errorf("Name(): got %q", got)
	}
	if !NewExport("").IsEmpty() {
		t.Error("empty export should be the terminator")
	}
}

func TestExportLeadingNulRendersStar(t *testing.T) {
	// assembler-generated locals keep a NUL prefix on disk
	r := codec.NewReader([]byte{0x04, 0x00, 'a', 'b', 'c'})
	e, err := decodeExport(r)
	if err != nil {
		t.Fatalf("decodeExport failed: %v", err)
	}
	if got := e.Name(); got != "*abc" {
		t.Errorf("Name(): got %q, want %q", got, "*abc")
	}
}

func TestExportTruncates(t *testing.T) {
	e := NewExport(strings.Repeat("x", 300))
	if e.encodedLen() != 256 {
		t.Errorf("encodedLen(): got %d, want 256", e.encodedLen())
	}
}
