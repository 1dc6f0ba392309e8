package psyq

import (
	"fmt"

	"github.com/psykit/psyk/pkg/codec"
)

// Expression is one node of the relocation-address grammar. The linker
// evaluates these trees to compute patch values: leaves are constants or
// indexed references (symbols, sections, groups) and interior nodes are
// binary operators owning exactly two children.
//
// On disk every node is a tag byte followed by its payload. There is no
// node count and no byte length anywhere in the grammar; each node is
// self-delimiting only because its tag fixes its exact shape.
type Expression interface {
	fmt.Stringer

	appendTo(w *codec.Writer)
}

// Constant is a literal 32-bit value, rendered as $hex.
type Constant uint32

// RefKind selects what an indexed reference resolves to. Values are the
// on-disk tag bytes; the tables below are the single source of truth for
// decode, encode, and rendering.
type RefKind uint8

const (
	RefSymbol       RefKind = 2  // [x], address of symbol x
	RefSectionBase  RefKind = 4  // sectbase(x)
	RefBank         RefKind = 6  // bank(x), unverified
	RefSectionOf    RefKind = 8  // sectof(x), unverified
	RefOffset       RefKind = 10 // offs(x), unverified
	RefSectionStart RefKind = 12 // sectstart(x)
	RefGroupStart   RefKind = 14 // groupstart(x), unverified
	RefGroupOf      RefKind = 16 // groupof(x), unverified
	RefSegment      RefKind = 18 // seg(x), unverified
	RefGroupOrg     RefKind = 20 // grouporg(x)
	RefSectionEnd   RefKind = 22 // sectend(x)
)

var refFormats = map[RefKind]string{
	RefSymbol:       "[%x]",
	RefSectionBase:  "sectbase(%x)",
	RefBank:         "bank(%x)",
	RefSectionOf:    "sectof(%x)",
	RefOffset:       "offs(%x)",
	RefSectionStart: "sectstart(%x)",
	RefGroupStart:   "groupstart(%x)",
	RefGroupOf:      "groupof(%x)",
	RefSegment:      "seg(%x)",
	RefGroupOrg:     "grouporg(%x)",
	RefSectionEnd:   "sectend(%x)",
}

// Ref is a leaf reference carrying a 16-bit index.
type Ref struct {
	Kind  RefKind
	Index uint16
}

// Operator identifies a binary operator node. Values are the on-disk tag
// bytes.
type Operator uint8

const (
	OpEquals       Operator = 32
	OpNotEquals    Operator = 34
	OpLessEqual    Operator = 36
	OpLess         Operator = 38
	OpGreaterEqual Operator = 40
	OpGreater      Operator = 42
	OpAdd          Operator = 44
	OpSubtract     Operator = 46
	OpMultiply     Operator = 48
	OpDivide       Operator = 50
	OpAnd          Operator = 52
	OpOr           Operator = 54 // rendered "!"; the assembler accepted "|" as an alias
	OpXor          Operator = 56
	OpShiftLeft    Operator = 58
	OpShiftRight   Operator = 60
	OpMod          Operator = 62
	OpDashes       Operator = 64 // "---", meaning unknown
	OpRevword      Operator = 66 // SH-2 byte-order helper
	OpCheck0       Operator = 68
	OpCheck1       Operator = 70
	OpBitRange     Operator = 72
	OpArshiftChk   Operator = 74
)

var opSymbols = map[Operator]string{
	OpEquals:       "=",
	OpNotEquals:    "<>",
	OpLessEqual:    "<=",
	OpLess:         "<",
	OpGreaterEqual: ">=",
	OpGreater:      ">",
	OpAdd:          "+",
	OpSubtract:     "-",
	OpMultiply:     "*",
	OpDivide:       "/",
	OpAnd:          "&",
	OpOr:           "!",
	OpXor:          "^",
	OpShiftLeft:    "<<",
	OpShiftRight:   ">>",
	OpMod:          "%%",
	OpDashes:       "---",
	OpRevword:      "-revword-",
	OpCheck0:       "-check0-",
	OpCheck1:       "-check1-",
	OpBitRange:     "-bitrange-",
	OpArshiftChk:   "-arshift_chk-",
}

// BinaryExpr is an operator node. It exclusively owns its two children; the
// structure is always a tree since decoding only builds downward from
// not-yet-consumed bytes.
type BinaryExpr struct {
	Op  Operator
	LHS Expression
	RHS Expression
}

const tagConstant = 0

// DecodeExpression reads one expression tree from r.
func DecodeExpression(r *codec.Reader) (Expression, error) {
	tagOffset := r.Offset()
	tag, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("expression: %w", err)
	}
	switch {
	case tag == tagConstant:
		v, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("expression constant: %w", err)
		}
		return Constant(v), nil

	case refFormats[RefKind(tag)] != "":
		idx, err := r.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("expression reference %#x: %w", tag, err)
		}
		return Ref{Kind: RefKind(tag), Index: idx}, nil

	case opSymbols[Operator(tag)] != "":
		lhs, err := DecodeExpression(r)
		if err != nil {
			return nil, err
		}
		rhs, err := DecodeExpression(r)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: Operator(tag), LHS: lhs, RHS: rhs}, nil

	default:
		return nil, fmt.Errorf("expression: no variant matched tag %#x at offset %#x", tag, tagOffset)
	}
}

func (c Constant) appendTo(w *codec.Writer) {
	w.WriteU8(tagConstant)
	w.WriteU32(uint32(c))
}

func (c Constant) String() string {
	return fmt.Sprintf("$%x", uint32(c))
}

func (e Ref) appendTo(w *codec.Writer) {
	w.WriteU8(uint8(e.Kind))
	w.WriteU16(e.Index)
}

func (e Ref) String() string {
	format, ok := refFormats[e.Kind]
	if !ok {
		format = fmt.Sprintf("ref%d(%%x)", e.Kind)
	}
	return fmt.Sprintf(format, e.Index)
}

func (e *BinaryExpr) appendTo(w *codec.Writer) {
	w.WriteU8(uint8(e.Op))
	e.LHS.appendTo(w)
	e.RHS.appendTo(w)
}

func (e *BinaryExpr) String() string {
	sym, ok := opSymbols[e.Op]
	if !ok {
		sym = fmt.Sprintf(" op%d ", e.Op)
	}
	return fmt.Sprintf("(%s%s%s)", e.LHS, sym, e.RHS)
}

// EncodeExpression serializes one expression tree.
func EncodeExpression(e Expression) []byte {
	var w codec.Writer
	e.appendTo(&w)
	return w.Bytes()
}
