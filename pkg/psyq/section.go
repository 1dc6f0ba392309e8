package psyq

import (
	"fmt"

	"github.com/psykit/psyk/pkg/codec"
)

// Section is one record of an OBJ file's body: machine code, relocation
// patches, symbol definitions, or debug information. On disk each section
// is one even tag byte followed by a payload whose layout the tag fixes.
//
// A number of the rarer shapes were reconstructed from the output of the
// original toolchain's dump utility and have never been seen in real files.
// Those layouts are decoded and re-encoded exactly as documented, but their
// field names are best guesses.
type Section interface {
	// Tag returns the on-disk tag byte.
	Tag() uint8

	appendTo(w *codec.Writer)
}

// Section tags. Always even; odd values never appear in valid files.
const (
	TagNOP                     uint8 = 0
	TagCode                    uint8 = 2
	TagRunAtOffset             uint8 = 4
	TagSectionSwitch           uint8 = 6
	TagBSS                     uint8 = 8
	TagPatch                   uint8 = 10
	TagXDEF                    uint8 = 12
	TagXREF                    uint8 = 14
	TagSectionHeader           uint8 = 16
	TagLocalSymbol             uint8 = 18
	TagGroupSymbol             uint8 = 20
	TagByteSizeRegister        uint8 = 22
	TagWordSizeRegister        uint8 = 24
	TagLongSizeRegister        uint8 = 26
	TagFilename                uint8 = 28
	TagSetToFile               uint8 = 30
	TagSetToLine               uint8 = 32
	TagIncrementLineNumber     uint8 = 34
	TagIncrementLineNumberByte uint8 = 36
	TagIncrementLineNumberWord uint8 = 38
	TagVeryLocalSymbol         uint8 = 40
	TagSet3ByteRegister        uint8 = 42
	TagSetMXInfo               uint8 = 44
	TagCPU                     uint8 = 46
	TagXBSS                    uint8 = 48
	TagIncSLDLineNum           uint8 = 50
	TagIncSLDLineNumByte       uint8 = 52
	TagIncSLDLineNumWord       uint8 = 54
	TagSetSLDLineNum           uint8 = 56
	TagSetSLDLineNumFile       uint8 = 58
	TagEndSLDInfo              uint8 = 60
	TagRepeatByte              uint8 = 62
	TagRepeatWord              uint8 = 64
	TagRepeatLong              uint8 = 66
	TagProcedureCall           uint8 = 68
	TagProcedureDefinition     uint8 = 70
	TagRepeat3Byte             uint8 = 72
	TagFunctionStart           uint8 = 74
	TagFunctionEnd             uint8 = 76
	TagBlockStart              uint8 = 78
	TagBlockEnd                uint8 = 80
	TagDef                     uint8 = 82
	TagDef2                    uint8 = 84
)

// NOP terminates the section list. It is kept as the final element of a
// decoded OBJ so encoding reproduces the terminator.
type NOP struct{}

// Code is a run of machine code bytes for the current section.
type Code struct {
	Data []byte
}

// RunAtOffset sets the execution start point. Field meaning is unverified.
type RunAtOffset struct {
	Section uint16
	Offset  uint16
}

// SectionSwitch makes a section current; Code, Patch, and BSS records that
// follow apply to it.
type SectionSwitch struct {
	Section uint16
}

// BSS reserves uninitialized space in the current section.
type BSS struct {
	Size uint32
}

// PatchSection is a relocation: the linker evaluates the expression and
// writes the result at Offset in the current section, in the encoding Type
// selects (full word, high half, low half, ...).
type PatchSection struct {
	Type       uint8
	Offset     uint16
	Expression Expression
}

// XDEFSection exports a symbol defined at an offset within a section.
type XDEFSection struct {
	Number  uint16
	Section uint16
	Offset  uint32
	name    []byte
}

// XREFSection imports a symbol defined elsewhere. Patch expressions refer
// to it by Number.
type XREFSection struct {
	Number uint16
	name   []byte
}

// SectionHeader declares a section: its ID, group, alignment, and type name
// (".text", ".data", ".bss", ...).
type SectionHeader struct {
	Section  uint16
	Group    uint16
	Align    uint8
	typeName []byte
}

// LocalSymbol names an address visible only within this module.
type LocalSymbol struct {
	Section uint16
	Offset  uint32
	name    []byte
}

// GroupSymbol declares a section group.
type GroupSymbol struct {
	Number uint16
	Type   uint8
	name   []byte
}

// ByteSizeRegister layout is unverified.
type ByteSizeRegister struct {
	Register uint16
}

// WordSizeRegister layout is unverified.
type WordSizeRegister struct {
	Register uint16
}

// LongSizeRegister layout is unverified.
type LongSizeRegister struct {
	Register uint16
}

// FilenameSection assigns a number to a source file name for later debug
// records to reference.
type FilenameSection struct {
	Number uint16
	name   []byte
}

// SetToFile layout is unverified.
type SetToFile struct {
	File uint16
	Line uint32
}

// SetToLine layout is unverified.
type SetToLine struct {
	Line uint32
}

// IncrementLineNumber layout is unverified. It has no payload.
type IncrementLineNumber struct{}

// IncrementLineNumberByte layout is unverified.
type IncrementLineNumberByte struct {
	Amount uint8
}

// IncrementLineNumberWord layout is unverified.
type IncrementLineNumberWord struct {
	Amount uint32
}

// VeryLocalSymbol shares LocalSymbol's layout; how its scope differs is
// unverified.
type VeryLocalSymbol struct {
	Section uint16
	Offset  uint32
	name    []byte
}

// Set3ByteRegister layout is unverified.
type Set3ByteRegister struct {
	Register uint16
}

// SetMXInfo carries 65816 M/X flag state for the disassembler.
type SetMXInfo struct {
	Offset uint16
	Value  uint8
}

// CPUSection states which processor the module's code targets. See the CPU
// constants.
type CPUSection struct {
	CPU uint8
}

// XBSSSection exports a symbol naming uninitialized space.
type XBSSSection struct {
	Number  uint16
	Section uint16
	Size    uint32
	name    []byte
}

// IncSLDLineNum advances the source-line debug cursor by one line.
type IncSLDLineNum struct {
	Offset uint16
}

// IncSLDLineNumByte advances the source-line debug cursor by a small amount.
type IncSLDLineNumByte struct {
	Offset uint16
	Amount uint8
}

// IncSLDLineNumWord advances the source-line debug cursor by a large amount.
type IncSLDLineNumWord struct {
	Offset uint16
	Amount uint32
}

// SetSLDLineNum sets the source-line debug cursor to an absolute line.
type SetSLDLineNum struct {
	Offset uint16
	Line   uint32
}

// SetSLDLineNumFile sets the source-line debug cursor to a line of a
// numbered file.
type SetSLDLineNumFile struct {
	Offset uint16
	Line   uint32
	File   uint16
}

// EndSLDInfo closes the source-line debug stream.
type EndSLDInfo struct {
	Offset uint16
}

// RepeatByte layout is unverified.
type RepeatByte struct {
	Count uint32
}

// RepeatWord layout is unverified.
type RepeatWord struct {
	Count uint32
}

// RepeatLong layout is unverified.
type RepeatLong struct {
	Count uint32
}

// ProcedureCall layout is unverified.
type ProcedureCall struct {
	Distance uint8
	Symbol   uint16
}

// ProcedureDefinition layout is unverified.
type ProcedureDefinition struct {
	Symbol uint16
}

// Repeat3Byte layout is unverified.
type Repeat3Byte struct {
	Count uint32
}

// FunctionStart opens a function's debug record: where it lives, which
// source line starts it, and the frame layout the debugger needs to unwind.
type FunctionStart struct {
	Section     uint16
	Offset      uint32
	File        uint16
	Line        uint32
	FrameReg    uint16
	FrameSize   uint32
	ReturnPCReg uint16
	Mask        uint32
	MaskOffset  int32
	name        []byte
}

// FunctionEnd closes the current function's debug record.
type FunctionEnd struct {
	Section uint16
	Offset  uint32
	Line    uint32
}

// BlockStart opens a lexical block within the current function.
type BlockStart struct {
	Section uint16
	Offset  uint32
	Line    uint32
}

// BlockEnd closes the current lexical block.
type BlockEnd struct {
	Section uint16
	Offset  uint32
	Line    uint32
}

// Def is a variable or type definition debug record.
type Def struct {
	Section uint16
	Value   uint32
	Class   uint16
	DefType uint16
	Size    uint32
	name    []byte
}

// Dim is the array-dimension part of a Def2: either absent or one size.
// The on-disk discriminator is 16 bits wide.
type Dim struct {
	Valued bool
	Size   uint32
}

// Def2 extends Def with array dimensions and a struct/union tag name.
type Def2 struct {
	Section uint16
	Value   uint32
	Class   uint16
	DefType uint16
	Size    uint32
	Dims    Dim
	tagName []byte
	name    []byte
}

func (NOP) Tag() uint8 { return TagNOP }
func (*Code) Tag() uint8 { return TagCode }
func (*RunAtOffset) Tag() uint8 { return TagRunAtOffset }
func (*SectionSwitch) Tag() uint8 { return TagSectionSwitch }
func (*BSS) Tag() uint8 { return TagBSS }
func (*PatchSection) Tag() uint8 { return TagPatch }
func (*XDEFSection) Tag() uint8 { return TagXDEF }
func (*XREFSection) Tag() uint8 { return TagXREF }
func (*SectionHeader) Tag() uint8 { return TagSectionHeader }
func (*LocalSymbol) Tag() uint8 { return TagLocalSymbol }
func (*GroupSymbol) Tag() uint8 { return TagGroupSymbol }
func (*ByteSizeRegister) Tag() uint8 { return TagByteSizeRegister }
func (*WordSizeRegister) Tag() uint8 { return TagWordSizeRegister }
func (*LongSizeRegister) Tag() uint8 { return TagLongSizeRegister }
func (*FilenameSection) Tag() uint8 { return TagFilename }
func (*SetToFile) Tag() uint8 { return TagSetToFile }
func (*SetToLine) Tag() uint8 { return TagSetToLine }
func (IncrementLineNumber) Tag() uint8 { return TagIncrementLineNumber }
func (*IncrementLineNumberByte) Tag() uint8 { return TagIncrementLineNumberByte }
func (*IncrementLineNumberWord) Tag() uint8 { return TagIncrementLineNumberWord }

func (*VeryLocalSymbol) Tag() uint8 { return TagVeryLocalSymbol }
func (*Set3ByteRegister) Tag() uint8 { return TagSet3ByteRegister }
func (*SetMXInfo) Tag() uint8 { return TagSetMXInfo }
func (*CPUSection) Tag() uint8 { return TagCPU }
func (*XBSSSection) Tag() uint8 { return TagXBSS }
func (*IncSLDLineNum) Tag() uint8 { return TagIncSLDLineNum }
func (*IncSLDLineNumByte) Tag() uint8 { return TagIncSLDLineNumByte }
func (*IncSLDLineNumWord) Tag() uint8 { return TagIncSLDLineNumWord }
func (*SetSLDLineNum) Tag() uint8 { return TagSetSLDLineNum }
func (*SetSLDLineNumFile) Tag() uint8 { return TagSetSLDLineNumFile }
func (*EndSLDInfo) Tag() uint8 { return TagEndSLDInfo }
func (*RepeatByte) Tag() uint8 { return TagRepeatByte }
func (*RepeatWord) Tag() uint8 { return TagRepeatWord }
func (*RepeatLong) Tag() uint8 { return TagRepeatLong }
func (*ProcedureCall) Tag() uint8 { return TagProcedureCall }
func (*ProcedureDefinition) Tag() uint8 { return TagProcedureDefinition }
func (*Repeat3Byte) Tag() uint8 { return TagRepeat3Byte }
func (*FunctionStart) Tag() uint8 { return TagFunctionStart }
func (*FunctionEnd) Tag() uint8 { return TagFunctionEnd }
func (*BlockStart) Tag() uint8 { return TagBlockStart }
func (*BlockEnd) Tag() uint8 { return TagBlockEnd }
func (*Def) Tag() uint8 { return TagDef }
func (*Def2) Tag() uint8 { return TagDef2 }

// Name accessors. The raw bytes are preserved for round trips; the string
// views are for display and lookup.

func (s *XDEFSection) Name() string { return string(s.name) }
func (s *XREFSection) Name() string { return string(s.name) }
func (s *SectionHeader) TypeName() string { return string(s.typeName) }
func (s *LocalSymbol) Name() string { return string(s.name) }
func (s *GroupSymbol) Name() string { return string(s.name) }
func (s *FilenameSection) Name() string { return string(s.name) }
func (s *VeryLocalSymbol) Name() string { return string(s.name) }
func (s *XBSSSection) Name() string { return string(s.name) }
func (s *FunctionStart) Name() string { return string(s.name) }
func (s *Def) Name() string { return string(s.name) }
func (s *Def2) TagName() string { return string(s.tagName) }
func (s *Def2) Name() string { return string(s.name) }

// Constructors for the variants that carry hidden name bytes. Each
// truncates the name to the 255 bytes its length prefix can express.

func NewXDEF(number, section uint16, offset uint32, name string) *XDEFSection {
	return &XDEFSection{Number: number, Section: section, Offset: offset, name: clampName(name)}
}

func NewXREF(number uint16, name string) *XREFSection {
	return &XREFSection{Number: number, name: clampName(name)}
}

func NewSectionHeader(section, group uint16, align uint8, typeName string) *SectionHeader {
	return &SectionHeader{Section: section, Group: group, Align: align, typeName: clampName(typeName)}
}

func NewLocalSymbol(section uint16, offset uint32, name string) *LocalSymbol {
	return &LocalSymbol{Section: section, Offset: offset, name: clampName(name)}
}

func NewGroupSymbol(number uint16, symType uint8, name string) *GroupSymbol {
	return &GroupSymbol{Number: number, Type: symType, name: clampName(name)}
}

func NewFilename(number uint16, name string) *FilenameSection {
	return &FilenameSection{Number: number, name: clampName(name)}
}

func NewVeryLocalSymbol(section uint16, offset uint32, name string) *VeryLocalSymbol {
	return &VeryLocalSymbol{Section: section, Offset: offset, name: clampName(name)}
}

func NewXBSS(number, section uint16, size uint32, name string) *XBSSSection {
	return &XBSSSection{Number: number, Section: section, Size: size, name: clampName(name)}
}

func NewFunctionStart(s FunctionStart, name string) *FunctionStart {
	s.name = clampName(name)
	return &s
}

func NewDef(section uint16, value uint32, class, defType uint16, size uint32, name string) *Def {
	return &Def{Section: section, Value: value, Class: class, DefType: defType, Size: size, name: clampName(name)}
}

func NewDef2(d Def2, tagName, name string) *Def2 {
	d.tagName = clampName(tagName)
	d.name = clampName(name)
	return &d
}

func clampName(s string) []byte {
	b := []byte(s)
	if len(b) > 255 {
		b = b[:255]
	}
	return b
}

func (d Dim) String() string {
	if d.Valued {
		return fmt.Sprintf("1 %d", d.Size)
	}
	return "0"
}

// DecodeSection reads one section, tag byte included, from r.
func DecodeSection(r *codec.Reader) (Section, error) {
	tagOffset := r.Offset()
	tag, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}

	d := sectionDecoder{r: r}
	var s Section
	switch tag {
	case TagNOP:
		s = NOP{}
	case TagCode:
		size := d.u16()
		data, err := r.ReadBytes(int(size))
		if err != nil && d.err == nil {
			d.err = err
		}
		s = &Code{Data: data}
	case TagRunAtOffset:
		s = &RunAtOffset{Section: d.u16(), Offset: d.u16()}
	case TagSectionSwitch:
		s = &SectionSwitch{Section: d.u16()}
	case TagBSS:
		s = &BSS{Size: d.u32()}
	case TagPatch:
		p := &PatchSection{Type: d.u8(), Offset: d.u16()}
		if d.err == nil {
			p.Expression, d.err = DecodeExpression(r)
		}
		s = p
	case TagXDEF:
		s = &XDEFSection{Number: d.u16(), Section: d.u16(), Offset: d.u32(), name: d.prefixed()}
	case TagXREF:
		s = &XREFSection{Number: d.u16(), name: d.prefixed()}
	case TagSectionHeader:
		s = &SectionHeader{Section: d.u16(), Group: d.u16(), Align: d.u8(), typeName: d.prefixed()}
	case TagLocalSymbol:
		s = &LocalSymbol{Section: d.u16(), Offset: d.u32(), name: d.prefixed()}
	case TagGroupSymbol:
		s = &GroupSymbol{Number: d.u16(), Type: d.u8(), name: d.prefixed()}
	case TagByteSizeRegister:
		s = &ByteSizeRegister{Register: d.u16()}
	case TagWordSizeRegister:
		s = &WordSizeRegister{Register: d.u16()}
	case TagLongSizeRegister:
		s = &LongSizeRegister{Register: d.u16()}
	case TagFilename:
		s = &FilenameSection{Number: d.u16(), name: d.prefixed()}
	case TagSetToFile:
		s = &SetToFile{File: d.u16(), Line: d.u32()}
	case TagSetToLine:
		s = &SetToLine{Line: d.u32()}
	case TagIncrementLineNumber:
		s = IncrementLineNumber{}
	case TagIncrementLineNumberByte:
		s = &IncrementLineNumberByte{Amount: d.u8()}
	case TagIncrementLineNumberWord:
		s = &IncrementLineNumberWord{Amount: d.u32()}
	case TagVeryLocalSymbol:
		s = &VeryLocalSymbol{Section: d.u16(), Offset: d.u32(), name: d.prefixed()}
	case TagSet3ByteRegister:
		s = &Set3ByteRegister{Register: d.u16()}
	case TagSetMXInfo:
		s = &SetMXInfo{Offset: d.u16(), Value: d.u8()}
	case TagCPU:
		s = &CPUSection{CPU: d.u8()}
	case TagXBSS:
		s = &XBSSSection{Number: d.u16(), Section: d.u16(), Size: d.u32(), name: d.prefixed()}
	case TagIncSLDLineNum:
		s = &IncSLDLineNum{Offset: d.u16()}
	case TagIncSLDLineNumByte:
		s = &IncSLDLineNumByte{Offset: d.u16(), Amount: d.u8()}
	case TagIncSLDLineNumWord:
		s = &IncSLDLineNumWord{Offset: d.u16(), Amount: d.u32()}
	case TagSetSLDLineNum:
		s = &SetSLDLineNum{Offset: d.u16(), Line: d.u32()}
	case TagSetSLDLineNumFile:
		s = &SetSLDLineNumFile{Offset: d.u16(), Line: d.u32(), File: d.u16()}
	case TagEndSLDInfo:
		s = &EndSLDInfo{Offset: d.u16()}
	case TagRepeatByte:
		s = &RepeatByte{Count: d.u32()}
	case TagRepeatWord:
		s = &RepeatWord{Count: d.u32()}
	case TagRepeatLong:
		s = &RepeatLong{Count: d.u32()}
	case TagProcedureCall:
		s = &ProcedureCall{Distance: d.u8(), Symbol: d.u16()}
	case TagProcedureDefinition:
		s = &ProcedureDefinition{Symbol: d.u16()}
	case TagRepeat3Byte:
		s = &Repeat3Byte{Count: d.u32()}
	case TagFunctionStart:
		s = &FunctionStart{
			Section:     d.u16(),
			Offset:      d.u32(),
			File:        d.u16(),
			Line:        d.u32(),
			FrameReg:    d.u16(),
			FrameSize:   d.u32(),
			ReturnPCReg: d.u16(),
			Mask:        d.u32(),
			MaskOffset:  d.i32(),
			name:        d.prefixed(),
		}
	case TagFunctionEnd:
		s = &FunctionEnd{Section: d.u16(), Offset: d.u32(), Line: d.u32()}
	case TagBlockStart:
		s = &BlockStart{Section: d.u16(), Offset: d.u32(), Line: d.u32()}
	case TagBlockEnd:
		s = &BlockEnd{Section: d.u16(), Offset: d.u32(), Line: d.u32()}
	case TagDef:
		s = &Def{Section: d.u16(), Value: d.u32(), Class: d.u16(), DefType: d.u16(), Size: d.u32(), name: d.prefixed()}
	case TagDef2:
		v := &Def2{Section: d.u16(), Value: d.u32(), Class: d.u16(), DefType: d.u16(), Size: d.u32()}
		if d.err == nil {
			v.Dims, d.err = decodeDim(r)
		}
		v.tagName = d.prefixed()
		v.name = d.prefixed()
		s = v
	default:
		return nil, fmt.Errorf("section: no variant matched tag %#x at offset %#x", tag, tagOffset)
	}

	if d.err != nil {
		return nil, fmt.Errorf("section %d: %w", tag, d.err)
	}
	return s, nil
}

func decodeDim(r *codec.Reader) (Dim, error) {
	tagOffset := r.Offset()
	tag, err := r.ReadU16()
	if err != nil {
		return Dim{}, fmt.Errorf("dim: %w", err)
	}
	switch tag {
	case 0:
		return Dim{}, nil
	case 1:
		size, err := r.ReadU32()
		if err != nil {
			return Dim{}, fmt.Errorf("dim size: %w", err)
		}
		return Dim{Valued: true, Size: size}, nil
	default:
		return Dim{}, fmt.Errorf("dim: no variant matched tag %#x at offset %#x", tag, tagOffset)
	}
}

// sectionDecoder collects the first read error so payload decoding reads
// straight through without checking every field.
type sectionDecoder struct {
	r   *codec.Reader
	err error
}

func (d *sectionDecoder) u8() uint8 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ReadU8()
	d.err = err
	return v
}

func (d *sectionDecoder) u16() uint16 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ReadU16()
	d.err = err
	return v
}

func (d *sectionDecoder) u32() uint32 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ReadU32()
	d.err = err
	return v
}

func (d *sectionDecoder) i32() int32 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ReadI32()
	d.err = err
	return v
}

func (d *sectionDecoder) prefixed() []byte {
	if d.err != nil {
		return nil
	}
	v, err := d.r.ReadPrefixedBytes()
	d.err = err
	return v
}

func (s NOP) appendTo(w *codec.Writer) {
	w.WriteU8(TagNOP)
}

func (s *Code) appendTo(w *codec.Writer) {
	w.WriteU8(TagCode)
	w.WriteU16(uint16(len(s.Data)))
	w.WriteBytes(s.Data)
}

func (s *RunAtOffset) appendTo(w *codec.Writer) {
	w.WriteU8(TagRunAtOffset)
	w.WriteU16(s.Section)
	w.WriteU16(s.Offset)
}

func (s *SectionSwitch) appendTo(w *codec.Writer) {
	w.WriteU8(TagSectionSwitch)
	w.WriteU16(s.Section)
}

func (s *BSS) appendTo(w *codec.Writer) {
	w.WriteU8(TagBSS)
	w.WriteU32(s.Size)
}

func (s *PatchSection) appendTo(w *codec.Writer) {
	w.WriteU8(TagPatch)
	w.WriteU8(s.Type)
	w.WriteU16(s.Offset)
	s.Expression.appendTo(w)
}

func (s *XDEFSection) appendTo(w *codec.Writer) {
	w.WriteU8(TagXDEF)
	w.WriteU16(s.Number)
	w.WriteU16(s.Section)
	w.WriteU32(s.Offset)
	w.WritePrefixedBytes(s.name)
}

func (s *XREFSection) appendTo(w *codec.Writer) {
	w.WriteU8(TagXREF)
	w.WriteU16(s.Number)
	w.WritePrefixedBytes(s.name)
}

func (s *SectionHeader) appendTo(w *codec.Writer) {
	w.WriteU8(TagSectionHeader)
	w.WriteU16(s.Section)
	w.WriteU16(s.Group)
	w.WriteU8(s.Align)
	w.WritePrefixedBytes(s.typeName)
}

func (s *LocalSymbol) appendTo(w *codec.Writer) {
	w.WriteU8(TagLocalSymbol)
	w.WriteU16(s.Section)
	w.WriteU32(s.Offset)
	w.WritePrefixedBytes(s.name)
}

func (s *GroupSymbol) appendTo(w *codec.Writer) {
	w.WriteU8(TagGroupSymbol)
	w.WriteU16(s.Number)
	w.WriteU8(s.Type)
	w.WritePrefixedBytes(s.name)
}

func (s *ByteSizeRegister) appendTo(w *codec.Writer) {
	w.WriteU8(TagByteSizeRegister)
	w.WriteU16(s.Register)
}

func (s *WordSizeRegister) appendTo(w *codec.Writer) {
	w.WriteU8(TagWordSizeRegister)
	w.WriteU16(s.Register)
}

func (s *LongSizeRegister) appendTo(w *codec.Writer) {
	w.WriteU8(TagLongSizeRegister)
	w.WriteU16(s.Register)
}

func (s *FilenameSection) appendTo(w *codec.Writer) {
	w.WriteU8(TagFilename)
	w.WriteU16(s.Number)
	w.WritePrefixedBytes(s.name)
}

func (s *SetToFile) appendTo(w *codec.Writer) {
	w.WriteU8(TagSetToFile)
	w.WriteU16(s.File)
	w.WriteU32(s.Line)
}

func (s *SetToLine) appendTo(w *codec.Writer) {
	w.WriteU8(TagSetToLine)
	w.WriteU32(s.Line)
}

func (s IncrementLineNumber) appendTo(w *codec.Writer) {
	w.WriteU8(TagIncrementLineNumber)
}

func (s *IncrementLineNumberByte) appendTo(w *codec.Writer) {
	w.WriteU8(TagIncrementLineNumberByte)
	w.WriteU8(s.Amount)
}

func (s *IncrementLineNumberWord) appendTo(w *codec.Writer) {
	w.WriteU8(TagIncrementLineNumberWord)
	w.WriteU32(s.Amount)
}

func (s *VeryLocalSymbol) appendTo(w *codec.Writer) {
	w.WriteU8(TagVeryLocalSymbol)
	w.WriteU16(s.Section)
	w.WriteU32(s.Offset)
	w.WritePrefixedBytes(s.name)
}

func (s *Set3ByteRegister) appendTo(w *codec.Writer) {
	w.WriteU8(TagSet3ByteRegister)
	w.WriteU16(s.Register)
}

func (s *SetMXInfo) appendTo(w *codec.Writer) {
	w.WriteU8(TagSetMXInfo)
	w.WriteU16(s.Offset)
	w.WriteU8(s.Value)
}

func (s *CPUSection) appendTo(w *codec.Writer) {
	w.WriteU8(TagCPU)
	w.WriteU8(s.CPU)
}

func (s *XBSSSection) appendTo(w *codec.Writer) {
	w.WriteU8(TagXBSS)
	w.WriteU16(s.Number)
	w.WriteU16(s.Section)
	w.WriteU32(s.Size)
	w.WritePrefixedBytes(s.name)
}

func (s *IncSLDLineNum) appendTo(w *codec.Writer) {
	w.WriteU8(TagIncSLDLineNum)
	w.WriteU16(s.Offset)
}

func (s *IncSLDLineNumByte) appendTo(w *codec.Writer) {
	w.WriteU8(TagIncSLDLineNumByte)
	w.WriteU16(s.Offset)
	w.WriteU8(s.Amount)
}

func (s *IncSLDLineNumWord) appendTo(w *codec.Writer) {
	w.WriteU8(TagIncSLDLineNumWord)
	w.WriteU16(s.Offset)
	w.WriteU32(s.Amount)
}

func (s *SetSLDLineNum) appendTo(w *codec.Writer) {
	w.WriteU8(TagSetSLDLineNum)
	w.WriteU16(s.Offset)
	w.WriteU32(s.Line)
}

func (s *SetSLDLineNumFile) appendTo(w *codec.Writer) {
	w.WriteU8(TagSetSLDLineNumFile)
	w.WriteU16(s.Offset)
	w.WriteU32(s.Line)
	w.WriteU16(s.File)
}

func (s *EndSLDInfo) appendTo(w *codec.Writer) {
	w.WriteU8(TagEndSLDInfo)
	w.WriteU16(s.Offset)
}

func (s *RepeatByte) appendTo(w *codec.Writer) {
	w.WriteU8(TagRepeatByte)
	w.WriteU32(s.Count)
}

func (s *RepeatWord) appendTo(w *codec.Writer) {
	w.WriteU8(TagRepeatWord)
	w.WriteU32(s.Count)
}

func (s *RepeatLong) appendTo(w *codec.Writer) {
	w.WriteU8(TagRepeatLong)
	w.WriteU32(s.Count)
}

func (s *ProcedureCall) appendTo(w *codec.Writer) {
	w.WriteU8(TagProcedureCall)
	w.WriteU8(s.Distance)
	w.WriteU16(s.Symbol)
}

func (s *ProcedureDefinition) appendTo(w *codec.Writer) {
	w.WriteU8(TagProcedureDefinition)
	w.WriteU16(s.Symbol)
}

func (s *Repeat3Byte) appendTo(w *codec.Writer) {
	w.WriteU8(TagRepeat3Byte)
	w.WriteU32(s.Count)
}

func (s *FunctionStart) appendTo(w *codec.Writer) {
	w.WriteU8(TagFunctionStart)
	w.WriteU16(s.Section)
	w.WriteU32(s.Offset)
	w.WriteU16(s.File)
	w.WriteU32(s.Line)
	w.WriteU16(s.FrameReg)
	w.WriteU32(s.FrameSize)
	w.WriteU16(s.ReturnPCReg)
	w.WriteU32(s.Mask)
	w.WriteI32(s.MaskOffset)
	w.WritePrefixedBytes(s.name)
}

func (s *FunctionEnd) appendTo(w *codec.Writer) {
	w.WriteU8(TagFunctionEnd)
	w.WriteU16(s.Section)
	w.WriteU32(s.Offset)
	w.WriteU32(s.Line)
}

func (s *BlockStart) appendTo(w *codec.Writer) {
	w.WriteU8(TagBlockStart)
	w.WriteU16(s.Section)
	w.WriteU32(s.Offset)
	w.WriteU32(s.Line)
}

func (s *BlockEnd) appendTo(w *codec.Writer) {
	w.WriteU8(TagBlockEnd)
	w.WriteU16(s.Section)
	w.WriteU32(s.Offset)
	w.WriteU32(s.Line)
}

func (s *Def) appendTo(w *codec.Writer) {
	w.WriteU8(TagDef)
	w.WriteU16(s.Section)
	w.WriteU32(s.Value)
	w.WriteU16(s.Class)
	w.WriteU16(s.DefType)
	w.WriteU32(s.Size)
	w.WritePrefixedBytes(s.name)
}

func (s *Def2) appendTo(w *codec.Writer) {
	w.WriteU8(TagDef2)
	w.WriteU16(s.Section)
	w.WriteU32(s.Value)
	w.WriteU16(s.Class)
	w.WriteU16(s.DefType)
	w.WriteU32(s.Size)
	if s.Dims.Valued {
		w.WriteU16(1)
		w.WriteU32(s.Dims.Size)
	} else {
		w.WriteU16(0)
	}
	w.WritePrefixedBytes(s.tagName)
	w.WritePrefixedBytes(s.name)
}

// EncodeSection serializes one section, tag byte included.
func EncodeSection(s Section) []byte {
	var w codec.Writer
	s.appendTo(&w)
	return w.Bytes()
}
