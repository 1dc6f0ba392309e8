package psyq

import (
	"fmt"
	"strings"
)

// CodeFormat selects how Code section bytes are rendered.
type CodeFormat int

const (
	// CodeFormatNone prints only the byte count.
	CodeFormatNone CodeFormat = iota
	// CodeFormatHex prints a hex dump, 16 bytes per row.
	CodeFormatHex
	// CodeFormatDisassembly prints one disassembled instruction per 32-bit
	// word, using RenderOptions.Disassembler. Without a disassembler it
	// falls back to the hex dump.
	CodeFormatDisassembly
)

// Disassembler turns one instruction word into assembly text. Code sections
// carry raw bytes with no architecture tag of their own, so the caller
// chooses the disassembler to match the module's CPU record.
type Disassembler interface {
	Disassemble(word uint32) string
}

// RenderOptions control the human-readable listing produced by the Render
// functions.
type RenderOptions struct {
	CodeFormat CodeFormat

	// Recursive makes archive listings include each module's full OBJ
	// listing, indented one level.
	Recursive bool

	// BritishSpelling prints "Uninitialised" instead of "Uninitialized"
	// for BSS sections, matching the original tool's en_GB output.
	BritishSpelling bool

	Disassembler Disassembler

	indentLevel int
}

func (o RenderOptions) indent() RenderOptions {
	o.indentLevel++
	return o
}

func (o RenderOptions) writeIndent(b *strings.Builder) {
	for i := 0; i < o.indentLevel; i++ {
		b.WriteString("    ")
	}
}

// RenderLib lists an archive the way the original librarian's info command
// did: a header row, then one line per module with its name, creation
// time, and exported symbols.
func RenderLib(l *Lib, o RenderOptions) string {
	var b strings.Builder
	b.WriteString("Module     Date     Time   Externals defined\n\n")
	for i := range l.Modules {
		m := &l.Modules[i]
		b.WriteString(renderModuleRow(m))
		b.WriteByte('\n')
		if o.Recursive {
			b.WriteByte('\n')
			b.WriteString(RenderObj(m.Obj, o.indent()))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderModuleRow(m *Module) string {
	var exports strings.Builder
	for _, e := range m.Exports() {
		exports.WriteString(e.Name())
		exports.WriteByte(' ')
	}
	return fmt.Sprintf("%-8s %s %s", m.Name(), m.Metadata.Created, exports.String())
}

// RenderObj lists an OBJ: a header line and one entry per section.
func RenderObj(obj *Obj, o RenderOptions) string {
	var b strings.Builder
	o.writeIndent(&b)
	fmt.Fprintf(&b, "Header : LNK version %d\n", obj.Version)
	for _, s := range obj.Sections {
		b.WriteString(RenderSection(s, o))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderSection produces the listing entry for one section, leading indent
// included. The wording follows the original dump tool's output, quirks
// and all.
func RenderSection(s Section, o RenderOptions) string {
	var b strings.Builder
	o.writeIndent(&b)
	switch v := s.(type) {
	case NOP:
		b.WriteString("0 : End of file")
	case *Code:
		fmt.Fprintf(&b, "2 : Code %d bytes", len(v.Data))
		renderCode(&b, v.Data, o)
	case *RunAtOffset:
		fmt.Fprintf(&b, "4 : Run at offset %x in %x", v.Offset, v.Section)
	case *SectionSwitch:
		fmt.Fprintf(&b, "6 : Switch to section %x", v.Section)
	case *BSS:
		uninit := "Uninitialized"
		if o.BritishSpelling {
			uninit = "Uninitialised"
		}
		fmt.Fprintf(&b, "8 : %s data, %d bytes", uninit, v.Size)
	case *PatchSection:
		fmt.Fprintf(&b, "10 : Patch type %d at offset %x with %s", v.Type, v.Offset, v.Expression)
	case *XDEFSection:
		fmt.Fprintf(&b, "12 : XDEF symbol number %x '%s' at offset %x in section %x", v.Number, v.Name(), v.Offset, v.Section)
	case *XREFSection:
		fmt.Fprintf(&b, "14 : XREF symbol number %x '%s'", v.Number, v.Name())
	case *SectionHeader:
		fmt.Fprintf(&b, "16 : Section symbol number %x '%s' in group %d alignment %d", v.Section, v.TypeName(), v.Group, v.Align)
	case *LocalSymbol:
		fmt.Fprintf(&b, "18 : Local symbol '%s' at offset %x in section %x", v.Name(), v.Offset, v.Section)
	case *GroupSymbol:
		fmt.Fprintf(&b, "20 : Group symbol number %x `%s` type %d", v.Number, v.Name(), v.Type)
	case *ByteSizeRegister:
		fmt.Fprintf(&b, "22 : Set byte size register to reg offset %d", v.Register)
	case *WordSizeRegister:
		fmt.Fprintf(&b, "24 : Set word size register to reg offset %d", v.Register)
	case *LongSizeRegister:
		fmt.Fprintf(&b, "26 : Set long size register to reg offset %d", v.Register)
	case *FilenameSection:
		fmt.Fprintf(&b, "28 : Define file number %x as \"%s\"", v.Number, v.Name())
	case *SetToFile:
		fmt.Fprintf(&b, "30 : Set to %x, line %d", v.File, v.Line)
	case *SetToLine:
		fmt.Fprintf(&b, "32 : Set to line %d", v.Line)
	case IncrementLineNumber:
		b.WriteString("34 : Increment line number")
	case *IncrementLineNumberByte:
		fmt.Fprintf(&b, "36 : Increment line number by %d", v.Amount)
	case *IncrementLineNumberWord:
		fmt.Fprintf(&b, "38 : Increment line number by %d", v.Amount)
	case *VeryLocalSymbol:
		fmt.Fprintf(&b, "40 : Very local symbol '%s' at offset %x in section %x", v.Name(), v.Offset, v.Section)
	case *Set3ByteRegister:
		fmt.Fprintf(&b, "42 : Set 3-byte size register to reg offset %d", v.Register)
	case *SetMXInfo:
		fmt.Fprintf(&b, "44 : Set MX info at offset %x to %x", v.Offset, v.Value)
	case *CPUSection:
		fmt.Fprintf(&b, "46 : Processor type %d", v.CPU)
	case *XBSSSection:
		fmt.Fprintf(&b, "48 : XBSS symbol number %x '%s' size %x in section %x", v.Number, v.Name(), v.Size, v.Section)
	case *IncSLDLineNum:
		fmt.Fprintf(&b, "50 : Inc SLD linenum at offset %x", v.Offset)
	case *IncSLDLineNumByte:
		fmt.Fprintf(&b, "52 : Inc SLD linenum by byte %d at offset %x", v.Amount, v.Offset)
	case *IncSLDLineNumWord:
		fmt.Fprintf(&b, "54 : Inc SLD linenum by word %d at offset %x", v.Amount, v.Offset)
	case *SetSLDLineNum:
		fmt.Fprintf(&b, "56 : Set SLD linenum to %d at offset %x", v.Line, v.Offset)
	case *SetSLDLineNumFile:
		fmt.Fprintf(&b, "58 : Set SLD linenum to %d at offset %x in file %x", v.Line, v.Offset, v.File)
	case *EndSLDInfo:
		fmt.Fprintf(&b, "60 : End SLD info at offset %x", v.Offset)
	case *RepeatByte:
		fmt.Fprintf(&b, "62 : Repeat byte %d times", v.Count)
	case *RepeatWord:
		fmt.Fprintf(&b, "64 : Repeat word %d times", v.Count)
	case *RepeatLong:
		fmt.Fprintf(&b, "66 : Repeat long %d times", v.Count)
	case *ProcedureCall:
		fmt.Fprintf(&b, "68 : <<<<Unimplemented>>>> ProcedureCall { distance: %d, symbol: %d }", v.Distance, v.Symbol)
	case *ProcedureDefinition:
		fmt.Fprintf(&b, "70 : <<<<Unimplemented>>>> ProcedureDefinition { symbol: %d }", v.Symbol)
	case *Repeat3Byte:
		fmt.Fprintf(&b, "72 : Repeat 3-byte %d times", v.Count)
	case *FunctionStart:
		fmt.Fprintf(&b, "74 : Function start :\n"+
			" section %04x\n"+
			" offset $%08x\n"+
			" file %04x\n"+
			" start line %d\n"+
			" frame reg %d\n"+
			" frame size %d\n"+
			" return pc reg %d\n"+
			" mask $%08x\n"+
			" mask offset %d\n"+
			" name %s",
			v.Section, v.Offset, v.File, v.Line, v.FrameReg, v.FrameSize,
			v.ReturnPCReg, v.Mask, v.MaskOffset, v.Name())
	case *FunctionEnd:
		fmt.Fprintf(&b, "76 : Function end :\n"+
			" section %04x\n"+
			" offset $%08x\n"+
			" end line %d",
			v.Section, v.Offset, v.Line)
	case *BlockStart:
		// The missing newline before "section" reproduces the original
		// dump tool's output.
		fmt.Fprintf(&b, "78 : Block start : section %04x\n"+
			" offset $%08x\n"+
			" start line %d",
			v.Section, v.Offset, v.Line)
	case *BlockEnd:
		fmt.Fprintf(&b, "80 : Block end\n"+
			" section %04x\n"+
			" offset $%08x\n"+
			" end line %d",
			v.Section, v.Offset, v.Line)
	case *Def:
		fmt.Fprintf(&b, "82 : Def :\n"+
			" section %04x\n"+
			" value $%08x\n"+
			" class %d\n"+
			" type %d\n"+
			" size %d\n"+
			" name : %s",
			v.Section, v.Value, v.Class, v.DefType, v.Size, v.Name())
	case *Def2:
		fmt.Fprintf(&b, "84 : Def2 :\n"+
			" section %04x\n"+
			" value $%08x\n"+
			" class %d\n"+
			" type %d\n"+
			" size %d\n"+
			" dims %s \n"+
			" tag %s\n"+
			"%s",
			v.Section, v.Value, v.Class, v.DefType, v.Size, v.Dims, v.TagName(), v.Name())
	default:
		fmt.Fprintf(&b, "%d : unknown section %T", s.Tag(), s)
	}
	return b.String()
}

func renderCode(b *strings.Builder, data []byte, o RenderOptions) {
	switch {
	case o.CodeFormat == CodeFormatDisassembly && o.Disassembler != nil:
		b.WriteString("\n\n")
		for i := 0; i+4 <= len(data); i += 4 {
			word := uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
			o.writeIndent(b)
			fmt.Fprintf(b, "    /* %08x */   %s\n", word, o.Disassembler.Disassemble(word))
		}
		if rem := len(data) % 4; rem != 0 {
			b.WriteString("    /* ")
			for _, x := range data[len(data)-rem:] {
				fmt.Fprintf(b, "%02x", x)
			}
			b.WriteString(" */ ; invalid\n")
		}
	case o.CodeFormat == CodeFormatHex || o.CodeFormat == CodeFormatDisassembly:
		b.WriteString("\n\n")
		for i := 0; i < len(data); i += 16 {
			end := i + 16
			if end > len(data) {
				end = len(data)
			}
			o.writeIndent(b)
			fmt.Fprintf(b, "%04x:", i)
			for _, x := range data[i:end] {
				fmt.Fprintf(b, " %02x", x)
			}
			b.WriteByte('\n')
		}
	}
}
