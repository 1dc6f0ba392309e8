// Package psyq parses, represents, and re-serializes the PSY-Q LIB and OBJ
// container formats used by the PlayStation 1 development toolchain and its
// Saturn/Genesis/SNES siblings.
//
// # Formats
//
// An OBJ file holds relocatable machine code, symbols, and debug records:
//
//	"LNK" [version(1)] [Section...]
//
// Sections are a tagged union: one even tag byte in [0,84] followed by a
// payload whose size is implied entirely by the tag. The list is terminated
// by a NOP section (tag 0), which is kept as the last element of the decoded
// list. Relocation patches embed a recursive expression grammar with the
// same property: no lengths, no synchronization points, every node
// self-delimiting via its tag.
//
// A LIB file is an archive of OBJ files:
//
//	"LIB" [version(1)] [Module...]   (modules until end of file)
//
// Each module pairs a metadata block (8-byte space-padded name, packed
// creation timestamp, derived offset/size fields, export list) with the OBJ
// bytes exactly as they would appear in a standalone file.
//
// # Round trips
//
// Encoding any successfully decoded value reproduces the input bytes
// bit-for-bit. This is a hard requirement, not a convenience: the metadata
// size fields and the opaque-module view both depend on byte-exact lengths.
//
// Several record shapes were reconstructed from disassembly of the original
// toolchain's dump utility and have never been confirmed against real
// files. Their layouts are preserved exactly; their field names are best
// guesses. Unrecognized tags always fail decoding with the offset of the
// offending byte, since guessing at an unknown layout would corrupt data
// invisibly.
package psyq
