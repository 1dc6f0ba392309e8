// Package codec provides the primitive byte-level encoding shared by the
// PSY-Q container formats.
//
// Everything on disk is little-endian. Variable-length strings and byte
// arrays are length-prefixed with a single byte and carry no terminator:
//
//	[len(1)][bytes...]
//
// The formats have no record lengths or synchronization points, so decoding
// is driven by a cursor over an in-memory buffer: each structure consumes
// exactly the bytes its shape dictates. Reader tracks the cursor offset and
// reports it in every error, which is the only way to debug a malformed or
// not-yet-understood legacy file.
//
// Writer is the mirror image: an append-only buffer with the same primitive
// set. Encoding a decoded structure must reproduce the input bytes exactly;
// the higher-level formats rely on byte-exact lengths for their size fields.
package codec
