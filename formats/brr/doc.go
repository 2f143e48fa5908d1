// SPDX-License-Identifier: EPL-2.0

// Package brr decodes SNES BRR (bit rate reduction) samples.
//
// BRR packs 16 frames into 9 bytes: a header byte followed by 16 signed
// 4-bit nibbles, high nibble first. The header holds
//
//	bits 7-4  shift applied to every nibble (values above 12 act as 12)
//	bits 3-2  prediction filter 0..3
//	bit  1    loop flag
//	bit  0    end flag
//
// Filter 1 adds 15/16 of the previous output, filter 2 adds 61/32 of it and
// subtracts 15/16 of the one before, and filter 3 uses 115/64 and 13/16.
// Outputs saturate at the int16 range.
//
// Files whose size is 2 more than a multiple of 9 start with a little-endian
// loop offset in encoded bytes. Such files loop forward from that offset to
// the end of the block carrying the end flag, provided the block also sets
// the loop flag. Headerless files never loop.
//
//	s, err := brr.Loader{Rate: 16000}.Load(f)
//
// BRR stores no sample rate; Loader uses DefaultRate unless told otherwise.
package brr
