// Package converter turns text into space-delimited base-2 tokens and back.
//
// # Encoding
//
// Each unit of the input (a UTF-16 code unit by default) is written in base 2
// and left-padded with zeros to the configured width (8 by default). Values
// that need more digits than the width keep every digit. Tokens are joined
// by a single space. Encoding never fails.
//
//	converter.Encode("Hi") // "01001000 01101001"
//
// # Decoding
//
// The input is split on runs of whitespace as IsSpace defines it. Every token
// must consist of one or more '0' or '1' characters and is parsed as an
// unsigned base-2 integer of any length. The first bad token aborts the decode with a
// *domain.ConversionError and no partial output.
//
//	converter.Decode("01001000  01101001") // "Hi", nil
//
// # Units
//
//   - utf16: UTF-16 code units. Non-BMP characters produce two tokens, and a
//     surrogate pair in the input is rejoined on decode.
//   - rune: Unicode scalar values, one token per character.
//   - byte: UTF-8 bytes, never more than 8 digits.
//
// A Converter holds only its options and is safe for concurrent use.
package converter
