package types

import "fmt"

// Unit is the granularity at which text is split into numbers.
type Unit string

const (
	// UnitUTF16 splits text into UTF-16 code units (0..0xFFFF). Characters
	// outside the BMP become two tokens, one per surrogate.
	UnitUTF16 Unit = "utf16"
	// UnitRune splits text into Unicode scalar values.
	UnitRune Unit = "rune"
	// UnitByte splits text into its UTF-8 bytes.
	UnitByte Unit = "byte"
)

// MaxValue is the largest number a single token may carry for the unit.
func (u Unit) MaxValue() uint64 {
	switch u {
	case UnitRune:
		return 0x10FFFF
	case UnitByte:
		return 0xFF
	default:
		return 0xFFFF
	}
}

// ParseUnit validates s. The empty string selects UnitUTF16.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case "":
		return UnitUTF16, nil
	case UnitUTF16, UnitRune, UnitByte:
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q (want utf16, rune or byte)", s)
}

// Normalization names a Unicode normalization form applied before encoding.
type Normalization string

const (
	NormNone Normalization = "none"
	NormNFC  Normalization = "nfc"
	NormNFD  Normalization = "nfd"
	NormNFKC Normalization = "nfkc"
	NormNFKD Normalization = "nfkd"
)

// ParseNormalization validates s. The empty string selects NormNone.
func ParseNormalization(s string) (Normalization, error) {
	switch n := Normalization(s); n {
	case "":
		return NormNone, nil
	case NormNone, NormNFC, NormNFD, NormNFKC, NormNFKD:
		return n, nil
	}
	return "", fmt.Errorf("unknown normalization %q", s)
}
