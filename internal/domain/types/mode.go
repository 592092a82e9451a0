package types

import "fmt"

// Mode selects the conversion direction.
type Mode int

const (
	TextToBinary Mode = iota
	BinaryToText
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case TextToBinary:
		return "textToBinary"
	case BinaryToText:
		return "binaryToText"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Other returns the opposite direction.
func (m Mode) Other() Mode {
	if m == TextToBinary {
		return BinaryToText
	}
	return TextToBinary
}

// Valid reports whether m is one of the two known modes.
func (m Mode) Valid() bool { return m == TextToBinary || m == BinaryToText }

// ParseMode accepts the wire names plus the short aliases used by the CLI
// ("text", "encode", "binary", "decode").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "textToBinary", "text", "encode":
		return TextToBinary, nil
	case "binaryToText", "binary", "decode":
		return BinaryToText, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// MarshalText encodes the mode by its wire name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText mirrors MarshalText.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
