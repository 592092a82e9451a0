package domain

import (
	interfaces "binconv/internal/domain/interfaces"
	types "binconv/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Mode          = types.Mode
	Unit          = types.Unit
	Normalization = types.Normalization
	ShellState    = types.ShellState

	ConvertRequest  = types.ConvertRequest
	ConvertResponse = types.ConvertResponse
	APIError        = types.APIError
	InputRequest    = types.InputRequest
	ModeRequest     = types.ModeRequest
	SessionResponse = types.SessionResponse
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ConversionService = interfaces.ConversionService
	Clipboard         = interfaces.Clipboard
)

const (
	TextToBinary = types.TextToBinary
	BinaryToText = types.BinaryToText

	UnitUTF16 = types.UnitUTF16
	UnitRune  = types.UnitRune
	UnitByte  = types.UnitByte

	NormNone = types.NormNone
	NormNFC  = types.NormNFC
	NormNFD  = types.NormNFD
	NormNFKC = types.NormNFKC
	NormNFKD = types.NormNFKD
)

var (
	ParseMode          = types.ParseMode
	ParseUnit          = types.ParseUnit
	ParseNormalization = types.ParseNormalization
)
