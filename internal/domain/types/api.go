package types

// ConvertRequest is the body of POST /api/convert.
type ConvertRequest struct {
	Mode  Mode   `json:"mode"`
	Input string `json:"input"`
}

// ConvertResponse is a successful conversion.
type ConvertResponse struct {
	Output string `json:"output"`
}

// APIError is returned with every non-2xx daemon response. Kind, Token, Index
// and Unit are set only for conversion failures.
type APIError struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Token string `json:"token,omitempty"`
	Index *int   `json:"index,omitempty"`
	Unit  Unit   `json:"unit,omitempty"`
}

// InputRequest is the body of PUT /api/sessions/{id}/input.
type InputRequest struct {
	Input string `json:"input"`
}

// ModeRequest is the body of POST /api/sessions and PUT /api/sessions/{id}/mode.
type ModeRequest struct {
	Mode *Mode `json:"mode,omitempty"`
}

// SessionResponse describes a daemon-held shell session.
type SessionResponse struct {
	ID string `json:"id"`
	ShellState
}
