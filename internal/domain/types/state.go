package types

// ShellState is a snapshot of a shell session.
type ShellState struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Mode   Mode   `json:"mode"`
	Copied bool   `json:"copied"`
}
