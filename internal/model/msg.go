package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// TablesLoadedMsg is sent when a source has been loaded.
type TablesLoadedMsg struct {
	Source  string
	Catalog *Catalog
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeColumnJump
)
