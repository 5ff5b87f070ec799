package tui

import (
	"github.com/alexisbeaulieu97/calcterm/internal/app/session"
)

// Focus selects which panel receives navigation keys.
type Focus int

const (
	FocusKeypad Focus = iota
	FocusHistory
)

// StateLoadedMsg carries the state read from the stores at startup.
type StateLoadedMsg struct {
	State session.State
	Err   error
}

// ClearErrorMsg requests error banner dismissal. Seq identifies the error it
// was scheduled for; a newer error is left in place.
type ClearErrorMsg struct {
	Seq int
}
