package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/calcterm/internal/app/session"
)

// loadStateCmd reads persisted history and theme for the first render.
func loadStateCmd(svc *session.Service) tea.Cmd {
	return func() tea.Msg {
		state, err := svc.State(context.Background())
		return StateLoadedMsg{State: state, Err: err}
	}
}

// errorBannerTimeout is how long a persistence error stays on screen.
const errorBannerTimeout = 5 * time.Second

func clearErrorAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{Seq: seq}
	})
}
