package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/calcterm/internal/app/session"
	"github.com/alexisbeaulieu97/calcterm/internal/store"
	"github.com/alexisbeaulieu97/calcterm/internal/theme"
)

type readOnlyBackend struct {
	*store.MemoryBackend
}

func (readOnlyBackend) Set(context.Context, string, string) error {
	return errors.New("read-only")
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_ComputeWithKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = typeString(t, m, "5+3")
	assert.Equal(t, "5 +", m.State().Display.Previous)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "8", m.State().Display.Current)
	assert.Equal(t, []string{"5 + 3 = 8"}, m.State().History)
}

func TestUpdate_BackspaceAndClear(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeString(t, m, "123")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.State().Display.Current)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.State().Display.Current)
}

func TestUpdate_DivideByZero(t *testing.T) {
	m := newTestModel(t, nil)

	m = typeString(t, m, "9/0=")

	assert.Equal(t, "Error", m.State().Display.Current)
	assert.Empty(t, m.State().History)
}

func TestUpdate_ToggleThemeRestyles(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("t"))

	assert.Equal(t, theme.Dark, m.State().Theme)
	assert.Equal(t, theme.Dark, m.styles.Name)
}

func TestUpdate_HistoryFocusAndRecall(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeString(t, m, "6*7=c1+1=")
	require.Equal(t, []string{"1 + 1 = 2", "6 × 7 = 42"}, m.State().History)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusHistory, m.Focus())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "42", m.State().Display.Current)
	assert.Equal(t, FocusKeypad, m.Focus())
}

func TestUpdate_TabWithEmptyHistoryStaysOnKeypad(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, FocusKeypad, m.Focus())
}

func TestUpdate_ClearHistoryReturnsFocus(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeString(t, m, "1+1=")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusHistory, m.Focus())

	m = send(t, m, runes("x"))

	assert.Empty(t, m.State().History)
	assert.Equal(t, FocusKeypad, m.Focus())
}

func TestUpdate_PersistenceErrorShowsBanner(t *testing.T) {
	m := newTestModel(t, readOnlyBackend{store.NewMemoryBackend()})

	m = typeString(t, m, "2+2=")

	assert.Equal(t, "4", m.State().Display.Current)
	assert.Contains(t, m.ErrorMessage(), "read-only")

	// esc dismisses the banner without clearing the calculator
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.ErrorMessage())
	assert.Equal(t, "4", m.State().Display.Current)
}

func TestUpdate_StateLoadedError(t *testing.T) {
	m := newTestModel(t, nil)

	updated, cmd := m.Update(StateLoadedMsg{State: session.State{Theme: theme.Dark}, Err: errors.New("corrupt history")})
	m = updated.(Model)
	assert.Contains(t, m.ErrorMessage(), "corrupt history")
	assert.Equal(t, theme.Dark, m.State().Theme)
	require.NotNil(t, cmd, "banner dismissal should be scheduled")

	m = send(t, m, ClearErrorMsg{Seq: m.errorSeq})
	assert.Empty(t, m.ErrorMessage())
}

func TestUpdate_StaleClearErrorKeepsNewerBanner(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, StateLoadedMsg{Err: errors.New("first failure")})
	staleSeq := m.errorSeq
	m = send(t, m, StateLoadedMsg{Err: errors.New("second failure")})

	m = send(t, m, ClearErrorMsg{Seq: staleSeq})
	assert.Contains(t, m.ErrorMessage(), "second failure")

	m = send(t, m, ClearErrorMsg{Seq: m.errorSeq})
	assert.Empty(t, m.ErrorMessage())
}

func TestUpdate_QuitAndHelp(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
}

func TestUpdate_UnknownKeyIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeString(t, m, "7")

	m = send(t, m, runes("z"))

	assert.Equal(t, "7", m.State().Display.Current)
}
