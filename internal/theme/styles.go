package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the full set of styles for one theme.
type Styles struct {
	Name Name

	App            lipgloss.Style
	Title          lipgloss.Style
	Display        lipgloss.Style
	Previous       lipgloss.Style
	Current        lipgloss.Style
	CurrentCompact lipgloss.Style
	History        lipgloss.Style
	HistoryFocused lipgloss.Style
	HistoryTitle   lipgloss.Style
	HistoryItem    lipgloss.Style
	HistorySel     lipgloss.Style
	Empty          lipgloss.Style
	Key            lipgloss.Style
	KeyOperator    lipgloss.Style
	KeyAction      lipgloss.Style
	KeyActive      lipgloss.Style
	ErrorBanner    lipgloss.Style
	Footer         lipgloss.Style
}

// NewStyles builds the styles for the named theme.
func NewStyles(n Name) Styles {
	p := PaletteFor(n)

	return Styles{
		Name: n,

		App: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		Display: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Background(p.Surface).
			Padding(0, 2).
			Align(lipgloss.Right),

		Previous: lipgloss.NewStyle().
			Foreground(p.Muted),

		Current: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		CurrentCompact: lipgloss.NewStyle().
			Foreground(p.Text),

		History: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginTop(1),

		HistoryFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1).
			MarginTop(1),

		HistoryTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		HistoryItem: lipgloss.NewStyle().
			Foreground(p.Text).
			PaddingLeft(2),

		HistorySel: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary).
			PaddingLeft(1),

		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Key: keyStyle(p).
			Foreground(p.Text),

		KeyOperator: keyStyle(p).
			Foreground(p.Primary).
			Bold(true),

		KeyAction: keyStyle(p).
			Foreground(p.Accent),

		KeyActive: keyStyle(p).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Primary).
			Foreground(p.Primary).
			Bold(true),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.ErrorBg).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
	}
}

// keypadWidth is four keys plus the gap before the history panel.
const keypadWidth = 4*7 + 2

func keyStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Width(5).
		Align(lipgloss.Center)
}

// ApplyMaxWidth constrains the width-sensitive styles to the terminal width.
func (s Styles) ApplyMaxWidth(width int) Styles {
	if width <= 4 {
		return s
	}
	s.Display = s.Display.Width(width - 6)
	// history sits beside the keypad
	historyWidth := max(width-6-keypadWidth, 20)
	s.History = s.History.Width(historyWidth)
	s.HistoryFocused = s.HistoryFocused.Width(historyWidth)
	s.ErrorBanner = s.ErrorBanner.MaxWidth(width - 4)
	return s
}
