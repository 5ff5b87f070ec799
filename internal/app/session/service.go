// Package session wires one calculator to its display formatting, history
// store and theme preference. Hosts (the TUI, the eval command) feed it one
// input at a time and render the State it returns.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
	"github.com/alexisbeaulieu97/calcterm/internal/logger"
	"github.com/alexisbeaulieu97/calcterm/internal/store"
	"github.com/alexisbeaulieu97/calcterm/internal/theme"
)

// State is everything a host needs to render after an input.
type State struct {
	Display calculator.Display `json:"display"`
	History []string           `json:"history"`
	Theme   theme.Name         `json:"theme"`
}

// Service owns the calculator instance for one running UI.
type Service struct {
	calc      *calculator.Calculator
	formatter *calculator.Formatter
	history   *store.History
	prefs     *store.Preferences
	log       *logger.Logger

	// appendErr holds the first persistence failure raised by the history
	// sink during the current Handle call.
	appendErr error
	ctx       context.Context
}

// New constructs a Service. log may be nil.
func New(formatter *calculator.Formatter, history *store.History, prefs *store.Preferences, log *logger.Logger) *Service {
	s := &Service{
		formatter: formatter,
		history:   history,
		prefs:     prefs,
		log:       log,
		ctx:       context.Background(),
	}
	s.calc = calculator.New(calculator.HistorySinkFunc(s.recordHistory))
	return s
}

// Calculator exposes the underlying state machine.
func (s *Service) Calculator() *calculator.Calculator {
	return s.calc
}

// State renders the current state without applying any input. History and
// theme are read independently, so a corrupt history still yields the saved
// theme; both failures are joined into the returned error.
func (s *Service) State(ctx context.Context) (State, error) {
	state := State{Display: s.formatter.Display(s.calc), History: []string{}, Theme: theme.Light}

	entries, historyErr := s.history.Load(ctx)
	if historyErr != nil {
		s.log.Error(historyErr, "history load failed", "key", store.HistoryKey)
	} else {
		state.History = entries
	}

	name, themeErr := s.prefs.Theme(ctx)
	if themeErr != nil {
		s.log.Error(themeErr, "theme load failed", "key", store.ThemeKey)
	} else {
		state.Theme = name
	}

	return state, errors.Join(historyErr, themeErr)
}

// Handle applies one input and returns the resulting state. Persistence
// failures are returned alongside a state that still reflects the input.
func (s *Service) Handle(ctx context.Context, in calculator.Input) (State, error) {
	s.ctx = ctx
	s.appendErr = nil
	defer func() { s.ctx = context.Background() }()

	var opErr error
	switch in.Kind {
	case calculator.InputClearHistory:
		if err := s.history.Clear(ctx); err != nil {
			opErr = fmt.Errorf("clear history: %w", err)
		} else {
			s.log.Info("history cleared")
		}
	case calculator.InputToggleTheme:
		next, err := s.prefs.ToggleTheme(ctx)
		if err != nil {
			opErr = fmt.Errorf("toggle theme: %w", err)
		} else {
			s.log.Info("theme toggled", "theme", next.String())
		}
	case calculator.InputRecall:
		if !s.calc.Recall(in.Entry) {
			s.log.Debug("history entry has no result", "entry", in.Entry)
		}
	default:
		s.calc.Apply(in)
	}

	s.log.Debug("input handled",
		"event", in.Kind.String(),
		"current", s.calc.Current().String(),
		"previous", s.calc.Previous(),
		"operator", s.calc.Operator().String(),
	)

	if opErr == nil && s.appendErr != nil {
		opErr = fmt.Errorf("record history: %w", s.appendErr)
	}

	state, stateErr := s.State(ctx)
	if opErr != nil {
		s.log.Error(opErr, "input persistence failed", "event", in.Kind.String())
		return state, opErr
	}
	return state, stateErr
}

// HandleKey parses a key name and handles it. Unknown keys return the
// current state and ok=false.
func (s *Service) HandleKey(ctx context.Context, key string) (State, bool, error) {
	in, ok := calculator.ParseKey(key)
	if !ok {
		state, err := s.State(ctx)
		return state, false, err
	}
	state, err := s.Handle(ctx, in)
	return state, true, err
}

func (s *Service) recordHistory(entry string) {
	if err := s.history.Append(s.ctx, entry); err != nil {
		if s.appendErr == nil {
			s.appendErr = err
		}
		return
	}
	s.log.Debug("computation recorded", "entry", entry)
}
