package store

import (
	"context"
	"encoding/json"
	"sync"

	calcerrors "github.com/alexisbeaulieu97/calcterm/pkg/errors"
)

const (
	// HistoryKey holds the JSON-encoded list of entries, newest first.
	HistoryKey = "calculatorHistory"
	// HistoryLimit caps the number of persisted entries.
	HistoryLimit = 10
)

// History is the bounded, newest-first list of calculation entries.
type History struct {
	backend Backend
	mu      sync.Mutex
}

// NewHistory returns a History persisted through backend.
func NewHistory(backend Backend) *History {
	return &History{backend: backend}
}

// Load returns at most HistoryLimit entries, newest first. An absent key
// yields an empty slice.
func (h *History) Load(ctx context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.load(ctx)
}

// Append prepends entry, truncates to HistoryLimit and persists the result.
func (h *History) Append(ctx context.Context, entry string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load(ctx)
	if err != nil {
		return err
	}

	entries = append([]string{entry}, entries...)
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return calcerrors.NewStorageError("encode", HistoryKey, err)
	}
	return h.backend.Set(ctx, HistoryKey, string(data))
}

// Clear empties the history.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.backend.Delete(ctx, HistoryKey)
}

func (h *History) load(ctx context.Context) ([]string, error) {
	raw, ok, err := h.backend.Get(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []string{}, nil
	}

	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, calcerrors.NewStorageError("decode", HistoryKey, err)
	}
	if entries == nil {
		entries = []string{}
	}
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}
	return entries, nil
}
