// Package history persists the list of completed transcriptions, newest
// first, as one JSON document in a single key-value slot.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

// Store is the in-memory view of the history slot. Every mutation writes the
// full resulting list to the slot before it becomes visible to readers.
type Store struct {
	mu      sync.RWMutex
	slot    Slot
	logger  *zap.Logger
	entries []model.HistoryEntry
}

// NewStore creates a store over slot. Call Load to read existing history.
func NewStore(slot Slot, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{slot: slot, logger: logger}
}

// Load reads the slot. A missing slot yields an empty list; so does a slot
// that cannot be parsed, which is logged and otherwise ignored.
func (s *Store) Load(ctx context.Context) ([]model.HistoryEntry, error) {
	data, err := s.slot.Read(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "load history")
	}

	entries := s.decode(data)

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	return cloneEntries(entries), nil
}

func (s *Store) decode(data []byte) []model.HistoryEntry {
	if len(data) == 0 {
		return []model.HistoryEntry{}
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("discarding unreadable history slot",
			zap.Error(apperrors.Wrap(err, apperrors.ErrStorageParse.Error())),
			zap.Int("bytes", len(data)),
		)
		return []model.HistoryEntry{}
	}

	unique := lo.UniqBy(entries, func(e model.HistoryEntry) string { return e.ID })
	if dropped := len(entries) - len(unique); dropped > 0 {
		s.logger.Warn("dropping history entries with duplicate ids", zap.Int("dropped", dropped))
	}
	return unique
}

// Save overwrites the slot with entries. Saving the same list twice leaves
// the slot byte-for-byte unchanged.
func (s *Store) Save(ctx context.Context, entries []model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, cloneEntries(entries))
}

// Append adds e to the front of the list.
func (s *Store) Append(ctx context.Context, e model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lo.ContainsBy(s.entries, func(x model.HistoryEntry) bool { return x.ID == e.ID }) {
		return apperrors.AlreadyExists("history entry", e.ID)
	}

	next := make([]model.HistoryEntry, 0, len(s.entries)+1)
	next = append(next, e)
	next = append(next, s.entries...)
	return s.commit(ctx, next)
}

// Update replaces the text of the entry with id. It reports false, and
// writes nothing, when no such entry exists.
func (s *Store) Update(ctx context.Context, id, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, found := lo.FindIndexOf(s.entries, func(x model.HistoryEntry) bool { return x.ID == id })
	if !found {
		return false, nil
	}

	next := cloneEntries(s.entries)
	next[idx].Text = text
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the entry with id. It reports false when nothing matched.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := lo.Filter(s.entries, func(x model.HistoryEntry, _ int) bool { return x.ID != id })
	if len(next) == len(s.entries) {
		return false, nil
	}
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the entry with id.
func (s *Store) Get(id string) (model.HistoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.entries, func(x model.HistoryEntry) bool { return x.ID == id })
}

// List returns a copy of all entries, newest first.
func (s *Store) List() []model.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// commit writes next to the slot and, on success, makes it the current list.
// Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []model.HistoryEntry) error {
	data, err := encode(next)
	if err != nil {
		return apperrors.Wrap(err, "encode history")
	}
	if err := s.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStorageWrite, err)
	}
	s.entries = next
	return nil
}

func encode(entries []model.HistoryEntry) ([]byte, error) {
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return json.Marshal(entries)
}

func cloneEntries(entries []model.HistoryEntry) []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(entries))
	copy(out, entries)
	return out
}
