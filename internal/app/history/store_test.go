package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/model"
)

func sampleEntries() []model.HistoryEntry {
	return []model.HistoryEntry{
		{ID: "b", FileName: "second.mp3", CreatedAt: time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC), Text: "two", Language: "Spanish"},
		{ID: "a", FileName: "first.mp4", CreatedAt: time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), Text: "one", Language: "English (US)"},
	}
}

type failingSlot struct {
	MemorySlot
	writeErr error
}

func (s *failingSlot) Write(ctx context.Context, data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.MemorySlot.Write(ctx, data)
}

func TestStore_LoadEmptySlot(t *testing.T) {
	store := NewStore(NewMemorySlot(nil), nil)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestStore_LoadCorruptSlotIsLoggedAndEmpty(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := NewStore(NewMemorySlot([]byte("{not json")), zap.New(core))

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, logs.FilterMessage("discarding unreadable history slot").Len())
}

func TestStore_SaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := NewFileSlot(filepath.Join(t.TempDir(), "history.json"))
	store := NewStore(slot, nil)

	require.NoError(t, store.Save(ctx, sampleEntries()))
	first, err := slot.Read(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, sampleEntries()))
	second, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	reloaded := NewStore(slot, nil)
	entries, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), entries)
}

func TestStore_SlotLayout(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot(nil)
	store := NewStore(slot, nil)

	require.NoError(t, store.Save(ctx, sampleEntries()[1:]))
	data, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","fileName":"first.mp4","date":"2024-03-05T08:30:00Z","text":"one","language":"English (US)"}]`, string(data))
}

func TestStore_AppendPrepends(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot(nil)
	store := NewStore(slot, nil)
	_, err := store.Load(ctx)
	require.NoError(t, err)

	entries := sampleEntries()
	require.NoError(t, store.Append(ctx, entries[1]))
	require.NoError(t, store.Append(ctx, entries[0]))

	assert.Equal(t, entries, store.List())

	persisted, err := NewStore(slot, nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, persisted)
}

func TestStore_AppendRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemorySlot(nil), nil)
	require.NoError(t, store.Save(ctx, sampleEntries()))

	err := store.Append(ctx, model.HistoryEntry{ID: "a", Text: "dup"})
	assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEntry))
	assert.Len(t, store.List(), 2)
}

func TestStore_UpdateChangesOnlyText(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot(nil)
	store := NewStore(slot, nil)
	require.NoError(t, store.Save(ctx, sampleEntries()))

	found, err := store.Update(ctx, "a", "edited")
	require.NoError(t, err)
	assert.True(t, found)

	want := sampleEntries()
	want[1].Text = "edited"
	assert.Equal(t, want, store.List())

	persisted, err := NewStore(slot, nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, persisted)
}

func TestStore_UpdateUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemorySlot(nil), nil)
	require.NoError(t, store.Save(ctx, sampleEntries()))

	found, err := store.Update(ctx, "missing", "x")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, sampleEntries(), store.List())
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemorySlot(nil), nil)
	require.NoError(t, store.Save(ctx, sampleEntries()))

	removed, err := store.Remove(ctx, "b")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, sampleEntries()[1:], store.List())

	removed, err = store.Remove(ctx, "b")
	require.NoError(t, err)
	assert.False(t, removed)

	_, ok := store.Get("b")
	assert.False(t, ok)
	got, ok := store.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "one", got.Text)
}

func TestStore_FailedWriteKeepsPreviousList(t *testing.T) {
	ctx := context.Background()
	slot := &failingSlot{}
	store := NewStore(slot, nil)
	require.NoError(t, store.Save(ctx, sampleEntries()))

	slot.writeErr = fmt.Errorf("disk full")
	err := store.Append(ctx, model.HistoryEntry{ID: "c"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrStorageWrite))
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, sampleEntries(), store.List())

	_, err = store.Update(ctx, "a", "x")
	require.Error(t, err)
	assert.Equal(t, "one", store.List()[1].Text)
}

func TestStore_LoadDropsDuplicateIDs(t *testing.T) {
	raw := `[{"id":"a","text":"new"},{"id":"a","text":"old"},{"id":"b","text":"b"}]`
	store := NewStore(NewMemorySlot([]byte(raw)), nil)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Text)
}
