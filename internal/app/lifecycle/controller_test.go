package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"verbaflow/internal/app/api"
	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/history"
	"verbaflow/internal/app/intake"
	"verbaflow/internal/app/metrics"
	"verbaflow/internal/app/model"
	"verbaflow/internal/app/testutil"
)

type harness struct {
	ctrl  *Controller
	tr    *testutil.MockTranscriber
	store *history.Store
	slot  history.Slot
}

func newHarness(t *testing.T, slot history.Slot) *harness {
	t.Helper()
	if slot == nil {
		slot = history.NewMemorySlot(nil)
	}
	logger := zaptest.NewLogger(t)
	store := history.NewStore(slot, logger)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	tr := testutil.NewMockTranscriber()
	ctrl := NewController(
		intake.New(intake.DefaultMaxBytes, intake.NewPreviews()),
		tr, store, logger,
		WithMetrics(metrics.New()),
		WithClock(func() time.Time { return testutil.FixedTime }),
		WithIDGenerator(testutil.SequentialIDs("entry")),
	)
	return &harness{ctrl: ctrl, tr: tr, store: store, slot: slot}
}

func TestController_SubmitWithoutMediaIsNoop(t *testing.T) {
	h := newHarness(t, nil)

	st, err := h.ctrl.SubmitAndWait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RunIdle, st.Status)
	assert.Empty(t, h.tr.Calls())
}

func TestController_SuccessfulRunAppendsOneEntry(t *testing.T) {
	h := newHarness(t, nil)
	h.tr.On("Transcribe", mock.Anything, mock.Anything).Return("[00:00] Welcome to the show.", nil).Once()

	_, err := h.ctrl.SetLanguage(model.LanguageEnglish)
	require.NoError(t, err)
	_, err = h.ctrl.SelectMedia(testutil.VideoInput("interview.mp4"))
	require.NoError(t, err)

	st, err := h.ctrl.SubmitAndWait(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.RunCompleted, st.Status)
	assert.Equal(t, "[00:00] Welcome to the show.", st.Text)
	assert.Equal(t, "entry-1", st.ActiveID)

	entries := h.ctrl.History()
	require.Len(t, entries, 1)
	assert.Equal(t, model.HistoryEntry{
		ID:        "entry-1",
		FileName:  "interview.mp4",
		CreatedAt: testutil.FixedTime,
		Text:      "[00:00] Welcome to the show.",
		Language:  string(model.LanguageEnglish),
	}, entries[0])

	calls := h.tr.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "video/mp4", calls[0].MimeType)
	assert.Equal(t, model.LanguageEnglish, calls[0].Language)
	h.tr.AssertExpectations(t)
}

func TestController_FailedRunKeepsMessageAndStoresNothing(t *testing.T) {
	h := newHarness(t, nil)
	h.tr.On("Transcribe", mock.Anything, mock.Anything).
		Return("", api.Failure("The model is overloaded. Please try again later.")).Once()

	_, err := h.ctrl.SelectMedia(testutil.AudioInput("memo.mp3"))
	require.NoError(t, err)

	st, err := h.ctrl.SubmitAndWait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RunError, st.Status)
	assert.Equal(t, "The model is overloaded. Please try again later.", st.Error)
	assert.Empty(t, h.ctrl.History())
}

func TestController_ResetDuringRunDiscardsLateResult(t *testing.T) {
	h := newHarness(t, nil)
	h.tr.On("Transcribe", mock.Anything, mock.Anything).Return("too late", nil).Once()
	entered := h.tr.Gate()

	_, err := h.ctrl.SelectMedia(testutil.AudioInput("memo.mp3"))
	require.NoError(t, err)

	st, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RunProcessing, st.Status)

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("transcriber was not called")
	}

	afterReset := h.ctrl.Reset()
	assert.Equal(t, model.RunIdle, afterReset.Status)

	h.tr.ReleaseGate()
	h.ctrl.Wait()

	assert.Equal(t, afterReset, h.ctrl.Snapshot())
	assert.Empty(t, h.ctrl.History())
}

func TestController_SecondSubmitWhileProcessingIsIgnored(t *testing.T) {
	h := newHarness(t, nil)
	h.tr.On("Transcribe", mock.Anything, mock.Anything).Return("once", nil).Once()
	entered := h.tr.Gate()

	_, err := h.ctrl.SelectMedia(testutil.AudioInput("memo.mp3"))
	require.NoError(t, err)

	first, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)
	<-entered

	second, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Seq, second.Seq)

	_, err = h.ctrl.SelectMedia(testutil.AudioInput("other.mp3"))
	assert.ErrorIs(t, err, apperrors.ErrRunInProgress)
	assert.Len(t, h.ctrl.Intake().Previews().Live(), 1, "rejected selection releases its preview")

	h.tr.ReleaseGate()
	h.ctrl.Wait()

	assert.Equal(t, model.RunCompleted, h.ctrl.Snapshot().Status)
	assert.Len(t, h.tr.Calls(), 1)
}

func TestController_InvalidMediaLeavesStateUntouched(t *testing.T) {
	h := newHarness(t, nil)
	_, err := h.ctrl.SelectMedia(testutil.AudioInput("memo.mp3"))
	require.NoError(t, err)
	before := h.ctrl.Snapshot()

	_, err = h.ctrl.SelectMedia(intake.FileInput{Name: "notes.pdf", MimeType: "application/pdf", Size: 10})
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, before, h.ctrl.Snapshot())
}

func TestController_PreviewLifetime(t *testing.T) {
	h := newHarness(t, nil)
	previews := h.ctrl.Intake().Previews()

	first, err := h.ctrl.SelectMedia(testutil.AudioInput("a.mp3"))
	require.NoError(t, err)
	second, err := h.ctrl.SelectMedia(testutil.AudioInput("b.mp3"))
	require.NoError(t, err)

	assert.Equal(t, []model.PreviewHandle{second.Media.Preview}, previews.Live())
	_, ok := previews.Get(first.Media.Preview)
	assert.False(t, ok)

	h.ctrl.Reset()
	assert.Empty(t, previews.Live())
}

func TestController_SelectAndEditHistory(t *testing.T) {
	slot := history.NewMemorySlot(nil)
	h := newHarness(t, slot)
	require.NoError(t, h.store.Save(context.Background(), testutil.SampleEntries()))

	_, err := h.ctrl.SaveEdit(context.Background(), "nothing bound")
	assert.ErrorIs(t, err, apperrors.ErrNoActiveEntry)

	st, err := h.ctrl.SelectHistory("b2")
	require.NoError(t, err)
	assert.Equal(t, model.RunCompleted, st.Status)
	assert.Equal(t, "reuniao.m4a", st.FileName())

	st, err = h.ctrl.SaveEdit(context.Background(), "Texto revisado.")
	require.NoError(t, err)
	assert.Equal(t, "Texto revisado.", st.Text)

	want := testutil.SampleEntries()
	want[1].Text = "Texto revisado."
	assert.Equal(t, want, h.ctrl.History())

	reloaded := history.NewStore(slot, zaptest.NewLogger(t))
	persisted, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, persisted)

	_, err = h.ctrl.SelectHistory("missing")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestController_DeleteActiveEntryResets(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.store.Save(context.Background(), testutil.SampleEntries()))

	_, err := h.ctrl.SelectHistory("c3")
	require.NoError(t, err)

	st, err := h.ctrl.DeleteHistory(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, model.RunCompleted, st.Status, "deleting another entry keeps the binding")

	st, err = h.ctrl.DeleteHistory(context.Background(), "c3")
	require.NoError(t, err)
	assert.Equal(t, model.RunIdle, st.Status)
	assert.Empty(t, st.ActiveID)
	assert.Empty(t, st.Text)
	assert.Len(t, h.ctrl.History(), 1)

	_, err = h.ctrl.DeleteHistory(context.Background(), "c3")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

type brokenSlot struct {
	mu     sync.Mutex
	writes int
}

func (s *brokenSlot) Read(context.Context) ([]byte, error) { return nil, nil }

func (s *brokenSlot) Write(context.Context, []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	return errors.New("disk full")
}

func TestController_StoreFailureAfterSuccessKeepsText(t *testing.T) {
	slot := &brokenSlot{}
	h := newHarness(t, slot)
	h.tr.On("Transcribe", mock.Anything, mock.Anything).Return("precious text", nil).Once()

	_, err := h.ctrl.SelectMedia(testutil.AudioInput("memo.mp3"))
	require.NoError(t, err)

	st, err := h.ctrl.SubmitAndWait(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageWrite)

	assert.Equal(t, model.RunCompleted, st.Status)
	assert.Equal(t, "precious text", st.Text)
	assert.Contains(t, st.Warning, "not saved to history")
	assert.Equal(t, st, h.ctrl.Snapshot())
	assert.Equal(t, 1, slot.writes)
}

func TestController_ConcurrentSnapshots(t *testing.T) {
	h := newHarness(t, nil)
	h.tr.On("Transcribe", mock.Anything, mock.Anything).Return("text", nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = h.ctrl.SelectMedia(testutil.AudioInput(fmt.Sprintf("f%d.mp3", i)))
			_, _ = h.ctrl.Submit(context.Background())
			_ = h.ctrl.Snapshot()
		}(i)
	}
	wg.Wait()
	h.ctrl.Wait()

	st := h.ctrl.Snapshot()
	assert.Contains(t, []model.RunStatus{model.RunIdle, model.RunCompleted}, st.Status)
	assert.LessOrEqual(t, len(h.ctrl.Intake().Previews().Live()), 1)
}
