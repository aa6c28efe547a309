package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"verbaflow/internal/app/api"
	apperrors "verbaflow/internal/app/errors"
	"verbaflow/internal/app/history"
	"verbaflow/internal/app/intake"
	"verbaflow/internal/app/metrics"
	"verbaflow/internal/app/model"
)

// Controller owns the session State and carries out the effects Reduce asks
// for. All methods are safe for concurrent use; the transcription call runs
// without holding the lock.
type Controller struct {
	mu    sync.Mutex
	state State

	intake      *intake.Intake
	transcriber api.Transcriber
	store       *history.Store
	metrics     *metrics.Metrics
	logger      *zap.Logger

	newID func() string
	now   func() time.Time

	runs sync.WaitGroup
}

// Option customizes a Controller.
type Option func(*Controller)

// WithMetrics records run outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithLanguage preselects the language of the first run.
func WithLanguage(lang model.Language) Option {
	return func(c *Controller) { c.state.Language = lang }
}

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDGenerator replaces the uuid generator for entry ids.
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) { c.newID = gen }
}

// NewController creates an idle session.
func NewController(in *intake.Intake, tr api.Transcriber, store *history.Store, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		state:       NewState(model.DefaultLanguage),
		intake:      in,
		transcriber: tr,
		store:       store,
		logger:      logger,
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.metrics.SetHistorySize(len(store.List()))
	return c
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// History returns the stored entries, newest first.
func (c *Controller) History() []model.HistoryEntry {
	return c.store.List()
}

// Entry returns one stored entry.
func (c *Controller) Entry(id string) (model.HistoryEntry, error) {
	e, ok := c.store.Get(id)
	if !ok {
		return model.HistoryEntry{}, apperrors.NotFound("history entry", id)
	}
	return e, nil
}

// Intake exposes the validator and preview registry of the session.
func (c *Controller) Intake() *intake.Intake {
	return c.intake
}

// SelectMedia validates file and makes it the pending selection.
// Validation errors leave the state untouched.
func (c *Controller) SelectMedia(file intake.FileInput) (State, error) {
	sel, err := c.intake.Validate(file)
	if err != nil {
		c.logger.Info("media rejected", zap.String("file", file.Name), zap.Error(err))
		return c.Snapshot(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.dispatchLocked(context.Background(), MediaSelected{Media: sel})
	if err != nil {
		c.intake.Previews().Release(sel.Preview)
		return st, err
	}
	c.logger.Info("media selected",
		zap.String("file", sel.FileName),
		zap.String("mime", sel.MimeType),
		zap.Int64("size", sel.Size),
		zap.String("preview", string(sel.Preview)))
	return st, nil
}

// SetLanguage selects the language of the next run.
func (c *Controller) SetLanguage(lang model.Language) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(context.Background(), LanguageChanged{Language: lang})
}

// Submit starts a run in the background and returns the processing state.
// Without pending media, or while a run is active, it returns the state
// unchanged. The run outlives ctx cancellation; abandon it with Reset.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	st, start, ok := c.start()
	if !ok {
		return st, nil
	}
	runCtx := context.WithoutCancel(ctx)
	c.runs.Add(1)
	go func() {
		defer c.runs.Done()
		_, _ = c.run(runCtx, start)
	}()
	return st, nil
}

// SubmitAndWait runs the transcription synchronously and returns the state
// the run finished in. A failed transcription is reported in State.Error,
// not as an error; the error return is for history write failures.
func (c *Controller) SubmitAndWait(ctx context.Context) (State, error) {
	st, start, ok := c.start()
	if !ok {
		return st, nil
	}
	return c.run(ctx, start)
}

// Wait blocks until background runs started by Submit have finished.
func (c *Controller) Wait() {
	c.runs.Wait()
}

func (c *Controller) start() (State, StartTranscription, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, effects, err := Reduce(c.state, Submitted{})
	if err != nil || len(effects) == 0 {
		return c.state, StartTranscription{}, false
	}
	c.state = next
	start := effects[0].(StartTranscription)

	c.metrics.RunStarted()
	c.logger.Info("transcription started",
		zap.Uint64("seq", start.Seq),
		zap.String("file", start.Media.FileName),
		zap.String("language", string(start.Language)))
	return next, start, true
}

func (c *Controller) run(ctx context.Context, start StartTranscription) (State, error) {
	began := time.Now()
	text, err := c.transcriber.Transcribe(ctx, api.Request{
		FileName: start.Media.FileName,
		MimeType: start.Media.MimeType,
		Data:     start.Media.Data,
		Language: start.Language,
	})
	elapsed := time.Since(began)

	c.mu.Lock()
	defer c.mu.Unlock()

	var ev Event
	if err != nil {
		ev = Failed{Seq: start.Seq, Message: err.Error()}
	} else {
		ev = Succeeded{Seq: start.Seq, Text: text, ID: c.newID(), At: c.now().UTC()}
	}

	st, derr := c.dispatchLocked(ctx, ev)
	switch {
	case errors.Is(derr, apperrors.ErrStaleResult):
		c.metrics.RunFinished(metrics.OutcomeDiscarded, elapsed)
		c.logger.Info("discarding result of abandoned run",
			zap.Uint64("seq", start.Seq), zap.Uint64("current", c.state.Seq))
		return st, nil
	case err != nil:
		c.metrics.RunFinished(metrics.OutcomeFailed, elapsed)
		c.logger.Warn("transcription failed",
			zap.Uint64("seq", start.Seq), zap.Duration("elapsed", elapsed), zap.Error(err))
		return st, derr
	default:
		c.metrics.RunFinished(metrics.OutcomeCompleted, elapsed)
		c.logger.Info("transcription completed",
			zap.Uint64("seq", start.Seq), zap.Duration("elapsed", elapsed),
			zap.String("entry", st.ActiveID), zap.Int("chars", len(text)))
		return st, derr
	}
}

// Reset abandons any run and clears the selection and result.
func (c *Controller) Reset() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, _ := c.dispatchLocked(context.Background(), Reset{})
	c.logger.Debug("session reset")
	return st
}

// SelectHistory opens a stored entry as the current transcript.
func (c *Controller) SelectHistory(id string) (State, error) {
	entry, err := c.Entry(id)
	if err != nil {
		return c.Snapshot(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(context.Background(), HistorySelected{Entry: entry})
}

// SaveEdit replaces the transcript of the bound entry. The session text only
// changes once the history write succeeded.
func (c *Controller) SaveEdit(ctx context.Context, text string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(ctx, TextEdited{Text: text})
}

// DeleteHistory removes an entry. Deleting the bound entry resets the session.
func (c *Controller) DeleteHistory(ctx context.Context, id string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed, err := c.store.Remove(ctx, id)
	if err != nil {
		return c.state, err
	}
	if !removed {
		return c.state, apperrors.NotFound("history entry", id)
	}
	c.metrics.SetHistorySize(len(c.store.List()))
	c.logger.Info("history entry deleted", zap.String("id", id))
	return c.dispatchLocked(ctx, EntryRemoved{ID: id})
}

// dispatchLocked reduces ev and performs its effects. StartTranscription is
// never produced here; start handles it.
func (c *Controller) dispatchLocked(ctx context.Context, ev Event) (State, error) {
	next, effects, err := Reduce(c.state, ev)
	if err != nil {
		return c.state, err
	}

	var warning error
	for _, eff := range effects {
		switch e := eff.(type) {
		case ReleasePreview:
			if !c.intake.Previews().Release(e.Handle) {
				c.logger.Warn("preview already released", zap.String("preview", string(e.Handle)))
			}
		case AppendEntry:
			if err := c.store.Append(ctx, e.Entry); err != nil {
				// The transcript stays on screen; only persistence failed.
				c.logger.Error("failed to store history entry", zap.String("id", e.Entry.ID), zap.Error(err))
				warning = fmt.Errorf("transcription completed but was not saved to history: %w", err)
				next.Warning = warning.Error()
			}
			c.metrics.SetHistorySize(len(c.store.List()))
		case UpdateEntry:
			updated, err := c.store.Update(ctx, e.ID, e.Text)
			if err != nil {
				c.logger.Error("failed to update history entry", zap.String("id", e.ID), zap.Error(err))
				return c.state, err
			}
			if !updated {
				c.logger.Warn("edited entry is not in history", zap.String("id", e.ID))
			}
		default:
			return c.state, fmt.Errorf("unexpected effect %T", eff)
		}
	}

	c.state = next
	return next, warning
}
