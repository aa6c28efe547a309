package intake

import (
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"verbaflow/internal/app/model"
)

// Previews tracks live preview handles. Each handle is released at most once.
type Previews struct {
	mu   sync.RWMutex
	live map[model.PreviewHandle]*model.MediaSelection
}

// NewPreviews creates an empty registry.
func NewPreviews() *Previews {
	return &Previews{live: make(map[model.PreviewHandle]*model.MediaSelection)}
}

// Open registers sel and returns a new handle for it.
func (p *Previews) Open(sel *model.MediaSelection) model.PreviewHandle {
	h := model.PreviewHandle(uuid.NewString())

	p.mu.Lock()
	defer p.mu.Unlock()
	p.live[h] = sel
	return h
}

// Get returns the selection behind a live handle.
func (p *Previews) Get(h model.PreviewHandle) (*model.MediaSelection, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sel, ok := p.live[h]
	return sel, ok
}

// Release revokes h. It reports false when h was not live, so a second
// release of the same handle is a no-op.
func (p *Previews) Release(h model.PreviewHandle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.live[h]; !ok {
		return false
	}
	delete(p.live, h)
	return true
}

// Live returns the handles that have not been released yet.
func (p *Previews) Live() []model.PreviewHandle {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return lo.Keys(p.live)
}
