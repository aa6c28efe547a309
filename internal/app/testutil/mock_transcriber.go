package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"verbaflow/internal/app/api"
)

// MockTranscriber is a testify mock of api.Transcriber.
//
// Program it with On("Transcribe", mock.Anything, mock.Anything).Return(text, err).
// When a gate is set, each call blocks until ReleaseGate is called or ctx ends.
type MockTranscriber struct {
	mock.Mock

	mu      sync.Mutex
	gate    chan struct{}
	entered chan api.Request
	calls   []api.Request
}

// NewMockTranscriber creates a mock with no expectations.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Gate makes subsequent calls block. The returned channel receives each
// request once the call has started.
func (m *MockTranscriber) Gate() <-chan api.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gate = make(chan struct{})
	m.entered = make(chan api.Request, 16)
	return m.entered
}

// ReleaseGate lets blocked calls proceed.
func (m *MockTranscriber) ReleaseGate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gate != nil {
		close(m.gate)
		m.gate = nil
	}
}

// Calls returns the requests received so far.
func (m *MockTranscriber) Calls() []api.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]api.Request(nil), m.calls...)
}

// Transcribe implements api.Transcriber.
func (m *MockTranscriber) Transcribe(ctx context.Context, req api.Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	gate, entered := m.gate, m.entered
	m.mu.Unlock()

	if gate != nil {
		entered <- req
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// StaticTranscriber returns the same result for every request.
func StaticTranscriber(text string, err error) api.Transcriber {
	return api.TranscriberFunc(func(context.Context, api.Request) (string, error) {
		return text, err
	})
}
