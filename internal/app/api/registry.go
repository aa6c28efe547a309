package api

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	apperrors "verbaflow/internal/app/errors"
)

// Settings configures a transcription backend.
type Settings struct {
	APIKey      string
	Model       string
	Temperature float32
	BaseURL     string
	Timeout     time.Duration
}

// Factory builds a Transcriber from settings.
type Factory func(settings Settings) (Transcriber, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// RegisterProvider makes a backend available under name. Backends register
// themselves from init, so importing a backend package enables it.
func RegisterProvider(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("api: RegisterProvider factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("api: RegisterProvider called twice for provider " + name)
	}
	factories[name] = factory
}

// ListRegisteredProviders returns the registered backend names, sorted.
func ListRegisteredProviders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTranscriber builds the backend registered under name.
func NewTranscriber(name string, settings Settings) (Transcriber, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, apperrors.Describe(apperrors.ErrInvalidConfig,
			"unknown transcription provider %q (available: %s)", name, strings.Join(ListRegisteredProviders(), ", "))
	}
	t, err := factory(settings)
	if err != nil {
		return nil, fmt.Errorf("create %s transcriber: %w", name, err)
	}
	return t, nil
}
