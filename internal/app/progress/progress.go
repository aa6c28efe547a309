// Package progress renders terminal progress for long-running CLI work.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
}

// Manager owns the mpb container. A disabled Manager hands out no-op spinners.
type Manager struct {
	container *mpb.Progress
	enabled   bool
}

// Spinner shows an indeterminate task with its elapsed time.
type Spinner struct {
	bar *mpb.Bar
}

func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &Manager{
		container: container,
		enabled:   true,
	}
}

// Spinner starts a spinner labelled description.
func (m *Manager) Spinner(description string) *Spinner {
	if !m.enabled || m.container == nil {
		return &Spinner{}
	}

	bar := m.container.New(0,
		mpb.SpinnerStyle(),
		mpb.BarFillerOnComplete("done"),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)
	return &Spinner{bar: bar}
}

// Complete marks the spinner finished.
func (s *Spinner) Complete() {
	if s.bar != nil {
		s.bar.SetTotal(-1, true)
	}
}

// Abort removes the spinner without marking it finished.
func (s *Spinner) Abort() {
	if s.bar != nil {
		s.bar.Abort(true)
	}
}

// Wait blocks until every spinner has been completed or aborted.
func (m *Manager) Wait() {
	if m.enabled && m.container != nil {
		m.container.Wait()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShow reports whether progress should be drawn: forced, or stderr is a
// terminal.
func ShouldShow(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr)
}
