// Package common holds state shared by the verbaflow subcommands.
package common

import (
	"fmt"
	"io"
	"strings"

	"verbaflow/internal/config"
)

// DefaultConfigFile is picked up from the working directory.
const DefaultConfigFile = config.DefaultConfigFile

var (
	ConfigPath string
	Verbose    bool
)

// LoadConfig loads the configuration selected by the global flags.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}
	if Verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}
	return cfg, nil
}

// Excerpt returns the first line of text, shortened to max runes.
func Excerpt(text string, max int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	r := []rune(line)
	if len(r) <= max {
		return line
	}
	return string(r[:max-1]) + "…"
}

// Warn prints a non-fatal problem to w.
func Warn(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}
