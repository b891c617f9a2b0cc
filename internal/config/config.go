// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateQuirks returns the interpreter quirk configuration selected by the
// program options.
func CreateQuirks(opts options.Program) cpu.Quirks {
	return cpu.Quirks{
		Shift:     opts.QuirkShift,
		LoadStore: opts.QuirkLoadStore,
		Clip:      opts.QuirkClip,
	}
}
