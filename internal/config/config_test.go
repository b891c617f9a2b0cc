package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateQuirks(t *testing.T) {
	tests := []struct {
		name   string
		flags  options.QuirkFlags
		quirks cpu.Quirks
	}{
		{name: "none", flags: options.QuirkFlags{}, quirks: cpu.Quirks{}},
		{
			name:   "shift",
			flags:  options.QuirkFlags{QuirkShift: true},
			quirks: cpu.Quirks{Shift: true},
		},
		{
			name:   "all",
			flags:  options.QuirkFlags{QuirkShift: true, QuirkLoadStore: true, QuirkClip: true},
			quirks: cpu.Quirks{Shift: true, LoadStore: true, Clip: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quirks := CreateQuirks(options.Program{QuirkFlags: tt.flags})
			assert.Equal(t, tt.quirks, quirks)
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
