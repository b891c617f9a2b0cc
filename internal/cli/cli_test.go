package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{Frontend: FrontendSDL, Ticks: 9},
			},
		},
		{
			name: "headless frontend",
			args: []string{"prog", "-f", "HEADLESS", "-frames", "120", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{Frontend: FrontendHeadless, Ticks: 9, Frames: 120},
			},
		},
		{
			name: "quirks",
			args: []string{"prog", "-quirk-shift", "-quirk-clip", "-ticks", "20", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{Frontend: FrontendSDL, Ticks: 20},
				QuirkFlags: options.QuirkFlags{QuirkShift: true, QuirkClip: true},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags:      options.Flags{Frontend: FrontendSDL, Ticks: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Input, got.Input)
			assert.Equal(t, tt.want.Frontend, got.Frontend)
			assert.Equal(t, tt.want.Ticks, got.Ticks)
			assert.Equal(t, tt.want.Frames, got.Frames)
			assert.Equal(t, tt.want.QuirkFlags, got.QuirkFlags)
			assert.Equal(t, "triangle", got.Wave)
			assert.Equal(t, screen.DefaultPersistence, got.Phosphor)
			assert.Equal(t, screen.DefaultScale, got.Scale)
		})
	}
}

func TestParseFlags_MissingFile(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-debug"}

	_, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs([]string{"test.ch8"}))

	err := validateArgs([]string{"test.ch8", "-debug"})
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.ErrorContains(t, err, "-debug")
}

func TestNormalizeOptions(t *testing.T) {
	valid := func() options.Program {
		return options.Program{
			Flags:      options.Flags{Frontend: "sdl", Ticks: 9},
			AudioFlags: options.AudioFlags{Wave: "square", Frequency: 440, Volume: 0.3},
		}
	}

	tests := []struct {
		name        string
		modify      func(opts *options.Program)
		expectError string
	}{
		{name: "valid", modify: func(*options.Program) {}},
		{name: "frontend case", modify: func(opts *options.Program) { opts.Frontend = "Terminal" }},
		{
			name:        "unknown frontend",
			modify:      func(opts *options.Program) { opts.Frontend = "opengl" },
			expectError: "unsupported frontend",
		},
		{
			name:        "zero ticks",
			modify:      func(opts *options.Program) { opts.Ticks = 0 },
			expectError: "ticks per frame",
		},
		{
			name:        "too many ticks",
			modify:      func(opts *options.Program) { opts.Ticks = maxTicksPerFrame + 1 },
			expectError: "ticks per frame",
		},
		{
			name:        "negative frames",
			modify:      func(opts *options.Program) { opts.Frames = -1 },
			expectError: "frames",
		},
		{
			name:        "volume out of range",
			modify:      func(opts *options.Program) { opts.Volume = 1.5 },
			expectError: "volume",
		},
		{
			name:        "unknown wave",
			modify:      func(opts *options.Program) { opts.Wave = "sine" },
			expectError: "wave form",
		},
		{
			name:        "short keymap",
			modify:      func(opts *options.Program) { opts.Keymap = "1234" },
			expectError: "mapping",
		},
		{
			name:        "trace without debug",
			modify:      func(opts *options.Program) { opts.Trace = true },
			expectError: "-trace",
		},
		{
			name:        "paced sdl",
			modify:      func(opts *options.Program) { opts.Paced = true },
			expectError: "-paced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.modify(&opts)

			err := normalizeOptions(&opts)
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOptionCombinations(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name:        "no conflict",
			opts:        options.Program{Flags: options.Flags{Frontend: FrontendSDL}},
			expectError: false,
		},
		{
			name:        "trace with debug",
			opts:        options.Program{Flags: options.Flags{Trace: true, Debug: true}},
			expectError: false,
		},
		{
			name:        "debug and quiet",
			opts:        options.Program{Flags: options.Flags{Debug: true, Quiet: true}},
			expectError: true,
		},
		{
			name:        "paced headless",
			opts:        options.Program{Flags: options.Flags{Frontend: FrontendHeadless, Paced: true}},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptionCombinations(tt.opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
