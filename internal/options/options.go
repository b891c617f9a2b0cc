// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Wav    string `flag:"wav" usage:"record the beeper output to a WAV file"`
	Memviz string `flag:"memviz" usage:"write a graphviz graph of the final machine state to a file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"f" usage:"frontend: sdl, terminal, headless" default:"sdl"`
	Frames   int    `flag:"frames" usage:"number of frames to run, 0 runs until the program halts"`
	Ticks    int    `flag:"ticks" usage:"instructions executed per frame" default:"9"`
	Keymap   string `flag:"keymap" usage:"16 keyboard characters mapped to the keys 0-F"`
	Disasm   bool   `flag:"disasm" usage:"print a disassembly of the ROM and exit"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Stats    bool   `flag:"stats" usage:"launch the statsview web server"`
	Paced    bool   `flag:"paced" usage:"pace the headless frontend at 60 frames per second"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// QuirkFlags contains options that select interpreter variant semantics.
type QuirkFlags struct {
	QuirkShift     bool `flag:"quirk-shift" usage:"shift instructions shift Vx in place and ignore Vy"`
	QuirkLoadStore bool `flag:"quirk-loadstore" usage:"register dump and load leave I unchanged"`
	QuirkClip      bool `flag:"quirk-clip" usage:"clip sprites at the display edge instead of wrapping"`
}

// AudioFlags contains display and sound options.
type AudioFlags struct {
	Mute      bool    `flag:"mute" usage:"disable sound output"`
	Wave      string  `flag:"wave" usage:"beeper wave form: triangle, square" default:"triangle"`
	Frequency int     `flag:"freq" usage:"beeper frequency in Hz" default:"440"`
	Volume    float64 `flag:"volume" usage:"beeper volume between 0 and 1" default:"0.3"`
	Phosphor  int     `flag:"phosphor" usage:"phosphor persistence in frames, 0 disables fading" default:"2"`
	Scale     int     `flag:"scale" usage:"window pixels per display pixel" default:"10"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	QuirkFlags
	AudioFlags
}
