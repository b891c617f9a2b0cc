// Package terminal implements a frontend that renders the display in a text
// terminal and reads the keypad input from it.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pkg/term"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultDevice is the terminal device that is opened for input and output.
	DefaultDevice = "/dev/tty"

	// DefaultKeyHold is the number of frames a key stays pressed after the
	// terminal reported it.
	DefaultKeyHold = 15

	readTimeout = 50 * time.Millisecond

	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// Options of the terminal frontend.
type Options struct {
	Device  string
	Mapping keypad.Mapping
	KeyHold int             // frames a key stays pressed without a repeat
	Audio   *frontend.Audio // optional beeper output, terminals can not play it
}

// Terminal renders the machine display in a terminal in raw mode.
type Terminal struct {
	logger  *log.Logger
	options Options
}

// New returns a new terminal frontend.
func New(logger *log.Logger, options Options) *Terminal {
	if options.Device == "" {
		options.Device = DefaultDevice
	}
	if options.KeyHold <= 0 {
		options.KeyHold = DefaultKeyHold
	}
	return &Terminal{
		logger:  logger,
		options: options,
	}
}

// Run renders the machine until it halts, the user presses Escape or Ctrl-C
// or the context is canceled.
func (t *Terminal) Run(ctx context.Context, m *machine.Machine) (rerr error) {
	tty, err := term.Open(t.options.Device, term.RawMode)
	if err != nil {
		return fmt.Errorf("opening terminal '%s': %w", t.options.Device, err)
	}
	if err := tty.SetReadTimeout(readTimeout); err != nil {
		_ = tty.Close()
		return fmt.Errorf("setting terminal read timeout: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	input := make(chan byte, 64)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t.readInput(ctx, tty, input)
	}()

	defer func() {
		cancel()
		wg.Wait()

		_, _ = io.WriteString(tty, escReset+escShowCursor+"\r\n")
		if err := tty.Restore(); err != nil && rerr == nil {
			rerr = fmt.Errorf("restoring terminal: %w", err)
		}
		if err := tty.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing terminal: %w", err)
		}
	}()

	if _, err := io.WriteString(tty, escClearScreen+escHideCursor); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	return t.loop(ctx, m, tty, input)
}

func (t *Terminal) loop(ctx context.Context, m *machine.Machine, w io.Writer, input <-chan byte) error {
	kp := keypad.New(t.options.Mapping)
	hold := newKeyHold(kp, t.options.KeyHold)

	ticker := frontend.NewTicker(true)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		if err := ticker.Wait(ctx); err != nil {
			return err
		}

		if quit := t.processInput(input, hold, frame); quit {
			t.logger.Info("Quit requested")
			return nil
		}
		hold.expire(frame)
		m.SetKeys(kp.Read())

		halted, err := frontend.Step(m)
		t.options.Audio.Frame(m)

		update := m.Display()
		if frame == 0 || update.Updated {
			if err := renderFrame(w, update); err != nil {
				return fmt.Errorf("rendering frame: %w", err)
			}
		}

		if halted {
			return err
		}
	}
}

// processInput handles all bytes received since the last frame. It returns
// true if the user requested to quit.
func (t *Terminal) processInput(input <-chan byte, hold *keyHold, frame int) bool {
	for {
		select {
		case b := <-input:
			if b == keyCtrlC || b == keyEscape {
				return true
			}
			hold.press(rune(b), frame)
		default:
			return false
		}
	}
}

// readInput forwards all bytes read from the terminal until the context is
// canceled. Reads time out regularly to check the context.
func (t *Terminal) readInput(ctx context.Context, r io.Reader, input chan<- byte) {
	buf := make([]byte, 16)
	for ctx.Err() == nil {
		n, err := r.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			t.logger.Error("Reading terminal input failed", log.Err(err))
			return
		}

		for _, b := range buf[:n] {
			select {
			case input <- b:
			case <-ctx.Done():
				return
			}
		}
	}
}
