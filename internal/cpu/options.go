package cpu

import (
	"math/rand"
	"time"
)

// Quirks select between differing instruction semantics of interpreter
// variants. The zero value gives the behavior of the original interpreter.
type Quirks struct {
	// Shift makes 8xy6 and 8xyE shift Vx in place, ignoring Vy.
	// Without it Vx is set to the shifted value of Vy.
	Shift bool

	// LoadStore makes Fx55 and Fx65 leave I unchanged.
	// Without it I is advanced by x+1.
	LoadStore bool

	// Clip makes sprites clip at the right and bottom display edge instead of
	// wrapping around. The start coordinates of a sprite always wrap.
	Clip bool
}

// Option configures an interpreter on creation.
type Option func(*CPU)

// WithQuirks sets the quirk configuration.
func WithQuirks(quirks Quirks) Option {
	return func(c *CPU) {
		c.quirks = quirks
	}
}

// WithRandom sets the source of random numbers.
func WithRandom(random Random) Option {
	return func(c *CPU) {
		c.random = random
	}
}

// WithStackSize sets the maximum call depth.
func WithStackSize(size int) Option {
	return func(c *CPU) {
		if size > 0 {
			c.stackSize = size
		}
	}
}

// WithTracer sets a tracer that gets called for every fetched instruction.
func WithTracer(tracer Tracer) Option {
	return func(c *CPU) {
		c.tracer = tracer
	}
}

type mathRandom struct {
	rnd *rand.Rand
}

func newMathRandom() *mathRandom {
	return &mathRandom{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *mathRandom) RandomByte() uint8 {
	return uint8(r.rnd.Intn(256))
}
