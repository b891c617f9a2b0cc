package machine

import (
	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/log"
)

// tracer logs every instruction before it gets executed.
type tracer struct {
	logger *log.Logger
}

func (t *tracer) Trace(address, opcode uint16) {
	t.logger.Debug("Trace",
		log.Hex("address", address),
		log.Hex("opcode", opcode),
		log.String("instruction", chip8.Format(opcode)))
}
