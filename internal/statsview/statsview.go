// Package statsview starts a web server that shows runtime statistics of the
// emulator, like memory usage and goroutine counts, as live graphs.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// DefaultAddress is the address the server listens on.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// Launch starts the stats server in the background. The server runs until the
// program exits.
func Launch(logger *log.Logger, address string) {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Error("Stats server failed", log.Err(err))
		}
	}()

	logger.Info("Stats server available", log.String("url", "http://"+address+path))
}
