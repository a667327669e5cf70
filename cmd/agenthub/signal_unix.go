//go:build !windows

package main

import (
	"os"
	"syscall"
)

// terminationSignals trigger a graceful shutdown. SIGTERM is what process
// managers (systemd, kubernetes) send to request one.
var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
