//go:build windows

package main

import (
	"os"
)

// terminationSignals trigger a graceful shutdown. Windows only has
// os.Interrupt (Ctrl+C).
var terminationSignals = []os.Signal{os.Interrupt}
