//go:build windows

package main

import (
	"os"
	"os/signal"
)

// notifySignals registers the signals that stop a running session.
// Windows has no SIGTERM, so only Ctrl+C is wired up.
func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
