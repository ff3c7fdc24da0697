package exec

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ForwardSignals starts a goroutine that relays SIGINT, SIGTERM, and SIGHUP
// to the child process, so an interrupted test run tears down the child
// rather than orphaning it. The returned cleanup function stops forwarding
// and must be called when the child exits.
func ForwardSignals(ctx context.Context, process *os.Process) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})

	go func() {
		for {
			select {
			case sig := <-sigChan:
				_ = process.Signal(sig)
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
