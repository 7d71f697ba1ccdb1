package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

// setupSignalHandler returns a context that is cancelled on SIGINT or
// SIGTERM. onSignal runs after the cancel so a blocked terminal read can be
// released.
func setupSignalHandler(logger *log.Logger, onSignal func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
			if onSignal != nil {
				onSignal()
			}
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
