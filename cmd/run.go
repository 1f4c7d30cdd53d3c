// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/cli"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
)

// version is the fallback when the build does not stamp one via ldflags.
var version = "0.3.1"

func main() {
	log := logger.NewCLILogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Buffered so the worker never blocks on send after main has left the select
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case <-sigs:
		// Exit right away; the abandoned worker dies with the process
		log.Println("\nReceived termination signal. Exiting...")
		cancel()
	case err := <-done:
		// Cobra already put any error on stderr, only the happy path logs here
		if err == nil && cli.OperationPerformed {
			log.Println("Certificate inspection completed successfully.")
		}
	}

	if cli.OperationPerformedSuccessfully {
		log.Println("TLS certificate inspector stopped.")
	}
}
