// SPDX-License-Identifier: MIT

// Command pnm runs pore network transport simulations described by a YAML
// file and maintains the project version.
//
// Usage:
//
//	pnm run --config sim.yaml [--verbose]
//	pnm bump --message "$COMMIT_MESSAGE" --file VERSION
//	pnm version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
