package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/flowave-io/webwasp/internal/monitor"
)

func watchCmd(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: webwasp watch <profile.hcl>")
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := monitor.WatchFileLogging(ctx, args[0]); err != nil {
		fmt.Fprintln(os.Stderr, "Watch error:", err)
		return 2
	}
	return 0
}
