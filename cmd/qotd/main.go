package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/qotd/internal/cli"
)

// Version is injected at build time:
//
//	go build -ldflags "-X main.Version=1.0.0" ./cmd/qotd
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], cli.Options{Version: Version})
	stop()
	os.Exit(code)
}
