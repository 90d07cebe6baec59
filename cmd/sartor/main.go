// Sartor - a colour-harmony outfit recommender
//
// Sartor keeps a digitised wardrobe and scores outfit combinations
// against colour-theory rules, as a CLI and a small REST API.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmylchreest/sartor/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
