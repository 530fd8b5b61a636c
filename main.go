package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/appscodelabs/navcheck/cmd"
	xlog "github.com/appscodelabs/navcheck/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, cmd.ErrIssues) {
			logger := xlog.Base()
			logger.Error().Err(err).Msg("navcheck failed")
		}
		os.Exit(1)
	}
}
