// Command g1site serves or exports the G1 landing page.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	zlog "github.com/rs/zerolog/log"

	"g1.vc/site/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx, os.Args[1:], os.Stderr); err != nil {
		stop()
		zlog.Fatal().Err(err).Msg("g1site failed")
	}
}
