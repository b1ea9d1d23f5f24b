package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"g1.vc/site/internal/handlers"
	"g1.vc/site/internal/metrics"
	"g1.vc/site/internal/server"
)

func serveCmd(flags *rootFlags, stderr io.Writer) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.load(stderr)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.HTTPAddr = addr
			}

			log.Info().
				Str("mode", string(cfg.Server.Mode)).
				Dur("feed_delay", cfg.Server.FeedDelay).
				Bool("client", handlers.ClientAvailable(cfg.Server.ClientDir)).
				Msg("starting g1site")

			reg := metrics.NewRegistry()
			srv := server.New(cfg.Server.HTTPAddr, handlers.SetupRoutes(cfg, log, reg), log)
			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides G1_SITE_HTTP_ADDR)")
	return cmd
}
