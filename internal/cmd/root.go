// Package cmd wires the g1site command line.
package cmd

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"g1.vc/site/internal/config"
	"g1.vc/site/internal/logging"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	mode      string
	clientDir string
}

// Execute runs the command line against args.
func Execute(ctx context.Context, args []string, stderr io.Writer) error {
	root := NewRootCommand(stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the g1site command tree.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:           "g1site",
		Short:         "Serve or export the G1 landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (overrides G1_SITE_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "json or console (overrides G1_SITE_LOG_FORMAT)")
	root.PersistentFlags().StringVar(&flags.mode, "mode", "", "production or development (overrides G1_SITE_MODE)")
	root.PersistentFlags().StringVar(&flags.clientDir, "client-dir", "", "WebAssembly client directory (overrides G1_SITE_CLIENT_DIR)")

	root.AddCommand(serveCmd(&flags, stderr))
	root.AddCommand(exportCmd(&flags, stderr))
	return root
}

// load reads config from the environment and applies flag overrides.
func (f *rootFlags) load(stderr io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}
	if f.mode != "" {
		mode, err := config.ParseMode(f.mode)
		if err != nil {
			return nil, zerolog.Nop(), err
		}
		cfg.Server.Mode = mode
	}
	if f.clientDir != "" {
		cfg.Server.ClientDir = f.clientDir
	}

	log := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	zlog.Logger = log
	return cfg, log, nil
}
