package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"g1.vc/site/internal/export"
)

func exportCmd(flags *rootFlags, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "export <output-dir>",
		Short: "Render the landing page and its assets to a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.load(stderr)
			if err != nil {
				return err
			}
			res, err := export.Run(cfg, args[0], log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", res.Files, args[0])
			return nil
		},
	}
}
