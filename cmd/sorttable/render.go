package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a table source once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := opts.prepare(cmd.Context())
			if err != nil {
				return err
			}
			out, _, err := p.render(cmd.Context())
			if err != nil {
				return fmt.Errorf("render table: %w", err)
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.Printf("table written to %s", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
