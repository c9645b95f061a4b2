// Command sorttable renders table sources (YAML, JSON, XLSX, OpenAPI) as
// sortable HTML, either once to a file or continuously over HTTP.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "sorttable",
		Short:         "Render tables as sortable HTML",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	opts.bind(root)

	root.AddCommand(newRenderCmd(opts), newServeCmd(opts))
	return root
}
