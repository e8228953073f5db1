package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bodtour/bracketfix/cmd/bracketfix/app"
)

func newVersionCommand(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bracketfix %s (%s, %s/%s)\n",
				application.Version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
