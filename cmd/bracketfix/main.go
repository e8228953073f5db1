// Command bracketfix repairs bracket results in tournament data files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bodtour/bracketfix/cmd/bracketfix/app"
	"github.com/bodtour/bracketfix/cmd/bracketfix/cmd"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	application, err := app.New(version)
	app.ExitOnError(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCommand(application)
	app.ExitOnError(rootCmd.ExecuteContext(ctx))
}
