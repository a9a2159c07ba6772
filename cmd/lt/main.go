package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/lista-tareas/internal"
	"github.com/valter-silva-au/lista-tareas/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	basePath := app.ResolveBasePath()

	var a *app.App
	cli.SetInitializer(func(opts cli.InitOptions) error {
		var err error
		a, err = app.NewApp(basePath, opts)
		return err
	})

	err := cli.Execute()
	if a != nil {
		_ = a.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
