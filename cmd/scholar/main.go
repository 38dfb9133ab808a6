package main

import (
	"os"

	"github.com/ayoisaiah/scholar/app"
	"github.com/ayoisaiah/scholar/config"
	"github.com/ayoisaiah/scholar/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	config.InitializePaths()

	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
