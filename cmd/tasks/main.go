package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Keegan-JunBugg/tasks/internal/cli"
	"github.com/Keegan-JunBugg/tasks/internal/config"
	"github.com/Keegan-JunBugg/tasks/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	file := flag.String("f", "", "task file (overrides config)")
	theme := flag.String("theme", "", "ui theme: classic or mono")
	group := flag.Bool("group", false, "group listing by pending/done")
	verbose := flag.Bool("v", false, "debug output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *file != "" {
		cfg.File = *file
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.SetTheme(cfg.Theme)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	os.Exit(cli.Run(args, cli.Options{
		File:     cfg.File,
		Assignee: cfg.Assignee,
		Group:    *group,
		Verbose:  *verbose,
	}))
}
