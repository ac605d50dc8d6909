// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/toy/config"
	"github.com/ezrec/toy/cpu"
	"github.com/ezrec/toy/translate"
)

// cli carries the flags shared by every command, and the loaded settings.
type cli struct {
	cfgFile string
	verbose bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	app := &cli{}

	root := &cobra.Command{
		Use:           "toy",
		Short:         "toy runs, checks and formats TOY machine programs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&app.cfgFile, "config", "c", "toy.yaml", "configuration file")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "trace every instruction")

	root.AddCommand(
		app.newRunCmd(),
		app.newCheckCmd(),
		app.newFormatCmd(),
		app.newDescribeCmd(),
	)

	return root
}

func (app *cli) initConfig(cmd *cobra.Command) (err error) {
	app.cfg, err = config.NewConfig(app.cfgFile)
	if err != nil {
		return
	}

	if cmd.Flags().Changed("verbose") {
		app.cfg.Verbose = app.verbose
	}

	if len(app.cfg.Locale) != 0 {
		translate.SetLanguage(app.cfg.Locale)
	}

	return
}

// readProgram parses a TOY source file.
func readProgram(path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = cpu.Parse(inf)
	return
}
