package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (app *cli) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check that programs can be loaded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			for _, path := range args {
				prog, perr := readProgram(path)
				if perr == nil {
					perr = prog.Validate()
				}
				if perr != nil {
					err = fmt.Errorf("%v: %w", path, perr)
					return
				}
				if app.cfg.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "%v: %v lines\n", path, len(prog.Lines))
				}
			}
			return
		},
	}
}
