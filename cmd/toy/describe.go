package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/toy/cpu"
)

func (app *cli) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe CODE...",
		Short: "Describe four digit instruction codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			for _, code := range args {
				var ins cpu.Instruction
				ins, err = cpu.NewInstruction(code)
				if err != nil {
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v   %v\n", ins.Hex(), cpu.Describe(ins))
				if app.cfg.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "%v\n", ins)
				}
			}
			return
		},
	}
}
