package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/toy/cpu"
)

func (app *cli) newFormatCmd() *cobra.Command {
	var write bool
	var width int

	cmd := &cobra.Command{
		Use:   "format FILE",
		Short: "Regenerate the comment of every line of code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if cmd.Flags().Changed("width") {
				app.cfg.Format.Width = width
			}

			path := args[0]
			lines, err := readLines(path)
			if err != nil {
				return
			}

			text := strings.Join(cpu.ReformatWidth(lines, app.cfg.Format.Width), "\n") + "\n"

			if !write {
				_, err = io.WriteString(cmd.OutOrStdout(), text)
				return
			}

			fi, err := os.Stat(path)
			if err != nil {
				return
			}

			err = os.WriteFile(path, []byte(text), fi.Mode().Perm())
			if err != nil {
				return
			}

			if app.cfg.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "%v: formatted\n", path)
			}
			return
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.Flags().IntVar(&width, "width", cpu.LINE_WIDTH, "minimum width of a line")

	return cmd
}

func readLines(path string) (lines []string, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	scanner := bufio.NewScanner(inf)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	err = scanner.Err()
	return
}
