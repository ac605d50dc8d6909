// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/toy/emulator"
	toyio "github.com/ezrec/toy/io"
)

func (app *cli) newRunCmd() *cobra.Command {
	var input, watch string
	var dump bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program, with the console on standard input and output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				app.cfg.Run.Input = input
			}
			if cmd.Flags().Changed("watch") {
				app.cfg.Run.Watch = watch
			}
			if cmd.Flags().Changed("dump") {
				app.cfg.Run.Dump = dump
			}
			return app.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "console input queued before the run")
	cmd.Flags().StringVarP(&watch, "watch", "w", "", "pause when this Starlark expression is true")
	cmd.Flags().BoolVarP(&dump, "dump", "d", false, "print the machine state at the end")

	return cmd
}

func (app *cli) run(cmd *cobra.Command, path string) (err error) {
	prog, err := readProgram(path)
	if err != nil {
		return
	}

	opts := []emulator.Option{
		emulator.WithVerbose(app.cfg.Verbose),
		emulator.WithLogger(log.Default()),
	}

	if len(app.cfg.Run.Watch) != 0 {
		var watch *emulator.Watch
		watch, err = emulator.NewWatch(app.cfg.Run.Watch)
		if err != nil {
			return
		}
		opts = append(opts, emulator.WithWatch(watch))
	}

	emu, err := emulator.NewEmulator(prog, opts...)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	tape := &toyio.Tape{
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
	}
	tape.Attach(&emu.Console)

	emu.Feed(app.cfg.Run.Input)

	interactive := false
	if inf, ok := tape.Input.(*os.File); ok {
		interactive = term.IsTerminal(int(inf.Fd()))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer func() {
		signal.Stop(sig)
		close(sig)
	}()
	go func() {
		for range sig {
			emu.Stop()
		}
	}()

	if app.cfg.Run.Dump {
		defer func() {
			fmt.Fprint(cmd.OutOrStdout(), emu.Dump())
		}()
	}

	for {
		err = emu.Run()
		if err != nil {
			return
		}

		if !emu.Waiting() {
			break
		}

		if interactive {
			fmt.Fprint(cmd.ErrOrStderr(), "? ")
		}

		_, err = tape.Receive(&emu.Console)
		if errors.Is(err, io.EOF) {
			err = nil
			log.Printf("%v: console input exhausted at %v", path, emu.PcHex())
			return
		}
		if err != nil {
			return
		}
	}

	switch {
	case emu.Errored():
		err = emu.Err()
	case !emu.Finished():
		log.Printf("%v: stopped at %v, %v", path, emu.PcHex(), emu.CurrentDisplay())
	}

	return
}
