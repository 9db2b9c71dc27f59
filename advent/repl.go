package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// runREPL reads commands of the form "<solution> [input]" until EOF.
func runREPL(cfg *config, opts runOptions) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent-history.txt"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			log.Error().Err(err).Msg("readline error")
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "exit", "quit":
			return nil
		case "help":
			printSolutions(l.Stdout())
			continue
		}
		name := fields[0]
		if _, ok := solutions[name]; !ok {
			fmt.Fprintf(l.Stderr(), "unknown solution %q (try help)\n", name)
			continue
		}
		// Never fall back to stdin here; readline owns it.
		o := opts
		o.input = cfg.inputPath(name)
		if len(fields) > 1 {
			o.input = fields[1]
		}
		if o.input == "-" {
			fmt.Fprintln(l.Stderr(), "stdin input is not available in the repl")
			continue
		}
		if err := runOne(cfg, name, o, l.Stdout()); err != nil {
			fmt.Fprintln(l.Stderr(), err)
		}
	}
}
