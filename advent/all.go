package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/cespare/wait"
	"github.com/rs/zerolog/log"
)

type allResult struct {
	answer  int64
	err     error
	skipped bool
}

// runAll runs every registered solution that has an input file in the
// configured input dir. Solutions run concurrently; results are written in
// name order.
func runAll(cfg *config, opts runOptions, w io.Writer) error {
	names := sortedNames()
	results := make([]allResult, len(names))
	var wg wait.Group
	for i, name := range names {
		wg.Go(func(quit <-chan struct{}) error {
			input, err := readInput(cfg.inputPath(name))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					results[i].skipped = true
					return nil
				}
				return err
			}
			results[i].answer, results[i].err = solutions[name](input)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	var failed int
	for i, name := range names {
		r := results[i]
		switch {
		case r.skipped:
			log.Debug().Str("solution", name).Msg("no input; skipped")
			continue
		case r.err != nil:
			log.Error().Err(r.err).Str("solution", name).Msg("solution failed")
			failed++
			continue
		}
		fmt.Fprintf(w, "%s\t%d\n", name, r.answer)
		logSolution(name, r.answer)
		if opts.check {
			if err := cfg.check(name, r.answer); err != nil {
				log.Error().Err(err).Msg("wrong answer")
				failed++
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d solutions failed", failed, len(names))
	}
	return nil
}
