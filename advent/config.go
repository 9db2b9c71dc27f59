package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/cp"
	"github.com/rs/zerolog/log"
	"github.com/vaughan0/go-ini"
)

const defaultInputDir = "inputs"

type config struct {
	inputDir string
	answers  map[string]int64
}

// loadConfig reads an ini file of the form
//
//	[inputs]
//	dir = inputs
//
//	[answers]
//	5a = 389056265
//
// A missing file is not an error; it yields the defaults. A relative input
// dir is taken relative to the config file.
func loadConfig(path string) (*config, error) {
	cfg := &config{
		inputDir: filepath.Join(filepath.Dir(path), defaultInputDir),
		answers:  make(map[string]int64),
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if dir, ok := file.Get("inputs", "dir"); ok && dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		cfg.inputDir = dir
	}
	for name, v := range file.Section("answers") {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad answer for %s in %s: %q", name, path, v)
		}
		cfg.answers[name] = n
	}
	return cfg, nil
}

func (c *config) inputPath(name string) string {
	day, _ := splitName(name)
	return filepath.Join(c.inputDir, fmt.Sprintf("day%02d.txt", day))
}

// keepInput copies src to the input file for name so later runs (and "all")
// find it without -input.
func (c *config) keepInput(name, src string) error {
	if src == "-" {
		return errors.New("-keep needs an -input file, not stdin")
	}
	dst := c.inputPath(name)
	if src == dst {
		return nil
	}
	if err := os.MkdirAll(c.inputDir, 0755); err != nil {
		return err
	}
	if err := cp.CopyFile(dst, src); err != nil {
		return fmt.Errorf("cannot keep input: %s", err)
	}
	log.Info().Str("path", dst).Msg("saved input")
	return nil
}

func (c *config) check(name string, answer int64) error {
	want, ok := c.answers[name]
	if !ok {
		log.Warn().Str("solution", name).Msg("no known answer to check against")
		return nil
	}
	if answer != want {
		return fmt.Errorf("%s: got %d; want %d: %w", name, answer, want, errWrongAnswer)
	}
	return nil
}
