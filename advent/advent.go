package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// A solution computes one puzzle answer from the full text of a day's input.
type solution func(input string) (int64, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

type runOptions struct {
	input string // "" means the configured input file; "-" means stdin
	keep  bool
	check bool
}

var errWrongAnswer = errors.New("answer does not match config")

func main() {
	setupLogging()

	var (
		configPath = flag.String("config", getEnv("ADVENT_CONFIG", "advent.ini"), "ini file with input dir and known answers")
		inputPath  = flag.String("input", "", "input file (- for stdin); defaults to <dir>/dayNN.txt from the config")
		keep       = flag.Bool("keep", false, "copy -input into the configured input dir")
		check      = flag.Bool("check", false, "fail if an answer differs from the config")
		stats      = flag.Bool("stats", false, "print elapsed time, CPU time, and max RSS")
		profile    = flag.String("fgprof", "", "write a wall-clock profile to this file")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	opts := runOptions{input: *inputPath, keep: *keep, check: *check}

	var stopProfile func() error
	if *profile != "" {
		stopProfile, err = startProfile(*profile)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot start profiler")
		}
	}

	start := time.Now()
	switch name := flag.Arg(0); name {
	case "all":
		err = runAll(cfg, opts, os.Stdout)
	case "repl":
		err = runREPL(cfg, opts)
	default:
		err = runOne(cfg, name, opts, os.Stdout)
	}

	if stopProfile != nil {
		if perr := stopProfile(); perr != nil {
			log.Error().Err(perr).Msg("cannot write profile")
		}
	}
	if *stats {
		ps, serr := currentStats(start)
		if serr != nil {
			log.Error().Err(serr).Msg("cannot read process stats")
		} else {
			fmt.Fprintln(os.Stderr, ps)
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution|all|repl]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	printSolutions(os.Stderr)
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func printSolutions(w io.Writer) {
	for _, name := range sortedNames() {
		fmt.Fprintln(w, name)
	}
}

// runOne runs a single registered solution and writes its answer to w.
func runOne(cfg *config, name string, opts runOptions, w io.Writer) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	path := opts.input
	if path == "" {
		path = cfg.inputPath(name)
		if _, err := os.Stat(path); err != nil {
			log.Debug().Str("path", path).Msg("no input file; reading stdin")
			path = "-"
		}
	}
	if opts.keep {
		if err := cfg.keepInput(name, path); err != nil {
			return err
		}
	}
	input, err := readInput(path)
	if err != nil {
		return err
	}
	answer, err := fn(input)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintln(w, answer)
	logSolution(name, answer)
	if opts.check {
		return cfg.check(name, answer)
	}
	return nil
}

func sortedNames() []string {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// splitName splits a solution name like "12b" into its day and part suffix.
func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
