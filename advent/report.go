package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

func setupLogging() {
	_ = godotenv.Load()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// logSolution records the day/part/answer triple for a finished solution.
func logSolution(name string, answer int64) {
	day, suffix := splitName(name)
	part := suffix
	switch suffix {
	case "a":
		part = "1"
	case "b":
		part = "2"
	}
	log.Info().
		Str("day", fmt.Sprintf("%02d", day)).
		Str("part", part).
		Int64("answer", answer).
		Msg(humanize.Comma(answer))
}

type processStats struct {
	elapsed     time.Duration
	cpuUsage    time.Duration // utime+stime
	maxRSSBytes int64
}

func (ps *processStats) String() string {
	return fmt.Sprintf(
		"elapsed: %s, cpu: %s, max RSS: %s",
		ps.elapsed.Round(time.Millisecond),
		ps.cpuUsage.Round(time.Millisecond),
		humanize.Bytes(uint64(ps.maxRSSBytes)),
	)
}

func currentStats(start time.Time) (*processStats, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return nil, err
	}
	return &processStats{
		elapsed:     time.Since(start),
		cpuUsage:    time.Duration(ru.Utime.Nano() + ru.Stime.Nano()),
		maxRSSBytes: int64(ru.Maxrss) * 1024, // KiB on Linux
	}, nil
}

// startProfile starts a wall-clock profile written to path in pprof format.
// The returned func stops profiling and closes the file.
func startProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stop(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
