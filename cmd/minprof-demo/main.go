// Command minprof-demo exercises the instrumentation library the way a
// profiled program would: manual events, counted+timed sections, a
// manual stopwatch, and tight loops, followed by a console report and
// an optional CSV dump.
//
// Usage:
//
//	minprof-demo [-v] [-n iterations] [-o file.csv]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/rs/zerolog"

	"github.com/ygrebnov/minprof"
)

// zl adapts zerolog to the registry's Logger interface.
type zl struct{ l zerolog.Logger }

func (a zl) Debugf(format string, args ...interface{}) { a.l.Debug().Msgf(format, args...) }
func (a zl) Infof(format string, args ...interface{})  { a.l.Info().Msgf(format, args...) }
func (a zl) Warnf(format string, args ...interface{})  { a.l.Warn().Msgf(format, args...) }
func (a zl) Errorf(format string, args ...interface{}) { a.l.Error().Msgf(format, args...) }

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-v] [-n iterations] [-o file.csv]\n", os.Args[0])
	os.Exit(2)
}

func main() {
	var (
		out     string
		iters   = 1_000_000
		verbose bool
	)
	opts, _, err := getopt.Getopts(os.Args, "vn:o:")
	if err != nil {
		usage()
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			verbose = true
		case 'n':
			iters, err = strconv.Atoi(opt.Value)
			if err != nil || iters <= 0 {
				usage()
			}
		case 'o':
			out = opt.Value
		}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	// An isolated registry with registration reports routed through
	// zerolog; run with -v to see them.
	reg := minprof.New(minprof.WithLogger(zl{log}))
	reg.Counter("isolated|C").Add(2)
	log.Debug().Int("count", reg.Count()).Msg("isolated registry")

	// A single manual event on the process-wide registry.
	minprof.Event("all|C")

	// A counted and timed section: maintains demo_section|C and
	// demo_section|T under one base name.
	func() {
		defer minprof.EnterSection("demo_section")()
		log.Debug().Msg("inside demo_section")
		time.Sleep(time.Millisecond)
	}()

	// Manual stopwatch against a registered timer.
	sw := minprof.NewStopwatch(minprof.GetTimer("manual|T"))
	sw.Start()
	split := sw.Split()
	total := sw.Stop()
	log.Debug().
		Dur("split", split).
		Dur("stop", total).
		Msg("manual stopwatch")

	// A tight loop of single events under one timer.
	func() {
		defer minprof.Timed("events|T")()
		for i := 0; i < iters; i++ {
			minprof.Event("events|C")
		}
	}()

	// A tight loop of full sections.
	func() {
		defer minprof.Timed("sections|T")()
		for i := 0; i < iters; i++ {
			minprof.EnterSection("sections")()
		}
	}()

	eventNs := minprof.GetTimer("events|T").Value().Nanoseconds() /
		int64(minprof.GetCounter("events|C").Value())
	sectionNs := minprof.GetTimer("sections|T").Value().Nanoseconds() /
		int64(minprof.GetCounter("sections"+minprof.CountSuffix).Value())
	log.Info().
		Int64("event_ns", eventNs).
		Int64("section_ns", sectionNs).
		Int("iterations", iters).
		Msg("per-operation cost")

	if err := minprof.Report(os.Stdout); err != nil {
		log.Error().Err(err).Msg("report failed")
		os.Exit(1)
	}
	if out != "" {
		if err := minprof.DumpFile(out); err != nil {
			log.Error().Err(err).Msg("dump failed")
			os.Exit(1)
		}
		log.Info().Str("file", out).Msg("counters dumped")
	}
}
