// Command sigtool runs signal scenarios described in YAML files.
//
// Usage:
//
//	sigtool [flags] scenario.yaml ...
//
// A scenario declares named signals (explicit points, presets, white noise or
// stored documents) followed by engine steps: samples, regression, best-fit,
// newton, hold, convolve, convolution-step, noisify, correlate and save.
//
// Examples:
//
//	sigtool testdata/convolution.yaml
//	sigtool -points -xprec 3 lesson.yaml
//	sigtool -store ./signals -watch lesson.yaml
//	sigtool -list
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	dspsignal "github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/cwbudde/algo-dsp-viz/internal/session"
	"github.com/cwbudde/algo-dsp-viz/internal/store"
	log "github.com/sirupsen/logrus"
)

type options struct {
	storeDir   string
	withPoints bool
	watch      bool
	xPrecision int
	yPrecision int
	seed       uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.storeDir, "store", "", "directory for saved signals (enables load/save)")
	flag.BoolVar(&opts.withPoints, "points", false, "print the points of every step")
	flag.BoolVar(&opts.watch, "watch", false, "re-run scenarios whenever their files change")
	flag.IntVar(&opts.xPrecision, "xprec", core.DefaultXPrecision, "decimal places for x coordinates")
	flag.IntVar(&opts.yPrecision, "yprec", core.DefaultYPrecision, "decimal places for stored y values")
	flag.Uint64Var(&opts.seed, "seed", 1, "seed for noise generation")
	list := flag.Bool("list", false, "list available preset names")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sigtool [flags] scenario.yaml ...\n\n")
		fmt.Fprintf(os.Stderr, "Runs signal scenarios and prints one row per step.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sigtool lesson.yaml\n")
		fmt.Fprintf(os.Stderr, "  sigtool -points -xprec 3 lesson.yaml\n")
		fmt.Fprintf(os.Stderr, "  sigtool -store ./signals -watch lesson.yaml\n")
		fmt.Fprintf(os.Stderr, "  sigtool -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range dspsignal.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	logger := log.WithFields(log.Fields{"cmd": "sigtool"})

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range paths {
		if err := runFile(os.Stdout, logger, opts, path); err != nil {
			logger.WithError(err).WithField("file", path).Error("scenario failed")
			failed = true
		}
	}

	if opts.watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.WithField("files", paths).Info("watching scenarios")
		err := watch(ctx, logger, paths, func(path string) {
			if err := runFile(os.Stdout, logger, opts, path); err != nil {
				logger.WithError(err).WithField("file", path).Error("scenario failed")
			}
		})
		if err != nil {
			logger.WithError(err).Fatal("watch stopped")
		}
		return
	}

	if failed {
		os.Exit(1)
	}
}

// runFile runs one scenario in a fresh session and prints its results to w.
func runFile(w io.Writer, logger *log.Entry, opts options, path string) error {
	sc, err := loadScenario(path)
	if err != nil {
		return err
	}

	config := session.Config{
		Options: []core.Option{
			core.WithXPrecision(opts.xPrecision),
			core.WithYPrecision(opts.yPrecision),
			core.WithSeed(opts.seed),
		},
	}
	if opts.storeDir != "" {
		config.Storage = store.New(opts.storeDir)
	}
	sess := session.New(logger.WithField("file", path), config)

	results, runErr := run(sess, sc)
	if _, err := fmt.Fprintf(w, "== %s\n", path); err != nil {
		return fmt.Errorf("sigtool: write output: %w", err)
	}
	if err := printResults(w, results, opts.withPoints); err != nil {
		return err
	}
	return runErr
}
