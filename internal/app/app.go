// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"primerscan/internal/appcore"
	"primerscan/internal/cli"
	"primerscan/internal/cliutil"
	"primerscan/internal/cmdutil"
	"primerscan/internal/config"
	"primerscan/internal/engine"
	"primerscan/internal/errs"
	"primerscan/internal/fasta"
	"primerscan/internal/metrics"
	"primerscan/internal/primer"
	"primerscan/internal/progress"
	"primerscan/internal/sequence"
	"primerscan/internal/table"
	"primerscan/internal/version"
	"primerscan/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

// exitError carries a non-zero exit code out of the cobra RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := ExitOK
	v := viper.New()
	cmd := cli.NewRootCommand(v, func(cmd *cobra.Command, cfg config.Config) error {
		c, err := execute(cmd.Context(), cfg, stderr)
		code = c
		return err
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return code
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil && ee.code != ExitCanceled {
			_, _ = fmt.Fprintln(stderr, "error:", ee.err)
		}
		return ee.code
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	var ue *cli.UsageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return ExitUsage
	}
	return ExitFailure
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func execute(ctx context.Context, cfg config.Config, stderr io.Writer) (int, error) {
	began := time.Now()
	lg, err := cmdutil.NewLogger(stderr, cfg.LogLevel, cfg.Quiet)
	if err != nil {
		return ExitUsage, &exitError{ExitUsage, err}
	}
	if !cfg.Quiet {
		_, _ = fmt.Fprintf(stderr, "primerscan (v%s)\n-----------------------\n", version.Version)
	}
	delim := cfg.DelimiterRune()

	contigs, collections, err := loadInputs(ctx, cfg, delim, lg)
	if err != nil {
		var ue *cli.UsageError
		if errors.Is(err, errs.ErrNotFound) || errors.As(err, &ue) {
			return ExitUsage, &exitError{ExitUsage, err}
		}
		return ExitFailure, &exitError{ExitFailure, err}
	}

	sink, err := writers.Open(ctx, cfg.Output, writers.Options{Delimiter: delim, Clean: cfg.Clean})
	if err != nil {
		return ExitFailure, &exitError{ExitFailure, err}
	}
	defer func() { _ = sink.Close() }()

	var renderer progress.Renderer = progress.NewLineRenderer(stderr)
	if cfg.ProgressStyle == config.StyleBar {
		renderer = progress.NewBarRenderer(stderr)
	}
	tracker := progress.New(cfg.Progress && !cfg.Quiet, renderer)
	mc := metrics.New()

	rep, runErr := appcore.Run(ctx, appcore.Options{
		Threads:  cfg.Threads,
		Prefix:   cfg.Prefix,
		Progress: tracker,
		Metrics:  mc,
		Log:      lg,
	}, collections, contigs, engine.New(), sink)
	_ = tracker.Close()

	if err := mc.WriteTextfile(cfg.MetricsFile); err != nil {
		lg.Warnf("metrics: %v", err)
	}
	lg.Infof("absolute runtime: %.2fs", time.Since(began).Seconds())

	switch {
	case runErr != nil && errors.Is(runErr, context.Canceled):
		return ExitCanceled, &exitError{ExitCanceled, runErr}
	case runErr != nil:
		return ExitFailure, &exitError{ExitFailure, runErr}
	case rep.Failed():
		return ExitFailure, &exitError{ExitFailure, fmt.Errorf("%d work unit(s) and %d table write(s) failed",
			len(rep.UnitFailures), len(rep.WriteFailures))}
	case rep.Hits == 0:
		return cfg.NoMatchExitCode, nil
	}
	return ExitOK, nil
}

// loadInputs reads every source before anything is written, so a missing
// file never leaves a partial set of tables behind.
func loadInputs(ctx context.Context, cfg config.Config, delim rune, lg *log.Logger) (sequence.Collection, []sequence.Collection, error) {
	paths, err := cliutil.ExpandGlobs(cfg.Primers)
	if err != nil {
		return sequence.Collection{}, nil, fmt.Errorf("%w: %v", errs.ErrNotFound, err)
	}
	if err := table.CheckNames(paths, cfg.Prefix); err != nil {
		return sequence.Collection{}, nil, &cli.UsageError{Err: err}
	}
	contigs, err := fasta.Load(ctx, cfg.Contigs)
	if err != nil {
		return sequence.Collection{}, nil, err
	}
	lg.Debugf("loaded %d contigs from %s", contigs.Len(), cfg.Contigs)

	collections := make([]sequence.Collection, 0, len(paths))
	for _, p := range paths {
		coll, bad, err := primer.Load(p, delim)
		if err != nil {
			return sequence.Collection{}, nil, err
		}
		for _, b := range bad {
			lg.Warnf("skipped %v", b)
		}
		lg.Debugf("loaded %d primers from %s", coll.Len(), p)
		collections = append(collections, coll)
	}
	return contigs, collections, nil
}
