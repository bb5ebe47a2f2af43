// Package cli is for command line interactions with primerscan.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"primerscan/internal/config"
	"primerscan/internal/version"
)

// EnvPrefix namespaces environment overrides, e.g. PRIMERSCAN_THREADS.
const EnvPrefix = "PRIMERSCAN"

// UsageError marks errors caused by bad flags, config or inputs.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewRootCommand builds the primerscan command. Flags are bound to v so a
// config file and PRIMERSCAN_* variables can supply the same settings;
// run receives the decoded, validated Config.
func NewRootCommand(v *viper.Viper, run func(cmd *cobra.Command, cfg config.Config) error) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "primerscan [flags] [primer files...]",
		Short: "Locate every occurrence of primer sequences inside contigs",
		Long: `Locate every occurrence of primer sequences inside contigs.

Each primer collection (a delimited file with "probe" and "sequence" columns)
is searched against every contig of a FASTA file. One result table is
written per primer collection, named after it (hits_<file>), listing
contig name, primer, start, end, length, requested and located sequence.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return &UsageError{fmt.Errorf("read config: %w", err)}
				}
			}
			c, err := config.Decode(v)
			if err != nil {
				return &UsageError{err}
			}
			c.Primers = append(c.Primers, args...)
			if err := c.Validate(); err != nil {
				return &UsageError{err}
			}
			return run(cmd, c)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err}
	})

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "path to a YAML/TOML/JSON config file")
	f.StringSliceP("primers", "p", nil, "primer collection file(s) or globs, one result table each [*]")
	f.StringP("contigs", "c", "", "FASTA file with contigs (gzip ok, '-' for stdin) [*]")
	f.StringP("delimiter", "d", ";", "column delimiter of primer files and result tables")
	f.IntP("threads", "t", 0, "worker goroutines per contig (0 = all CPUs)")
	f.Bool("progress", true, "show per-contig progress and ETA on stderr")
	f.String("progress-style", config.StyleLine, "progress display: line | bar")
	f.StringP("output", "o", "final", "result sink: directory, s3://bucket/prefix or sqlite://file.db")
	f.String("prefix", "hits_", "result table name prefix")
	f.Bool("clean", false, "empty the output directory / database before the run")
	f.String("metrics-file", "", "write Prometheus metrics to this textfile after the run")
	f.String("log-level", "info", "log level: trace | debug | info | warn | error")
	f.BoolP("quiet", "q", false, "only log errors and hide progress")
	f.Int("no-match-exit-code", 0, "exit code when no hits were found at all")

	f.VisitAll(func(fl *pflag.Flag) {
		if fl.Name == "config" {
			return
		}
		_ = v.BindPFlag(fl.Name, fl)
	})
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	config.SetDefaults(v)

	return cmd
}
