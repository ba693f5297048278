package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-nolog/internal/config"
	"github.com/mordilloSan/go-nolog/logger"
	"github.com/mordilloSan/go-nolog/metrics"
)

// Example program writing one line per level.
//
// Usage:
//
//	go-nolog                              # six lines on stderr
//	go-nolog --target file --timestamp    # fresh log.txt, printed afterwards
//	go build -tags release && ./go-nolog  # prints nothing
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &config.Options{}
	cmd := &cobra.Command{
		Use:   "go-nolog",
		Short: "Write one log line per level to stderr or a file",
		Long: `Writes one line for each of the six levels (TRCE, DEBG, INFO, WARN, ERRO, CRIT).

With the file target the file is truncated first, unless --truncate=false,
and its contents are printed once all lines are written.

Settings come from flags, NOLOG_* environment variables and nolog.toml, in that order.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(opts, cmd.Flags()); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), opts)
		},
	}
	config.BindFlags(cmd.Flags(), opts)
	return cmd
}

func run(out io.Writer, opts *config.Options) error {
	cfg, err := opts.LoggerConfig()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	failures := metrics.NewErrorCounter(reg)
	cfg.OnError = failures.Observe

	path := cfg.FilePath
	if path == "" {
		path = logger.DefaultFilePath
	}
	if cfg.Target == logger.TargetFile && opts.Truncate {
		// A fresh file per run is this program's choice; the logger only appends.
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("failed to truncate %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	logger.Init(cfg)
	logLevels(opts.Levels())

	if cfg.Target == logger.TargetFile {
		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read back %s: %w", path, err)
		}
		fmt.Fprintf(out, "-- In %q --\n", path)
		fmt.Fprintln(out, string(contents))
	}

	if opts.Metrics {
		return printCounters(out, reg)
	}
	return nil
}

func logLevels(levels []logger.Level) {
	a := 42
	if slices.Contains(levels, logger.TraceLevel) {
		logger.Tracef("text %[1]v,%[1]v,%[1]v", a)
	}
	if slices.Contains(levels, logger.DebugLevel) {
		logger.Debugf("text %[1]v,%[1]v,%[2]v", a, 24)
	}
	if slices.Contains(levels, logger.InfoLevel) {
		logger.Infof("text %v,%v,%v", a, 24, "42")
	}
	if slices.Contains(levels, logger.WarnLevel) {
		logger.Warnf("text %[1]v,%[2]c,%[3]v", a, 'a', "422")
	}
	if slices.Contains(levels, logger.ErrorLevel) {
		logger.Errorf("text %[1]v,%[1]v,%[2]v", a, a)
	}
	if slices.Contains(levels, logger.CritLevel) {
		logger.Critf("text %[1]v,%[1]v,%[1]v", a)
	}
}

func printCounters(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	var rows []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			rows = append(rows, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "no log failures")
		return nil
	}
	sort.Strings(rows)
	for _, row := range rows {
		fmt.Fprintln(out, row)
	}
	return nil
}
