package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nostressdev/sdpcheck/internal/logging"
	"github.com/nostressdev/sdpcheck/sdp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/teris-io/shortid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sdpcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	failOnWarning := fs.Bool("fail-on-warning", false, "reject documents with unsupported values")
	logLevel := fs.String("log-level", "", "log level (trace, debug, info, warn, error, off)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := defaultCheckConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadCheckConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "sdpcheck: %v\n", err)
			return 2
		}
	}
	badLevel := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fail-on-warning":
			cfg.FailOnWarning = *failOnWarning
		case "log-level":
			level := strings.TrimSpace(*logLevel)
			if _, ok := logging.ParseLevel(level); !ok {
				badLevel = true
				return
			}
			cfg.Log.Level = level
		}
	})
	if badLevel {
		fmt.Fprintf(stderr, "sdpcheck: -log-level: unknown level %q\n", *logLevel)
		return 2
	}
	cfg.Log.Out = stderr
	logger := logging.New(cfg.Log)

	status := 0
	if fs.NArg() == 0 {
		if !check(logger, cfg, "-", stdin, stdout) {
			status = 1
		}
		return status
	}

	for _, path := range fs.Args() {
		f, err := os.Open(path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("failed to open sdp document")
			status = 1
			continue
		}
		if !check(logger, cfg, filepath.Base(path), f, stdout) {
			status = 1
		}
		f.Close()
	}
	return status
}

// check decodes one document and prints its verdict and diagnostics.
func check(logger zerolog.Logger, cfg checkConfig, name string, r io.Reader, out io.Writer) bool {
	log := logger.With().Str("check", shortid.MustGenerate()).Str("document", name).Logger()

	report, err := sdp.NewDecoder(r, sdp.Config{FailOnWarning: cfg.FailOnWarning, Logger: &log}).Decode()
	if err != nil {
		log.Error().Err(errors.Wrap(err, name)).Msg("document rejected")
		fmt.Fprintf(out, "%s: rejected: %v\n", name, err)
		return false
	}

	verdict := "accepted"
	if !report.Accepted() {
		verdict = "rejected"
	}
	fmt.Fprintf(out, "%s: %s\n", name, verdict)
	for _, f := range report.Failures {
		fmt.Fprintf(out, "  %v\n", f)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "  warning: %v\n", w)
	}

	log.Info().Int("lines", len(report.Lines)).Int("failures", len(report.Failures)).Int("warnings", len(report.Warnings)).Msg("document " + verdict)
	return report.Accepted()
}
