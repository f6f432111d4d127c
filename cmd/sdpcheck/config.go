package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nostressdev/sdpcheck/internal/logging"
	"github.com/pkg/errors"
)

type fileConfig struct {
	FailOnWarning bool   `toml:"fail_on_warning"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
}

type checkConfig struct {
	FailOnWarning bool
	Log           logging.Config
}

func defaultCheckConfig() checkConfig {
	return checkConfig{Log: logging.DefaultConfig()}
}

func loadCheckConfig(path string) (checkConfig, error) {
	cfg := defaultCheckConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return checkConfig{}, errors.Wrap(err, "load sdpcheck config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return checkConfig{}, errors.Errorf("unknown config key %q", undecoded[0].String())
	}

	if meta.IsDefined("fail_on_warning") {
		cfg.FailOnWarning = raw.FailOnWarning
	}

	if meta.IsDefined("log_level") {
		level := strings.TrimSpace(raw.LogLevel)
		if _, ok := logging.ParseLevel(level); !ok {
			return checkConfig{}, errors.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.Log.Level = level
	}

	if meta.IsDefined("log_format") {
		format := strings.ToLower(strings.TrimSpace(raw.LogFormat))
		switch format {
		case logging.FormatConsole, logging.FormatJSON:
			cfg.Log.Format = format
		default:
			return checkConfig{}, errors.Errorf("parse log_format: unknown format %q", raw.LogFormat)
		}
	}

	return cfg, nil
}
