// Package config provides the configuration loader for bytesum.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when no path is given.
const DefaultFilename = "bytesum.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader. logger may be nil.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and merges it over the defaults.
// A missing file is not an error.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.logger != nil {
				l.logger.Info("no config file at " + path + ", using defaults")
			}
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	return Parse(data)
}

// Parse decodes YAML config data and merges it over the defaults.
// Unknown keys are rejected.
func Parse(data []byte) (*domain.Config, error) {
	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := domain.DefaultConfig()
	if file.Concurrency < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "concurrency must not be negative"), "concurrency", file.Concurrency)
	}
	cfg.Concurrency = file.Concurrency

	if file.BufferSize != 0 {
		cfg.BufferSize = file.BufferSize
	}
	if file.Report.Path != "" {
		cfg.Report.Path = file.Report.Path
	}
	if file.Report.Format != "" {
		format, err := domain.ParseReportFormat(file.Report.Format)
		if err != nil {
			return nil, err
		}
		cfg.Report.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
