package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ReportFormat selects the structured format of an exported report.
type ReportFormat string

const (
	// ReportFormatXML writes the report as XML, the format of the original tool.
	ReportFormatXML ReportFormat = "xml"
	// ReportFormatJSON writes the report as JSON.
	ReportFormatJSON ReportFormat = "json"
	// ReportFormatYAML writes the report as YAML.
	ReportFormatYAML ReportFormat = "yaml"
)

const (
	// DefaultReportPath is the report file name used when none is configured.
	DefaultReportPath = "report.xml"
	// DefaultBufferSize is the checksum read buffer size in bytes.
	DefaultBufferSize = 64 * 1024
)

// ParseReportFormat converts s to a ReportFormat. The empty string maps to XML.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ReportFormatXML):
		return ReportFormatXML, nil
	case string(ReportFormatJSON):
		return ReportFormatJSON, nil
	case string(ReportFormatYAML), "yml":
		return ReportFormatYAML, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownReportFormat, "invalid report format"), "format", s)
	}
}

// ReportConfig describes where and how the aggregate is exported.
type ReportConfig struct {
	Path   string
	Format ReportFormat
}

// Config holds the resolved settings for a scan.
type Config struct {
	// Concurrency caps the number of files processed at once. Zero or less means one goroutine per file.
	Concurrency int
	// BufferSize is the read buffer used by the checksum engine.
	BufferSize int
	Report     ReportConfig
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		BufferSize: DefaultBufferSize,
		Report: ReportConfig{
			Path:   DefaultReportPath,
			Format: ReportFormatXML,
		},
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.BufferSize <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "buffer size must be positive"), "buffer_size", c.BufferSize)
	}
	if _, err := ParseReportFormat(string(c.Report.Format)); err != nil {
		return err
	}
	return nil
}
