package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bytesum/internal/core/domain"
)

func TestParseReportFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ReportFormat
	}{
		{"", domain.ReportFormatXML},
		{"xml", domain.ReportFormatXML},
		{"XML", domain.ReportFormatXML},
		{"json", domain.ReportFormatJSON},
		{" yaml ", domain.ReportFormatYAML},
		{"yml", domain.ReportFormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseReportFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseReportFormat_Unknown(t *testing.T) {
	_, err := domain.ParseReportFormat("csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report format")
}

func TestConfig_Validate(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultReportPath, cfg.Report.Path)
	assert.Equal(t, 0, cfg.Concurrency)

	cfg.BufferSize = 0
	require.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.Report.Format = "csv"
	require.Error(t, cfg.Validate())
}
