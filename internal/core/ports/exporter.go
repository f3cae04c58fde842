package ports

import (
	"io"

	"go.trai.ch/bytesum/internal/core/domain"
)

// ReportExporter persists an aggregate in a structured format.
//
//go:generate go run go.uber.org/mock/mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type ReportExporter interface {
	// Export writes agg to w in the given format.
	Export(w io.Writer, agg *domain.Aggregate, format domain.ReportFormat) error

	// WriteFile writes agg to the file at path, creating or truncating it.
	// An empty path selects domain.DefaultReportPath.
	WriteFile(path string, agg *domain.Aggregate, format domain.ReportFormat) error
}
