// Package report exports scan aggregates to structured files.
package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Exporter implements ports.ReportExporter for the XML, JSON and YAML formats.
// Entries are always written sorted by path.
type Exporter struct{}

var _ ports.ReportExporter = (*Exporter)(nil)

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// xmlReport mirrors the document layout of the original tool's report.xml.
type xmlReport struct {
	XMLName xml.Name   `xml:"ArrayOfSumFileInfo"`
	Entries []xmlEntry `xml:"SumFileInfo"`
}

type xmlEntry struct {
	FileName   string `xml:"FileName,attr"`
	SumOfBytes uint64 `xml:"SumOfBytes,attr"`
}

// Document is the JSON and YAML report layout.
type Document struct {
	Count  int     `json:"count" yaml:"count"`
	Digest string  `json:"digest" yaml:"digest"`
	Files  []Entry `json:"files" yaml:"files"`
}

// Entry is a single file of a Document.
type Entry struct {
	Path     string `json:"path" yaml:"path"`
	Checksum uint64 `json:"checksum" yaml:"checksum"`
}

// Export writes agg to w in the given format.
func (e *Exporter) Export(w io.Writer, agg *domain.Aggregate, format domain.ReportFormat) error {
	if w == nil || agg == nil {
		return domain.ErrInvalidArgument
	}

	results := agg.Sorted()

	switch format {
	case domain.ReportFormatXML, "":
		return writeXML(w, results)
	case domain.ReportFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(results)); err != nil {
			return zerr.Wrap(err, "failed to encode json report")
		}
		return nil
	case domain.ReportFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(results)); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownReportFormat, "invalid report format"), "format", string(format))
	}
}

// WriteFile writes agg to path, creating parent directories as needed.
func (e *Exporter) WriteFile(path string, agg *domain.Aggregate, format domain.ReportFormat) (err error) {
	if agg == nil {
		return domain.ErrInvalidArgument
	}
	if path == "" {
		path = domain.DefaultReportPath
	}
	path = filepath.Clean(path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
		}
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, domain.ErrReportWriteFailed.Error()), "path", path)
		}
	}()

	if err := e.Export(f, agg, format); err != nil {
		return zerr.With(err, "path", path)
	}
	return nil
}

func writeXML(w io.Writer, results []domain.ChecksumResult) error {
	doc := xmlReport{Entries: make([]xmlEntry, len(results))}
	for i, r := range results {
		doc.Entries[i] = xmlEntry{FileName: r.Path, SumOfBytes: r.Checksum}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return zerr.Wrap(err, "failed to encode xml report")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, "failed to encode xml report")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return zerr.Wrap(err, "failed to encode xml report")
	}
	return nil
}

func newDocument(results []domain.ChecksumResult) Document {
	doc := Document{
		Count:  len(results),
		Digest: Digest(results),
		Files:  make([]Entry, len(results)),
	}
	for i, r := range results {
		doc.Files[i] = Entry{Path: r.Path, Checksum: r.Checksum}
	}
	return doc
}

// Digest returns the xxhash64 of results as 16 hex digits.
// results must be sorted by path for the digest to be stable.
func Digest(results []domain.ChecksumResult) string {
	h := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, r := range results {
		buf = append(buf[:0], r.Path...)
		buf = append(buf, 0)
		buf = strconv.AppendUint(buf, r.Checksum, 10)
		buf = append(buf, '\n')
		_, _ = h.Write(buf)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
