// Package app implements the application layer for bytesum.
package app

import (
	"context"

	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
	"go.trai.ch/bytesum/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// bufferSizer is implemented by checksum engines with a configurable read buffer.
type bufferSizer interface {
	SetBufferSize(n int)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	dispatcher   *dispatcher.Dispatcher
	summer       ports.Checksummer
	exporter     ports.ReportExporter
	journals     ports.JournalOpener
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	disp *dispatcher.Dispatcher,
	summer ports.Checksummer,
	exporter ports.ReportExporter,
	journals ports.JournalOpener,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		dispatcher:   disp,
		summer:       summer,
		exporter:     exporter,
		journals:     journals,
		logger:       logger,
	}
}

// ScanOptions holds the per-invocation settings of a scan.
// Zero values defer to the configuration file.
type ScanOptions struct {
	ConfigPath string
	// Concurrency overrides the configured limit when non-nil.
	Concurrency *int
	ReportPath  string
	Format      string
	// NoReport skips writing the report file.
	NoReport bool
	// JournalPath, when set, records the progress of the scan to that file.
	JournalPath string
	Listeners   []ports.ProgressListener
}

// ScanResult is what a finished scan produced.
type ScanResult struct {
	Aggregate  *domain.Aggregate
	ReportPath string
	Format     domain.ReportFormat
}

// Scan loads the configuration, scans root and exports the report.
func (a *App) Scan(ctx context.Context, root string, opts ScanOptions) (*ScanResult, error) {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	if sizer, ok := a.summer.(bufferSizer); ok {
		sizer.SetBufferSize(cfg.BufferSize)
	}

	scanOpts := []dispatcher.ScanOption{dispatcher.WithConcurrency(cfg.Concurrency)}
	for _, l := range opts.Listeners {
		scanOpts = append(scanOpts, dispatcher.WithListener(l))
	}

	if opts.JournalPath != "" {
		// Opening truncates the journal, so a scan that would be rejected must not get that far.
		if a.dispatcher.Phase().IsActive() {
			return nil, zerr.With(zerr.Wrap(domain.ErrScanInProgress, "scan failed"), "root", root)
		}
		journal, err := a.journals.Open(opts.JournalPath)
		if err != nil {
			return nil, err
		}
		defer func() {
			if cerr := journal.Close(); cerr != nil {
				a.logger.Error(zerr.Wrap(cerr, "failed to close journal"))
			}
		}()
		scanOpts = append(scanOpts, dispatcher.WithListener(journal))
	}

	agg, err := a.dispatcher.Scan(ctx, root, scanOpts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "scan failed"), "root", root)
	}

	result := &ScanResult{
		Aggregate:  agg,
		ReportPath: cfg.Report.Path,
		Format:     cfg.Report.Format,
	}
	if opts.NoReport {
		return result, nil
	}

	if err := a.exporter.WriteFile(cfg.Report.Path, agg, cfg.Report.Format); err != nil {
		return nil, zerr.Wrap(err, "failed to export report")
	}
	a.logger.Info("report written to " + cfg.Report.Path)

	return result, nil
}

// Cancel stops the scan in progress, if any.
func (a *App) Cancel() {
	a.dispatcher.Cancel()
}

func (a *App) resolveConfig(opts ScanOptions) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Concurrency != nil {
		cfg.Concurrency = *opts.Concurrency
	}
	if opts.ReportPath != "" {
		cfg.Report.Path = opts.ReportPath
	}
	if opts.Format != "" {
		format, err := domain.ParseReportFormat(opts.Format)
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
