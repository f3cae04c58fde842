// Package dispatcher fans checksum work out over the files of a directory tree.
package dispatcher

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"

	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Dispatcher runs scan sessions: it enumerates a directory, computes the checksum of every file
// concurrently and collects the successful results into an aggregate.
// A Dispatcher runs at most one scan at a time.
type Dispatcher struct {
	scanner ports.FileScanner
	summer  ports.Checksummer
	tracer  ports.Tracer
	logger  ports.Logger

	mu      sync.Mutex
	phase   domain.ScanPhase
	session *session
}

// New creates a Dispatcher. tracer and logger may be nil.
func New(
	scanner ports.FileScanner,
	summer ports.Checksummer,
	tracer ports.Tracer,
	logger ports.Logger,
) *Dispatcher {
	if tracer == nil {
		tracer = nopTracer{}
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Dispatcher{
		scanner: scanner,
		summer:  summer,
		tracer:  tracer,
		logger:  logger,
	}
}

// ScanOption configures a single call to Scan.
type ScanOption func(*scanOptions)

type scanOptions struct {
	listeners   []ports.ProgressListener
	concurrency int
}

// WithListener subscribes l to the progress events of the scan. It may be given more than once.
func WithListener(l ports.ProgressListener) ScanOption {
	return func(o *scanOptions) {
		if l != nil {
			o.listeners = append(o.listeners, l)
		}
	}
}

// WithConcurrency caps the number of files processed at the same time.
// n <= 0 schedules every file at once.
func WithConcurrency(n int) ScanOption {
	return func(o *scanOptions) {
		o.concurrency = n
	}
}

// session is the state shared by every unit of work of one scan.
type session struct {
	canceler  *domain.Canceler
	processed atomic.Int64
	agg       *domain.Aggregate
	listeners []ports.ProgressListener
}

func (s *session) emit(ev domain.Event) {
	for _, l := range s.listeners {
		l.OnEvent(ev)
	}
}

// Scan enumerates root, checksums every regular file below it and returns the successful results.
//
// It blocks until every unit of work has finished. Enumeration errors abort the scan and are
// returned unmodified. Per-file errors are reported as failed FileProcessed events and never abort
// the scan. Files whose computation observes cancellation produce no event and are left out of the
// aggregate; a cancelled scan still returns the aggregate of the files that completed.
func (d *Dispatcher) Scan(ctx context.Context, root string, opts ...ScanOption) (*domain.Aggregate, error) {
	var o scanOptions
	for _, opt := range opts {
		opt(&o)
	}

	s, err := d.begin(o.listeners)
	if err != nil {
		return nil, err
	}
	defer d.end()

	stop := s.canceler.BindContext(ctx)
	defer stop()

	ctx, span := d.tracer.Start(ctx, "scan", ports.WithAttribute("root", root))
	defer span.End()

	d.logger.Info("scanning " + root)

	files, err := d.scanner.ListFiles(ctx, root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	total := int64(len(files))
	span.SetAttribute("files.total", total)
	s.emit(domain.TotalCountKnown{Root: root, Count: total})

	d.setPhase(domain.PhaseDispatching)

	g := new(errgroup.Group)
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}
	for _, path := range files {
		g.Go(func() error {
			d.process(s, path)
			return nil
		})
	}

	d.setPhase(domain.PhaseJoining)
	_ = g.Wait()

	processed := s.processed.Load()
	span.SetAttribute("files.processed", processed)
	if s.canceler.Canceled() {
		span.SetAttribute("canceled", true)
		d.logger.Warn("scan of " + root + " canceled after " + strconv.FormatInt(processed, 10) + " files")
	} else {
		d.logger.Info("scanned " + strconv.FormatInt(processed, 10) + " files in " + root)
	}

	return s.agg, nil
}

// process is one unit of work.
func (d *Dispatcher) process(s *session, path string) {
	sum, err := d.summer.SumFile(path, s.canceler)
	switch {
	case err == nil:
		result := domain.ChecksumResult{Path: path, Checksum: sum}
		s.agg.Add(result)
		seq := s.processed.Add(1)
		s.emit(domain.FileProcessed{Outcome: domain.NewSuccess(result, seq)})
	case errors.Is(err, domain.ErrOperationCanceled):
		return
	default:
		seq := s.processed.Add(1)
		d.logger.Warn("failed to checksum " + path + ": " + err.Error())
		s.emit(domain.FileProcessed{Outcome: domain.NewFailure(path, err, seq)})
	}
}

// Cancel signals the active scan to stop. Units already finished keep their results; units in flight
// abort at their next checkpoint. Without an active scan Cancel does nothing.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session != nil {
		d.session.canceler.Cancel()
	}
}

// Phase returns the lifecycle state of the current or last scan.
func (d *Dispatcher) Phase() domain.ScanPhase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

func (d *Dispatcher) begin(listeners []ports.ProgressListener) (*session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.phase.IsActive() {
		return nil, domain.ErrScanInProgress
	}

	d.session = &session{
		canceler:  domain.NewCanceler(),
		agg:       domain.NewAggregate(),
		listeners: listeners,
	}
	d.phase = domain.PhaseScanning
	return d.session, nil
}

func (d *Dispatcher) setPhase(p domain.ScanPhase) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phase = p
}

func (d *Dispatcher) end() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session = nil
	d.phase = domain.PhaseFinished
}
