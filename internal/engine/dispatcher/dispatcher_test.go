package dispatcher_test

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bytesum/internal/adapters/fs"
	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
	"go.trai.ch/bytesum/internal/core/ports/mocks"
	"go.trai.ch/bytesum/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

// eventLog is a ProgressListener that keeps every event it receives.
type eventLog struct {
	mu     sync.Mutex
	events []domain.Event
}

func (l *eventLog) OnEvent(ev domain.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) snapshot() []domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Event(nil), l.events...)
}

func (l *eventLog) outcomes() []domain.Outcome {
	var out []domain.Outcome
	for _, ev := range l.snapshot() {
		if fp, ok := ev.(domain.FileProcessed); ok {
			out = append(out, fp.Outcome)
		}
	}
	return out
}

// scannerFunc adapts a function to ports.FileScanner.
type scannerFunc func(ctx context.Context, root string) ([]string, error)

func (f scannerFunc) ListFiles(ctx context.Context, root string) ([]string, error) {
	return f(ctx, root)
}

// waitCanceled blocks until sig is latched.
func waitCanceled(sig domain.Signal) {
	<-sig.(interface{ Done() <-chan struct{} }).Done()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestDispatcher_Scan_SuccessAndFailure(t *testing.T) {
	root := t.TempDir()
	pathA := filepath.Join(root, "a")
	pathB := filepath.Join(root, "b")
	pathC := filepath.Join(root, "c")

	dataB := []byte{3, 14, 15, 92, 65, 35, 89, 79, 32, 38}
	var sumB uint64
	for _, b := range dataB {
		sumB += uint64(b)
	}

	writeFile(t, pathA, nil)
	writeFile(t, pathB, dataB)
	writeFile(t, pathC, []byte("gone before it is read"))

	walker := fs.NewWalker(nil)
	// c disappears between discovery and reading.
	scanner := scannerFunc(func(ctx context.Context, dir string) ([]string, error) {
		files, err := walker.ListFiles(ctx, dir)
		if err != nil {
			return nil, err
		}
		return files, os.Remove(pathC)
	})

	log := &eventLog{}
	d := dispatcher.New(scanner, fs.NewSummer(), nil, nil)

	agg, err := d.Scan(context.Background(), root, dispatcher.WithListener(log))
	require.NoError(t, err)

	events := log.snapshot()
	require.Len(t, events, 4)
	assert.Equal(t, domain.TotalCountKnown{Root: root, Count: 3}, events[0])

	byPath := make(map[string]domain.Outcome)
	for _, o := range log.outcomes() {
		byPath[o.Path()] = o
	}
	require.Len(t, byPath, 3)

	assert.True(t, byPath[pathA].Succeeded)
	assert.Equal(t, uint64(0), byPath[pathA].Result.Checksum)
	assert.True(t, byPath[pathB].Succeeded)
	assert.Equal(t, sumB, byPath[pathB].Result.Checksum)
	assert.False(t, byPath[pathC].Succeeded)
	assert.ErrorIs(t, byPath[pathC].Err, iofs.ErrNotExist)
	assert.NotEmpty(t, byPath[pathC].Message)

	assert.Equal(t, 2, agg.Len())
	assert.True(t, agg.Contains(pathA))
	assert.True(t, agg.Contains(pathB))
	assert.False(t, agg.Contains(pathC))
	assert.Equal(t, domain.PhaseFinished, d.Phase())
}

func TestDispatcher_Scan_SequenceNumbersAreUnique(t *testing.T) {
	root := t.TempDir()
	const n = 200
	for i := range n {
		writeFile(t, filepath.Join(root, "f"+strconv.Itoa(i)), []byte{byte(i)})
	}

	for _, concurrency := range []int{0, 1, 8} {
		t.Run("concurrency "+strconv.Itoa(concurrency), func(t *testing.T) {
			log := &eventLog{}
			d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)

			agg, err := d.Scan(context.Background(), root,
				dispatcher.WithListener(log),
				dispatcher.WithConcurrency(concurrency),
			)
			require.NoError(t, err)
			assert.Equal(t, n, agg.Len())

			outcomes := log.outcomes()
			require.Len(t, outcomes, n)

			seen := make(map[int64]bool, n)
			for _, o := range outcomes {
				assert.False(t, seen[o.Sequence], "duplicate sequence %d", o.Sequence)
				seen[o.Sequence] = true
			}
			for i := int64(1); i <= n; i++ {
				assert.True(t, seen[i], "missing sequence %d", i)
			}
		})
	}
}

func TestDispatcher_Scan_TotalCountComesFirstAndOnce(t *testing.T) {
	root := t.TempDir()
	for i := range 20 {
		writeFile(t, filepath.Join(root, "f"+strconv.Itoa(i)), []byte("x"))
	}

	log := &eventLog{}
	d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)
	_, err := d.Scan(context.Background(), root, dispatcher.WithListener(log))
	require.NoError(t, err)

	events := log.snapshot()
	require.NotEmpty(t, events)
	assert.IsType(t, domain.TotalCountKnown{}, events[0])

	totals := 0
	for _, ev := range events {
		if _, ok := ev.(domain.TotalCountKnown); ok {
			totals++
		}
	}
	assert.Equal(t, 1, totals)
}

func TestDispatcher_Scan_MultipleListeners(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), []byte{1, 2, 3})

	first, second := &eventLog{}, &eventLog{}
	var funcCalls atomic.Int64

	d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)
	_, err := d.Scan(context.Background(), root,
		dispatcher.WithListener(first),
		dispatcher.WithListener(second),
		dispatcher.WithListener(ports.ListenerFunc(func(domain.Event) { funcCalls.Add(1) })),
		dispatcher.WithListener(nil),
	)
	require.NoError(t, err)

	assert.Len(t, first.snapshot(), 2)
	assert.Equal(t, first.snapshot(), second.snapshot())
	assert.Equal(t, int64(2), funcCalls.Load())
}

func TestDispatcher_Scan_ChannelListener(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), []byte{200, 100})

	ch := make(chan domain.Event)
	var received []domain.Event
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range ch {
			received = append(received, ev)
		}
	}()

	d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)
	agg, err := d.Scan(context.Background(), root, dispatcher.WithListener(ports.ChannelListener(ch)))
	close(ch)
	<-done

	require.NoError(t, err)
	require.Len(t, received, 2)
	fp, ok := received[1].(domain.FileProcessed)
	require.True(t, ok)
	assert.Equal(t, uint64(300), fp.Outcome.Result.Checksum)
	assert.Equal(t, 1, agg.Len())
}

func TestDispatcher_Scan_SetupErrorAbortsScan(t *testing.T) {
	log := &eventLog{}
	d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)

	agg, err := d.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"), dispatcher.WithListener(log))
	require.Error(t, err)
	require.ErrorIs(t, err, iofs.ErrNotExist)
	assert.Nil(t, agg)
	assert.Empty(t, log.snapshot())
	assert.Equal(t, domain.PhaseFinished, d.Phase())
}

func TestDispatcher_Scan_BlankRoot(t *testing.T) {
	d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)

	_, err := d.Scan(context.Background(), "  ")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDispatcher_Cancel_BeforeUnitsStart(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "empty")
	large := filepath.Join(root, "large")
	writeFile(t, empty, nil)
	writeFile(t, large, make([]byte, 4<<20))

	d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)
	log := &eventLog{}
	cancelOnTotal := ports.ListenerFunc(func(ev domain.Event) {
		if _, ok := ev.(domain.TotalCountKnown); ok {
			d.Cancel()
		}
	})

	agg, err := d.Scan(context.Background(), root,
		dispatcher.WithListener(cancelOnTotal),
		dispatcher.WithListener(log),
	)
	require.NoError(t, err)

	// An empty file never reaches a checkpoint, so it completes regardless.
	assert.True(t, agg.Contains(empty))
	assert.False(t, agg.Contains(large))

	for _, o := range log.outcomes() {
		assert.NotEqual(t, large, o.Path())
	}
}

func TestDispatcher_Cancel_DropsInFlightFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockFileScanner(ctrl)
	summer := mocks.NewMockChecksummer(ctrl)

	files := []string{"/r/tiny1", "/r/tiny2", "/r/tiny3", "/r/huge"}
	scanner.EXPECT().ListFiles(gomock.Any(), "/r").Return(files, nil)
	summer.EXPECT().SumFile(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, sig domain.Signal) (uint64, error) {
		if path == "/r/huge" {
			waitCanceled(sig)
			return 0, domain.ErrOperationCanceled
		}
		return 1, nil
	}).Times(len(files))

	d := dispatcher.New(scanner, summer, nil, nil)

	var succeeded atomic.Int64
	cancelAfterTiny := ports.ListenerFunc(func(ev domain.Event) {
		if fp, ok := ev.(domain.FileProcessed); ok && fp.Outcome.Succeeded {
			if succeeded.Add(1) == 3 {
				d.Cancel()
			}
		}
	})
	log := &eventLog{}

	agg, err := d.Scan(context.Background(), "/r",
		dispatcher.WithListener(cancelAfterTiny),
		dispatcher.WithListener(log),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, agg.Len())
	assert.False(t, agg.Contains("/r/huge"))

	outcomes := log.outcomes()
	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.True(t, o.Succeeded)
		assert.NotEqual(t, "/r/huge", o.Path())
	}
}

func TestDispatcher_Scan_ContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockFileScanner(ctrl)
	summer := mocks.NewMockChecksummer(ctrl)

	scanner.EXPECT().ListFiles(gomock.Any(), "/r").Return([]string{"/r/a", "/r/b"}, nil)
	summer.EXPECT().SumFile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ string, sig domain.Signal) (uint64, error) {
		waitCanceled(sig)
		return 0, domain.ErrOperationCanceled
	}).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cancelOnTotal := ports.ListenerFunc(func(ev domain.Event) {
		if _, ok := ev.(domain.TotalCountKnown); ok {
			cancel()
		}
	})

	d := dispatcher.New(scanner, summer, nil, nil)
	agg, err := d.Scan(ctx, "/r", dispatcher.WithListener(cancelOnTotal))
	require.NoError(t, err)
	assert.Equal(t, 0, agg.Len())
}

func TestDispatcher_Scan_RejectsConcurrentScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockFileScanner(ctrl)
	summer := mocks.NewMockChecksummer(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	scanner.EXPECT().ListFiles(gomock.Any(), "/r").Return([]string{"/r/a"}, nil)
	summer.EXPECT().SumFile("/r/a", gomock.Any()).DoAndReturn(func(string, domain.Signal) (uint64, error) {
		close(started)
		<-release
		return 5, nil
	})

	d := dispatcher.New(scanner, summer, nil, nil)
	assert.Equal(t, domain.PhaseIdle, d.Phase())

	var (
		agg     *domain.Aggregate
		scanErr error
		wg      sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		agg, scanErr = d.Scan(context.Background(), "/r")
	}()

	<-started
	assert.True(t, d.Phase().IsActive())

	_, err := d.Scan(context.Background(), "/r")
	require.ErrorIs(t, err, domain.ErrScanInProgress)

	close(release)
	wg.Wait()

	require.NoError(t, scanErr)
	assert.Equal(t, 1, agg.Len())
	assert.Equal(t, domain.PhaseFinished, d.Phase())
}

func TestDispatcher_Scan_BoundedConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockFileScanner(ctrl)
	summer := mocks.NewMockChecksummer(ctrl)

	files := make([]string, 32)
	for i := range files {
		files[i] = "/r/f" + strconv.Itoa(i)
	}

	var inFlight, peak atomic.Int64
	scanner.EXPECT().ListFiles(gomock.Any(), "/r").Return(files, nil)
	summer.EXPECT().SumFile(gomock.Any(), gomock.Any()).DoAndReturn(func(string, domain.Signal) (uint64, error) {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return 1, nil
	}).Times(len(files))

	d := dispatcher.New(scanner, summer, nil, nil)
	agg, err := d.Scan(context.Background(), "/r", dispatcher.WithConcurrency(3))
	require.NoError(t, err)

	assert.Equal(t, len(files), agg.Len())
	assert.LessOrEqual(t, peak.Load(), int64(3))
}

func TestDispatcher_Scan_TracesAndLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockFileScanner(ctrl)
	summer := mocks.NewMockChecksummer(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	log := mocks.NewMockLogger(ctrl)

	ctx := context.Background()
	tracer.EXPECT().Start(ctx, "scan", gomock.Any()).Return(ctx, span)
	span.EXPECT().SetAttribute("files.total", int64(2))
	span.EXPECT().SetAttribute("files.processed", int64(2))
	span.EXPECT().End()

	scanner.EXPECT().ListFiles(ctx, "/r").Return([]string{"/r/ok", "/r/bad"}, nil)
	summer.EXPECT().SumFile("/r/ok", gomock.Any()).Return(uint64(9), nil)
	summer.EXPECT().SumFile("/r/bad", gomock.Any()).Return(uint64(0), errors.New("permission denied"))

	log.EXPECT().Info("scanning /r")
	log.EXPECT().Warn("failed to checksum /r/bad: permission denied")
	log.EXPECT().Info("scanned 2 files in /r")

	d := dispatcher.New(scanner, summer, tracer, log)
	agg, err := d.Scan(ctx, "/r")
	require.NoError(t, err)

	got, ok := agg.Get("/r/ok")
	require.True(t, ok)
	assert.Equal(t, uint64(9), got.Checksum)
	assert.False(t, agg.Contains("/r/bad"))
}

func TestDispatcher_Scan_RecordsSetupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockFileScanner(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	setupErr := errors.New("root vanished")
	ctx := context.Background()

	tracer.EXPECT().Start(ctx, "scan", gomock.Any()).Return(ctx, span)
	span.EXPECT().RecordError(setupErr)
	span.EXPECT().End()
	scanner.EXPECT().ListFiles(ctx, "/r").Return(nil, setupErr)

	d := dispatcher.New(scanner, mocks.NewMockChecksummer(ctrl), tracer, nil)
	_, err := d.Scan(ctx, "/r")
	require.ErrorIs(t, err, setupErr)
}

func TestDispatcher_Cancel_WithoutSession(t *testing.T) {
	d := dispatcher.New(fs.NewWalker(nil), fs.NewSummer(), nil, nil)
	assert.NotPanics(t, d.Cancel)
	assert.Equal(t, domain.PhaseIdle, d.Phase())

	// A cancel issued between scans does not leak into the next one.
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), []byte{1})
	agg, err := d.Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, agg.Len())
}
