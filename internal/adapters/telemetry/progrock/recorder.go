// Package progrock records scan progress as a progrock tape.
package progrock

import (
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
)

// Recorder implements ports.ProgressListener by recording one vertex per scan
// and one vertex per processed file.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu    sync.Mutex
	scans map[string]*progrock.VertexRecorder
}

var _ ports.ProgressListener = (*Recorder)(nil)

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:     w,
		rec:   progrock.NewRecorder(w),
		scans: make(map[string]*progrock.VertexRecorder),
	}
}

// OnEvent records ev on the tape.
func (r *Recorder) OnEvent(ev domain.Event) {
	switch e := ev.(type) {
	case domain.TotalCountKnown:
		r.startScan(e)
	case domain.FileProcessed:
		r.recordFile(e.Outcome)
	}
}

func (r *Recorder) startScan(e domain.TotalCountKnown) {
	name := "scan " + e.Root
	v := r.rec.Vertex(digest.FromString(name), name)
	_, _ = v.Stdout().Write([]byte(strconv.FormatInt(e.Count, 10) + " files\n"))

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.scans[e.Root]; ok {
		prev.Done(nil)
	}
	r.scans[e.Root] = v
}

func (r *Recorder) recordFile(o domain.Outcome) {
	path := o.Path()
	v := r.rec.Vertex(digest.FromString(path), path)
	if o.Succeeded {
		_, _ = v.Stdout().Write([]byte(o.Result.String() + "\n"))
		v.Done(nil)
		return
	}
	v.Done(o.Err)
}

// Close completes every open scan vertex and the root group, then closes the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	for root, v := range r.scans {
		v.Done(nil)
		delete(r.scans, root)
	}
	r.mu.Unlock()

	r.rec.Complete()
	return r.rec.Close()
}
