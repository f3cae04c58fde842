// Package console renders scan progress as plain text lines.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
)

// Printer implements ports.ProgressListener by writing one line per processed file:
//
//	<seq>/<total> <path> : <sum>
//
// Failed files are only printed when the printer is verbose.
type Printer struct {
	mu      sync.Mutex
	w       io.Writer
	total   int64
	verbose bool
}

var _ ports.ProgressListener = (*Printer)(nil)

// NewPrinter creates a Printer writing to w. A nil writer selects stdout.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w, verbose: verbose}
}

// OnEvent prints ev.
func (p *Printer) OnEvent(ev domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e := ev.(type) {
	case domain.TotalCountKnown:
		p.total = e.Count
		if p.verbose {
			_, _ = fmt.Fprintf(p.w, "found %d files in %s\n", e.Count, e.Root)
		}
	case domain.FileProcessed:
		o := e.Outcome
		if o.Succeeded {
			_, _ = fmt.Fprintf(p.w, "%d/%d %s\n", o.Sequence, p.total, o.Result)
			return
		}
		if p.verbose {
			_, _ = fmt.Fprintf(p.w, "%d/%d %s : error: %s\n", o.Sequence, p.total, o.Path(), o.Message)
		}
	}
}
