package progrock

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/bytesum/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/protobuf/encoding/protojson"
)

// JournalWriter is a progrock.Writer that appends every status update to w
// as one line of protobuf JSON.
type JournalWriter struct {
	mu sync.Mutex
	w  io.WriteCloser
}

var _ progrock.Writer = (*JournalWriter)(nil)

// NewJournalWriter creates a JournalWriter. Closing it closes w.
func NewJournalWriter(w io.WriteCloser) *JournalWriter {
	return &JournalWriter{w: w}
}

// WriteStatus appends update to the journal.
func (j *JournalWriter) WriteStatus(update *progrock.StatusUpdate) error {
	data, err := protojson.Marshal(update)
	if err != nil {
		return zerr.Wrap(err, "failed to encode status update")
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, err := j.w.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write journal")
	}
	return nil
}

// Close closes the underlying writer.
func (j *JournalWriter) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.w.Close()
}

// Opener implements ports.JournalOpener with journal files.
type Opener struct{}

var _ ports.JournalOpener = Opener{}

// Open creates the journal file at path and returns a Recorder writing to it.
func (Opener) Open(path string) (ports.ProgressJournal, error) {
	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create journal directory"), "path", path)
		}
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.Create(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create journal"), "path", path)
	}
	return NewRecorder(NewJournalWriter(f)), nil
}
