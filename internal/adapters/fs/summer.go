package fs

import (
	"io"
	"math/bits"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
)

var _ ports.Checksummer = (*Summer)(nil)

// Summer computes the exact sum of all byte values of a file.
type Summer struct {
	bufferSize atomic.Int64
	pool       sync.Pool
}

// NewSummer creates a Summer that reads in chunks of domain.DefaultBufferSize bytes.
func NewSummer() *Summer {
	s := &Summer{}
	s.SetBufferSize(domain.DefaultBufferSize)
	return s
}

// SetBufferSize changes the read chunk size. Values below one are ignored.
// The cancellation signal is consulted once per chunk.
func (s *Summer) SetBufferSize(n int) {
	if n < 1 {
		return
	}
	s.bufferSize.Store(int64(n))
}

// SumFile returns the sum of the bytes of the file at path.
// Errors from opening or reading the file are returned as reported by the operating system.
func (s *Summer) SumFile(path string, sig domain.Signal) (uint64, error) {
	if strings.TrimSpace(path) == "" {
		return 0, domain.ErrInvalidArgument
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from the directory walker or the caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Read-only file

	return s.SumReader(f, sig)
}

// SumReader returns the sum of the bytes of r, rewinding it to offset zero first.
func (s *Summer) SumReader(r io.ReadSeeker, sig domain.Signal) (uint64, error) {
	if r == nil {
		return 0, domain.ErrInvalidArgument
	}
	if sig == nil {
		sig = domain.NeverCanceled
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	buf := s.buffer()
	defer s.pool.Put(buf)

	var sum uint64
	for {
		n, readErr := r.Read(*buf)
		if n > 0 {
			if sig.Canceled() {
				return 0, domain.ErrOperationCanceled
			}
			var err error
			if sum, err = accumulate(sum, (*buf)[:n]); err != nil {
				return 0, err
			}
		}
		if readErr == io.EOF {
			return sum, nil
		}
		if readErr != nil {
			return 0, readErr
		}
	}
}

func (s *Summer) buffer() *[]byte {
	size := int(s.bufferSize.Load())
	if b, ok := s.pool.Get().(*[]byte); ok && len(*b) == size {
		return b
	}
	b := make([]byte, size)
	return &b
}

// accumulate adds the bytes of p to sum, failing instead of wrapping around.
// The per-chunk total cannot wrap itself: a buffer would need more than 2^56 bytes.
func accumulate(sum uint64, p []byte) (uint64, error) {
	var chunk uint64
	for _, b := range p {
		chunk += uint64(b)
	}
	total, carry := bits.Add64(sum, chunk, 0)
	if carry != 0 {
		return 0, domain.ErrArithmeticOverflow
	}
	return total, nil
}
