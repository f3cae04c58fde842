// Package fs provides file system adapters for enumerating and checksumming files.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileScanner = (*Walker)(nil)

// Walker enumerates regular files using a parallel directory walk.
type Walker struct {
	logger ports.Logger
}

// NewWalker creates a new Walker. logger may be nil.
func NewWalker(logger ports.Logger) *Walker {
	return &Walker{logger: logger}
}

// ListFiles returns the absolute paths of all regular files below root.
// Symbolic links are not followed. Directories that cannot be read are skipped.
func (w *Walker) ListFiles(ctx context.Context, root string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, domain.ErrInvalidArgument
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve scan root"), "root", root)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, domain.ErrNotADirectory
	}

	var (
		mu    sync.Mutex
		files []string
	)

	conf := &fastwalk.Config{
		Follow: false,
	}

	// The callback runs concurrently on fastwalk's worker goroutines.
	walkErr := fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		// A non-nil err is a failed directory read reported after the entry itself.
		// fastwalk ends the whole walk on any returned error, SkipDir included.
		if err != nil {
			w.warn("skipping unreadable entry " + path + ": " + err.Error())
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		mu.Lock()
		files = append(files, path)
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, "failed to walk directory"), "root", absRoot)
	}

	return files, nil
}

func (w *Walker) warn(msg string) {
	if w.logger != nil {
		w.logger.Warn(msg)
	}
}
