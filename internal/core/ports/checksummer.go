// Package ports defines the core interfaces for the application.
package ports

import (
	"io"

	"go.trai.ch/bytesum/internal/core/domain"
)

// Checksummer computes the exact byte sum of a file.
//
//go:generate go run go.uber.org/mock/mockgen -source=checksummer.go -destination=mocks/mock_checksummer.go -package=mocks
type Checksummer interface {
	// SumFile returns the sum of all bytes of the file at path.
	// It returns domain.ErrOperationCanceled if sig is set before the file has been fully consumed.
	SumFile(path string, sig domain.Signal) (uint64, error)

	// SumReader returns the sum of all bytes of r, starting from offset zero.
	SumReader(r io.ReadSeeker, sig domain.Signal) (uint64, error)
}
