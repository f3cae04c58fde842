package ports

import "context"

// FileScanner enumerates the regular files below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type FileScanner interface {
	// ListFiles returns the paths of every regular file below root, recursively.
	// The order of the returned paths is unspecified.
	ListFiles(ctx context.Context, root string) ([]string, error)
}
