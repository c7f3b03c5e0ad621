package repositories

import "context"

// FileScanner walks a directory tree collecting files whose name matches a glob.
type FileScanner interface {
	// Scan returns every file under root matching glob, in walk order. It fails
	// with entities.ErrNotFound when root does not exist.
	Scan(ctx context.Context, root, glob string, exclude []string) ([]string, error)

	// FindFirst returns the first file directly inside dir matching glob, or ""
	// when there is none.
	FindFirst(dir, glob string) (string, error)
}
