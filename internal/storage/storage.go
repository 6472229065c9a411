package storage

import (
	"context"
	"io"
)

// Scratch is request-scoped file storage for uploaded models. Files live
// for one request: save, analyze, remove.
type Scratch interface {
	// Save writes the stream under a unique name derived from the client
	// file name and returns the absolute path.
	Save(ctx context.Context, fileName string, reader io.Reader) (string, error)

	// Remove deletes a previously saved file. Removing a missing file is
	// not an error.
	Remove(ctx context.Context, path string) error
}
