package archive

import (
	"context"
	"errors"
)

var ErrEmptyName = errors.New("archive: empty file name")

// Store persists a downloaded export and reports where it ended up.
type Store interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// Options selects and configures a Store. A non-empty Bucket selects S3.
type Options struct {
	Dir       string
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// New returns an S3Store when opts.Bucket is set and a FileStore otherwise.
func New(ctx context.Context, opts Options) (Store, error) {
	if opts.Bucket != "" {
		return NewS3Store(ctx, opts)
	}
	return NewFileStore(opts.Dir), nil
}
