// Package source opens check inputs that live either on the local
// filesystem or in S3.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yuya-takeyama/check-zip-manifest/pkg/s3client"
)

// ErrNoS3Client is returned when an s3:// location is opened by an Opener
// built without a client.
var ErrNoS3Client = errors.New("no S3 client configured")

type Opener struct {
	client s3client.Client
	logger *slog.Logger
	tmpDir string
}

type Option func(*Opener)

func WithLogger(logger *slog.Logger) Option {
	return func(o *Opener) {
		o.logger = logger
	}
}

// WithTempDir sets where downloaded archives are spooled. Defaults to os.TempDir.
func WithTempDir(dir string) Option {
	return func(o *Opener) {
		o.tmpDir = dir
	}
}

// NewOpener returns an Opener. client may be nil when no s3:// locations
// will be opened.
func NewOpener(client s3client.Client, opts ...Option) *Opener {
	o := &Opener{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// File is a random access input. Close releases the handle and removes any
// spooled download.
type File struct {
	*os.File
	size    int64
	cleanup func() error
}

func (f *File) Size() int64 {
	return f.size
}

func (f *File) Close() error {
	err := f.File.Close()
	if f.cleanup != nil {
		if cerr := f.cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenReader opens location for sequential reading.
func (o *Opener) OpenReader(ctx context.Context, location string) (io.ReadCloser, error) {
	if !s3client.IsS3URI(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	bucket, key, err := o.resolve(location)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("streaming object", "bucket", bucket, "key", key)
	return o.client.GetObject(ctx, &s3client.GetObjectRequest{
		Bucket: bucket,
		Key:    key,
	})
}

// OpenFile opens location for random access. S3 objects are downloaded to a
// temporary file first.
func (o *Opener) OpenFile(ctx context.Context, location string) (*File, error) {
	if !s3client.IsS3URI(location) {
		return openLocal(location)
	}

	bucket, key, err := o.resolve(location)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(o.tmpDir, "check-zip-manifest-*.zip")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	remove := func() error {
		return os.Remove(tmp.Name())
	}

	n, err := o.client.Download(ctx, &s3client.DownloadRequest{
		Bucket: bucket,
		Key:    key,
	}, tmp)
	if err != nil {
		tmp.Close()
		remove()
		return nil, err
	}

	o.logger.Debug("downloaded object", "bucket", bucket, "key", key, "bytes", n, "path", tmp.Name())
	return &File{File: tmp, size: n, cleanup: remove}, nil
}

func (o *Opener) resolve(location string) (bucket, key string, err error) {
	if o.client == nil {
		return "", "", fmt.Errorf("%s: %w", location, ErrNoS3Client)
	}
	return s3client.ParseS3URI(location)
}

func openLocal(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s: is a directory", path)
	}

	return &File{File: f, size: info.Size()}, nil
}

// HasS3Location reports whether any of the locations needs an S3 client.
func HasS3Location(locations ...string) bool {
	for _, location := range locations {
		if s3client.IsS3URI(location) {
			return true
		}
	}
	return false
}
