package s3client

import (
	"context"
	"io"
)

type Client interface {
	Download(ctx context.Context, req *DownloadRequest, w io.WriterAt) (int64, error)
	GetObject(ctx context.Context, req *GetObjectRequest) (io.ReadCloser, error)
}

type DownloadRequest struct {
	Bucket string
	Key    string
}

type GetObjectRequest struct {
	Bucket string
	Key    string
}
