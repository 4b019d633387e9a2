package source

import (
	"context"
	"fmt"
	"io"

	"github.com/yuya-takeyama/check-zip-manifest/pkg/s3client"
)

// mockS3Client is a mock implementation of s3client.Client for testing
type mockS3Client struct {
	downloadFunc  func(ctx context.Context, req *s3client.DownloadRequest, w io.WriterAt) (int64, error)
	getObjectFunc func(ctx context.Context, req *s3client.GetObjectRequest) (io.ReadCloser, error)
}

func (m *mockS3Client) Download(ctx context.Context, req *s3client.DownloadRequest, w io.WriterAt) (int64, error) {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, req, w)
	}
	return 0, fmt.Errorf("Download not implemented")
}

func (m *mockS3Client) GetObject(ctx context.Context, req *s3client.GetObjectRequest) (io.ReadCloser, error) {
	if m.getObjectFunc != nil {
		return m.getObjectFunc(ctx, req)
	}
	return nil, fmt.Errorf("GetObject not implemented")
}
