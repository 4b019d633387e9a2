package s3client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

type AWSClient struct {
	client     *s3.Client
	downloader *manager.Downloader
}

func NewAWSClient(cfg aws.Config) *AWSClient {
	client := s3.NewFromConfig(cfg)
	return &AWSClient{
		client:     client,
		downloader: manager.NewDownloader(client),
	}
}

func (c *AWSClient) Download(ctx context.Context, req *DownloadRequest, w io.WriterAt) (int64, error) {
	n, err := c.downloader.Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(req.Bucket),
		Key:    aws.String(req.Key),
	})
	if err != nil {
		return 0, classifyError(req.Bucket, req.Key, fmt.Errorf("failed to download object: %w", err))
	}

	return n, nil
}

func (c *AWSClient) GetObject(ctx context.Context, req *GetObjectRequest) (io.ReadCloser, error) {
	resp, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(req.Bucket),
		Key:    aws.String(req.Key),
	})
	if err != nil {
		return nil, classifyError(req.Bucket, req.Key, fmt.Errorf("failed to get object: %w", err))
	}

	return resp.Body, nil
}

// classifyError maps S3 error codes onto the fs error kinds so callers can
// treat local and S3 inputs alike.
func classifyError(bucket, key string, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NotFound", "NoSuchBucket":
		return fmt.Errorf("%s: %w: %w", FormatS3URI(bucket, key), fs.ErrNotExist, err)
	case "AccessDenied", "Forbidden":
		return fmt.Errorf("%s: %w: %w", FormatS3URI(bucket, key), fs.ErrPermission, err)
	}
	return err
}
