package s3client

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{
			name:       "object at bucket root",
			uri:        "s3://artifacts/dist.zip",
			wantBucket: "artifacts",
			wantKey:    "dist.zip",
		},
		{
			name:       "nested key",
			uri:        "s3://artifacts/releases/v1.2.3/dist.zip",
			wantBucket: "artifacts",
			wantKey:    "releases/v1.2.3/dist.zip",
		},
		{
			name:    "missing scheme",
			uri:     "artifacts/dist.zip",
			wantErr: true,
		},
		{
			name:    "missing bucket",
			uri:     "s3:///dist.zip",
			wantErr: true,
		},
		{
			name:    "bucket only",
			uri:     "s3://artifacts",
			wantErr: true,
		},
		{
			name:    "prefix instead of object",
			uri:     "s3://artifacts/releases/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.uri, FormatS3URI(bucket, key))
		})
	}
}

func TestIsS3URI(t *testing.T) {
	assert.True(t, IsS3URI("s3://bucket/key"))
	assert.False(t, IsS3URI("./s3:/bucket/key"))
	assert.False(t, IsS3URI("/tmp/dist.zip"))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{
			name:   "missing key",
			err:    fmt.Errorf("failed to get object: %w", &smithy.GenericAPIError{Code: "NoSuchKey"}),
			wantIs: fs.ErrNotExist,
		},
		{
			name:   "head not found",
			err:    &smithy.GenericAPIError{Code: "NotFound"},
			wantIs: fs.ErrNotExist,
		},
		{
			name:   "access denied",
			err:    &smithy.GenericAPIError{Code: "AccessDenied"},
			wantIs: fs.ErrPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError("bucket", "dist.zip", tt.err)
			assert.ErrorIs(t, got, tt.wantIs)
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "s3://bucket/dist.zip")
		})
	}

	plain := errors.New("connection reset")
	assert.Equal(t, plain, classifyError("bucket", "key", plain))

	throttled := &smithy.GenericAPIError{Code: "SlowDown"}
	assert.Equal(t, error(throttled), classifyError("bucket", "key", throttled))
}
