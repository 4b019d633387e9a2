package s3client

import (
	"fmt"
	"strings"
)

const scheme = "s3://"

// IsS3URI reports whether location uses the s3:// scheme.
func IsS3URI(location string) bool {
	return strings.HasPrefix(location, scheme)
}

// ParseS3URI splits an object URI into bucket and key
func ParseS3URI(uri string) (bucket, key string, err error) {
	if !IsS3URI(uri) {
		return "", "", fmt.Errorf("invalid S3 URI: must start with s3://")
	}

	path := strings.TrimPrefix(uri, scheme)
	parts := strings.SplitN(path, "/", 2)

	bucket = parts[0]
	if bucket == "" {
		return "", "", fmt.Errorf("invalid S3 URI: missing bucket name")
	}

	if len(parts) > 1 {
		key = parts[1]
	}
	if key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("invalid S3 URI: %s does not name an object", uri)
	}

	return bucket, key, nil
}

func FormatS3URI(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}
