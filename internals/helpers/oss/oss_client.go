// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Client wraps one OSS bucket. Paths are opaque keys; PublicURL resolves
// a key to the CDN/base URL the frontend can render directly.
type Client struct {
	bucket  *alioss.Bucket
	baseURL string
}

var (
	defaultClient *Client
	defaultErr    error
	once          sync.Once
)

// Default returns the process-wide client built from env:
// OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET,
// OSS_PUBLIC_BASE_URL (optional, defaults to the bucket endpoint URL).
func Default() (*Client, error) {
	once.Do(func() {
		defaultClient, defaultErr = NewClientFromEnv()
	})
	return defaultClient, defaultErr
}

func NewClientFromEnv() (*Client, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET must be set")
	}

	cli, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss: new client: %w", err)
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss: open bucket %q: %w", bucketName, err)
	}

	base := strings.TrimSpace(os.Getenv("OSS_PUBLIC_BASE_URL"))
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}
	return &Client{bucket: bucket, baseURL: strings.TrimRight(base, "/")}, nil
}

// UploadBytes stores data under key with a long public cache, returns the
// public URL.
func (c *Client) UploadBytes(key string, data []byte, contentType string) (string, error) {
	opts := []alioss.Option{
		alioss.ContentType(contentType),
		alioss.CacheControl("public, max-age=31536000"),
	}
	if err := c.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("oss: put %q: %w", key, err)
	}
	return c.PublicURL(key), nil
}

func (c *Client) PublicURL(key string) string {
	return c.baseURL + "/" + strings.TrimLeft(key, "/")
}

// Delete removes a key; missing keys are not an error on OSS.
func (c *Client) Delete(key string) error {
	if err := c.bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("oss: delete %q: %w", key, err)
	}
	return nil
}
