package s3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPut struct {
	method      string
	path        string
	contentType string
	acl         string
	body        string
}

func newTestPublisher(t *testing.T, status int) (*Publisher, <-chan capturedPut) {
	t.Helper()

	puts := make(chan capturedPut, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		puts <- capturedPut{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			acl:         r.Header.Get("X-Amz-Acl"),
			body:        string(body),
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	publisher, err := NewPublisher(Config{
		Endpoint:      server.URL,
		Region:        "us-east-1",
		AccessKey:     "AKIDEXAMPLE",
		SecretKey:     "secret",
		Bucket:        "media",
		PublicBaseURL: "https://cdn.example.com/",
		UsePathStyle:  true,
	})
	require.NoError(t, err)
	publisher.now = func() time.Time { return time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC) }
	publisher.newID = func() string { return "fixed-id" }
	return publisher, puts
}

func TestNewPublisherRequiresConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "bucket", cfg: Config{}, want: "s3 bucket is required"},
		{name: "region", cfg: Config{Bucket: "b"}, want: "s3 region is required"},
		{name: "credentials", cfg: Config{Bucket: "b", Region: "r"}, want: "s3 credentials are required"},
		{name: "public url", cfg: Config{Bucket: "b", Region: "r", AccessKey: "a", SecretKey: "s"}, want: "s3 public base url is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPublisher(tt.cfg)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestPublishUploadsPublicObject(t *testing.T) {
	publisher, puts := newTestPublisher(t, http.StatusOK)

	url, err := publisher.Publish(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/dream-ai/2026/03/07/fixed-id.png", url)

	put := <-puts
	assert.Equal(t, http.MethodPut, put.method)
	assert.Equal(t, "/media/dream-ai/2026/03/07/fixed-id.png", put.path)
	assert.Equal(t, "image/png", put.contentType)
	assert.Equal(t, "public-read", put.acl)
	assert.Contains(t, put.body, "png-bytes")
}

func TestPublishRejectsEmptyData(t *testing.T) {
	publisher, _ := newTestPublisher(t, http.StatusOK)

	_, err := publisher.Publish(context.Background(), nil, "image/png")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".mp4", extensionFor("video/mp4"))
	assert.Equal(t, ".jpg", extensionFor("IMAGE/JPEG"))
	assert.Equal(t, ".bin", extensionFor("application/octet-stream"))
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Bucket: "media"}.Enabled())
}
