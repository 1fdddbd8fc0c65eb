package application

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var actionsNow = time.UnixMilli(1760000000123)

func newTestMediaActions(t *testing.T, dir string, clipboard *mocks.MockClipboard, publisher *mocks.MockPublisher, notifier *mocks.MockNotifier) *MediaActions {
	t.Helper()
	actions := NewMediaActions(dir, nil, nil, nil, notifier, fixedClock{now: actionsNow}, quietLogger())
	if clipboard != nil {
		actions.clipboard = clipboard
	}
	if publisher != nil {
		actions.publisher = publisher
	}
	return actions
}

func TestDownloadFilename(t *testing.T) {
	assert.Equal(t, "dream-ai-image-1760000000123.png", DownloadFilename(domain.MediaTypeImage, 1760000000123))
	assert.Equal(t, "dream-ai-video-42.mp4", DownloadFilename(domain.MediaTypeVideo, 42))
}

func TestMediaActionsDownloadDataURL(t *testing.T) {
	dir := t.TempDir()
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Success("Image downloaded!").Once()

	actions := newTestMediaActions(t, dir, nil, nil, notifier)
	result, err := actions.Download(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: "data:image/png;base64,aGVsbG8="})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "dream-ai-image-1760000000123.png"), result.Path)
	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestMediaActionsDownloadRemoteURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("mp4-bytes"))
	}))
	defer server.Close()

	dir := t.TempDir()
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Success("Video downloaded!").Once()

	actions := newTestMediaActions(t, dir, nil, nil, notifier)
	result, err := actions.Download(context.Background(), domain.MediaData{Type: domain.MediaTypeVideo, URL: server.URL + "/v.mp4"})
	require.NoError(t, err)
	assert.Equal(t, int64(len("mp4-bytes")), result.Size)
	assert.Equal(t, "dream-ai-video-1760000000123.mp4", filepath.Base(result.Path))
}

func TestMediaActionsDownloadFailureNotifiesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Error("Failed to download image").Once()

	actions := newTestMediaActions(t, t.TempDir(), nil, nil, notifier)
	_, err := actions.Download(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: server.URL})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestMediaActionsShareDataURLIsNoOpSuccess(t *testing.T) {
	clipboard := mocks.NewMockClipboard(t)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Success("Image shared!").Once()

	actions := newTestMediaActions(t, t.TempDir(), clipboard, nil, notifier)
	result, err := actions.Share(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	assert.False(t, result.Copied)
	assert.Equal(t, ShareAdviceDataURL, result.Advice)
}

func TestMediaActionsShareCopiesURL(t *testing.T) {
	clipboard := mocks.NewMockClipboard(t)
	notifier := mocks.NewMockNotifier(t)
	clipboard.EXPECT().WriteAll("https://x/y.png").Return(nil).Once()
	notifier.EXPECT().Success("Image shared!").Once()

	actions := newTestMediaActions(t, t.TempDir(), clipboard, nil, notifier)
	result, err := actions.Share(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: "https://x/y.png"})
	require.NoError(t, err)
	assert.True(t, result.Copied)
}

func TestMediaActionsShareFailureDoesNotAffectDownload(t *testing.T) {
	clipboard := mocks.NewMockClipboard(t)
	notifier := mocks.NewMockNotifier(t)
	clipboard.EXPECT().WriteAll("data-free-url").Return(errors.New("no display")).Once()
	notifier.EXPECT().Error("Failed to share image").Once()
	notifier.EXPECT().Success("Image downloaded!").Once()

	actions := newTestMediaActions(t, t.TempDir(), clipboard, nil, notifier)
	_, err := actions.Share(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: "data-free-url"})
	require.Error(t, err)

	_, err = actions.Download(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: "data:image/png;base64,aGVsbG8="})
	require.NoError(t, err)
}

func TestMediaActionsPostToPublishes(t *testing.T) {
	publisher := mocks.NewMockPublisher(t)
	notifier := mocks.NewMockNotifier(t)
	publisher.EXPECT().Publish(mockAnyContext(), []byte("hello"), "image/png").Return("https://cdn.example.com/a.png", nil).Once()
	notifier.EXPECT().Success("Ready to post image!").Once()

	actions := newTestMediaActions(t, t.TempDir(), nil, publisher, notifier)
	result, err := actions.PostTo(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: "data:image/png;base64,aGVsbG8="}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPostPlatforms, result.Platforms)
	assert.Equal(t, "https://cdn.example.com/a.png", result.PublicURL)
	assert.FileExists(t, result.Download.Path)
}

func TestMediaActionsPostToWithoutPublisherOnlyDownloads(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Success("Ready to post video!").Once()

	actions := newTestMediaActions(t, t.TempDir(), nil, nil, notifier)
	result, err := actions.PostTo(context.Background(), domain.MediaData{Type: domain.MediaTypeVideo, URL: "data:video/mp4;base64,aGVsbG8="}, []string{"twitter"})
	require.NoError(t, err)
	assert.Empty(t, result.PublicURL)
	assert.Equal(t, []string{"twitter"}, result.Platforms)
}

func TestMediaActionsPostToFailsWhenDownloadFails(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Error("Failed to prepare image for posting").Once()

	actions := newTestMediaActions(t, t.TempDir(), nil, nil, notifier)
	_, err := actions.PostTo(context.Background(), domain.MediaData{Type: domain.MediaTypeImage, URL: "data:image/png;base64,%%%"}, nil)
	require.Error(t, err)
}
