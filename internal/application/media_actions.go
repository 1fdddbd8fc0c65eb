package application

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	ShareAdviceDataURL = "This media is generated locally and cannot be shared directly. Please download it first."
	ShareCopied        = "URL copied to clipboard! You can now paste it to share."
)

var DefaultPostPlatforms = []string{"instagram", "twitter"}

type DownloadResult struct {
	Path string
	Size int64
}

type ShareResult struct {
	Copied bool
	Advice string
}

type PostResult struct {
	Download  DownloadResult
	Platforms []string
	PublicURL string
}

// MediaActions runs the follow-up actions on a generated media. Each action
// reports through the notifier independently.
type MediaActions struct {
	httpClient *http.Client
	clipboard  ports.Clipboard
	publisher  ports.Publisher
	notifier   ports.Notifier
	clock      ports.Clock
	logger     logrus.FieldLogger
	dir        string
}

func NewMediaActions(dir string, httpClient *http.Client, clipboard ports.Clipboard, publisher ports.Publisher, notifier ports.Notifier, clock ports.Clock, logger logrus.FieldLogger) *MediaActions {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &MediaActions{
		httpClient: httpClient,
		clipboard:  clipboard,
		publisher:  publisher,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
		dir:        dir,
	}
}

func DownloadFilename(mediaType domain.MediaType, unixMillis int64) string {
	return fmt.Sprintf("dream-ai-%s-%d.%s", mediaType, unixMillis, mediaType.Extension())
}

func (a *MediaActions) Download(ctx context.Context, media domain.MediaData) (DownloadResult, error) {
	result, _, err := a.download(ctx, media)
	if err != nil {
		a.notifier.Error(fmt.Sprintf("Failed to download %s", media.Type))
		return DownloadResult{}, err
	}
	a.notifier.Success(fmt.Sprintf("%s downloaded!", media.Type.Title()))
	return result, nil
}

func (a *MediaActions) Share(_ context.Context, media domain.MediaData) (ShareResult, error) {
	if strings.HasPrefix(media.URL, "data:") {
		a.notifier.Success(fmt.Sprintf("%s shared!", media.Type.Title()))
		return ShareResult{Advice: ShareAdviceDataURL}, nil
	}

	if a.clipboard == nil {
		a.notifier.Error(fmt.Sprintf("Failed to share %s", media.Type))
		return ShareResult{}, errors.New("share media: clipboard unavailable")
	}
	if err := a.clipboard.WriteAll(media.URL); err != nil {
		a.notifier.Error(fmt.Sprintf("Failed to share %s", media.Type))
		return ShareResult{}, fmt.Errorf("share media: %w", err)
	}

	a.notifier.Success(fmt.Sprintf("%s shared!", media.Type.Title()))
	return ShareResult{Copied: true, Advice: ShareCopied}, nil
}

// PostTo downloads the media and, when a publisher is configured, uploads it
// so the platforms can reference a public URL.
func (a *MediaActions) PostTo(ctx context.Context, media domain.MediaData, platforms []string) (PostResult, error) {
	if len(platforms) == 0 {
		platforms = DefaultPostPlatforms
	}

	download, data, err := a.download(ctx, media)
	if err != nil {
		a.notifier.Error(fmt.Sprintf("Failed to prepare %s for posting", media.Type))
		return PostResult{}, fmt.Errorf("prepare media for posting: %w", err)
	}

	result := PostResult{Download: download, Platforms: platforms}
	if a.publisher != nil {
		publicURL, err := a.publisher.Publish(ctx, data, contentTypeFor(media.Type))
		if err != nil {
			a.notifier.Error(fmt.Sprintf("Failed to prepare %s for posting", media.Type))
			return PostResult{}, fmt.Errorf("publish media: %w", err)
		}
		result.PublicURL = publicURL
	}

	a.logger.WithField("platforms", strings.Join(platforms, ",")).Debug("media prepared for posting")
	a.notifier.Success(fmt.Sprintf("Ready to post %s!", media.Type))
	return result, nil
}

func (a *MediaActions) download(ctx context.Context, media domain.MediaData) (DownloadResult, []byte, error) {
	if media.URL == "" {
		return DownloadResult{}, nil, errors.New("download media: empty url")
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(media.URL, "data:") {
		data, err = decodeDataURL(media.URL)
	} else {
		data, err = a.fetch(ctx, media.URL)
	}
	if err != nil {
		return DownloadResult{}, nil, fmt.Errorf("download media: %w", err)
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return DownloadResult{}, nil, fmt.Errorf("create download directory: %w", err)
	}
	path := filepath.Join(a.dir, DownloadFilename(media.Type, a.clock.Now().UnixMilli()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return DownloadResult{}, nil, fmt.Errorf("write media file: %w", err)
	}

	return DownloadResult{Path: path, Size: int64(len(data))}, data, nil
}

func (a *MediaActions) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func decodeDataURL(raw string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data url")
	}
	if strings.HasSuffix(header, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data url: %w", err)
		}
		return data, nil
	}
	return []byte(payload), nil
}

func contentTypeFor(mediaType domain.MediaType) string {
	if mediaType == domain.MediaTypeVideo {
		return "video/mp4"
	}
	return "image/png"
}
