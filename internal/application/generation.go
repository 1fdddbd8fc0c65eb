package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	GenerationFailedMessage = "Failed to generate media. The subscription plan may be expired"

	DefaultStatusPollInterval = 2 * time.Second

	defaultImageToImageSteps    = 28
	defaultTextToImageSteps     = 4
	defaultImageToVideoSteps    = 30
	defaultImageToImageGuidance = 5
	defaultImageToVideoGuidance = 5
	imageToImageOutputQuality   = 90
	imageToImagePromptStrength  = 0.8
	textToVideoAspectRatio      = "16:9"
)

// GenerationError carries the backend reason behind a failed generation.
type GenerationError struct {
	Type   domain.MediaType
	Reason string
}

func (e *GenerationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("generate %s: failed", e.Type)
	}
	return fmt.Sprintf("generate %s: %s", e.Type, e.Reason)
}

type GenerationOrchestrator struct {
	media        ports.MediaBackend
	history      ports.HistoryRepository
	identity     ports.IdentitySource
	notifier     ports.Notifier
	clock        ports.Clock
	logger       logrus.FieldLogger
	pollInterval time.Duration
	readFile     func(string) ([]byte, error)
}

type OrchestratorOption func(*GenerationOrchestrator)

func WithPollInterval(interval time.Duration) OrchestratorOption {
	return func(o *GenerationOrchestrator) {
		if interval > 0 {
			o.pollInterval = interval
		}
	}
}

func WithHistory(history ports.HistoryRepository) OrchestratorOption {
	return func(o *GenerationOrchestrator) {
		o.history = history
	}
}

func WithOrchestratorLogger(logger logrus.FieldLogger) OrchestratorOption {
	return func(o *GenerationOrchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithClock(clock ports.Clock) OrchestratorOption {
	return func(o *GenerationOrchestrator) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func NewGenerationOrchestrator(media ports.MediaBackend, identity ports.IdentitySource, notifier ports.Notifier, opts ...OrchestratorOption) *GenerationOrchestrator {
	o := &GenerationOrchestrator{
		media:        media,
		identity:     identity,
		notifier:     notifier,
		clock:        ports.SystemClock{},
		logger:       logrus.StandardLogger(),
		pollInterval: DefaultStatusPollInterval,
		readFile:     os.ReadFile,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Trigger prepares a job for request. Nothing is sent until Run.
func (o *GenerationOrchestrator) Trigger(request domain.GenerationRequest) *GenerationJob {
	return &GenerationJob{orchestrator: o, request: request}
}

// GenerationJob fires its backend call at most once. Every Run, sequential or
// concurrent, observes the same outcome.
type GenerationJob struct {
	orchestrator *GenerationOrchestrator
	request      domain.GenerationRequest

	once  sync.Once
	media domain.MediaData
	err   error
}

func (j *GenerationJob) Request() domain.GenerationRequest {
	return j.request
}

func (j *GenerationJob) Run(ctx context.Context) (domain.MediaData, error) {
	j.once.Do(func() {
		j.media, j.err = j.orchestrator.execute(ctx, j.request)
	})
	return j.media, j.err
}

// Status checks a queued generation once.
func (o *GenerationOrchestrator) Status(ctx context.Context, id string) domain.MediaEnvelope {
	return o.media.CheckGenerationStatus(ctx, id)
}

func (o *GenerationOrchestrator) execute(ctx context.Context, request domain.GenerationRequest) (domain.MediaData, error) {
	if request.Type != domain.MediaTypeImage && request.Type != domain.MediaTypeVideo {
		return domain.MediaData{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedMediaType, request.Type)
	}
	if strings.TrimSpace(request.Prompt) == "" && request.SourceImage == "" {
		return domain.MediaData{}, domain.ErrPromptRequired
	}

	logger := o.logger.WithField("type", request.Type)

	envelope, err := o.dispatch(ctx, request)
	if err != nil {
		o.notifier.Error("Failed to generate media")
		return domain.MediaData{}, err
	}

	if envelope.IsPending() {
		logger.WithField("id", envelope.ID).Debug("generation queued, polling status")
		envelope = o.poll(ctx, envelope.ID)
	}

	if !envelope.Success || envelope.Data == nil {
		logger.WithField("reason", envelope.Error).Warn("generation failed")
		o.notifier.Error("Failed to generate media")
		return domain.MediaData{}, &GenerationError{Type: request.Type, Reason: envelope.Error}
	}

	media := domain.MediaData{
		Type:        request.Type,
		URL:         envelope.Data.URL,
		Title:       envelope.Data.Title,
		Description: envelope.Data.Description,
	}
	o.record(ctx, request, media)
	o.notifier.Success(fmt.Sprintf("%s generated successfully!", request.Type.Title()))

	return media, nil
}

func (o *GenerationOrchestrator) dispatch(ctx context.Context, request domain.GenerationRequest) (domain.MediaEnvelope, error) {
	settings := request.Settings
	aspect := domain.MapAspectRatio(settings.AspectRatio)

	var source *domain.SourceImage
	if request.SourceImage != "" {
		data, err := o.readFile(request.SourceImage)
		if err != nil {
			return domain.MediaEnvelope{}, fmt.Errorf("read source image: %w", err)
		}
		source = &domain.SourceImage{Filename: filepath.Base(request.SourceImage), Data: data}
	}

	switch {
	case request.Type == domain.MediaTypeImage && source != nil:
		guidance := float64(defaultImageToImageGuidance)
		if settings.GuidanceScale != 0 {
			guidance = settings.GuidanceScale / 10
		}
		return o.media.GenerateImageToImage(ctx, source, request.Prompt, domain.ImageToImageSettings{
			AspectRatio:       aspect,
			AutoTitle:         settings.AutoTitle,
			AutoDescription:   settings.AutoDescription,
			Guidance:          guidance,
			NumInferenceSteps: orDefault(settings.InferenceSteps, defaultImageToImageSteps),
			OutputQuality:     imageToImageOutputQuality,
			PromptStrength:    imageToImagePromptStrength,
		}), nil
	case request.Type == domain.MediaTypeImage:
		return o.media.GenerateImage(ctx, request.Prompt, domain.ImageSettings{
			AspectRatio:       aspect,
			AutoTitle:         settings.AutoTitle,
			AutoDescription:   settings.AutoDescription,
			NumInferenceSteps: orDefault(settings.InferenceSteps, defaultTextToImageSteps),
		}), nil
	case source != nil:
		guide := float64(defaultImageToVideoGuidance)
		if settings.GuidanceScale != 0 {
			guide = math.Round(settings.GuidanceScale / 5)
		}
		return o.media.GenerateImageToVideo(ctx, source, request.Prompt, domain.ImageToVideoSettings{
			AspectRatio:      aspect,
			AutoTitle:        settings.AutoTitle,
			AutoDescription:  settings.AutoDescription,
			FastMode:         domain.FastModeBalanced,
			SampleSteps:      orDefault(settings.InferenceSteps, defaultImageToVideoSteps),
			SampleGuideScale: guide,
		}), nil
	default:
		return o.media.GenerateVideo(ctx, request.Prompt, domain.VideoSettings{
			AspectRatio:     textToVideoAspectRatio,
			AutoTitle:       settings.AutoTitle,
			AutoDescription: settings.AutoDescription,
			FastMode:        domain.FastModeBalanced,
		}), nil
	}
}

// poll waits for a queued generation to reach a terminal state. The context
// bounds the wait.
func (o *GenerationOrchestrator) poll(ctx context.Context, id string) domain.MediaEnvelope {
	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return domain.Failed[domain.MediaAsset](fmt.Sprintf("generation %s: %v", id, ctx.Err()))
		case <-ticker.C:
		}

		envelope := o.media.CheckGenerationStatus(ctx, id)
		if !envelope.IsPending() {
			return envelope
		}
	}
}

func (o *GenerationOrchestrator) record(ctx context.Context, request domain.GenerationRequest, media domain.MediaData) {
	if o.history == nil {
		return
	}

	record := domain.GenerationRecord{
		ID:          uuid.NewString(),
		Type:        media.Type,
		Prompt:      request.Prompt,
		URL:         media.URL,
		Title:       media.Title,
		Description: media.Description,
		CreatedAt:   o.clock.Now().UTC(),
	}
	if o.identity != nil {
		record.Owner = o.identity.CurrentUserEmail(ctx)
	}
	if err := o.history.Append(ctx, record); err != nil {
		o.logger.WithError(err).Warn("append generation history")
	}
}

func orDefault(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

// IsGenerationFailure reports whether err is a backend-side generation failure
// as opposed to a local problem such as an unreadable source image.
func IsGenerationFailure(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
