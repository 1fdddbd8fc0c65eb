package backend

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
)

const (
	maxSeed = 4294967295

	defaultImageSteps = 4

	defaultVideoFrames      = 81
	defaultVideoAspect      = "16:9"
	defaultVideoShift       = 5
	defaultVideoSteps       = 30
	defaultVideoFPS         = 16
	defaultVideoGuideScale  = 5
	defaultImageToVideoArea = "720x1280"
	defaultLoraScale        = 1

	defaultI2IGuidance   = 3.5
	defaultI2IMegapixels = "1"
	defaultI2IOutputs    = 1
	defaultI2IFormat     = "webp"
	defaultI2IQuality    = 80
	defaultI2IStrength   = 0.8
	defaultI2ISteps      = 28
)

// MediaAPI generates images and videos. Every call answers with an envelope;
// failures never surface as Go errors.
type MediaAPI struct {
	client *Client
}

var _ ports.MediaBackend = (*MediaAPI)(nil)

func NewMediaAPI(client *Client) *MediaAPI {
	return &MediaAPI{client: client}
}

type generateImagePayload struct {
	Prompt            string `json:"prompt"`
	AspectRatio       string `json:"aspect_ratio"`
	NumInferenceSteps int    `json:"num_inference_steps"`
	Seed              int64  `json:"seed"`
}

type generateVideoPayload struct {
	Prompt           string          `json:"prompt"`
	FastMode         domain.FastMode `json:"fast_mode"`
	NumFrames        int             `json:"num_frames"`
	AspectRatio      string          `json:"aspect_ratio"`
	SampleShift      float64         `json:"sample_shift"`
	SampleSteps      int             `json:"sample_steps"`
	FramesPerSecond  int             `json:"frames_per_second"`
	SampleGuideScale float64         `json:"sample_guide_scale"`
}

func (m *MediaAPI) GenerateImage(ctx context.Context, prompt string, settings domain.ImageSettings) domain.MediaEnvelope {
	if m.client.currentEmail(ctx) == "" {
		return domain.Failed[domain.MediaAsset](domain.NotAuthenticatedMessage)
	}
	if prompt == "" {
		return domain.Failed[domain.MediaAsset]("Prompt is required for image generation")
	}

	seed := settings.Seed
	if seed == 0 {
		seed = rand.Int64N(maxSeed)
	}
	payload := generateImagePayload{
		Prompt:            prompt,
		AspectRatio:       stringOr(settings.AspectRatio, domain.DefaultAspectRatio),
		NumInferenceSteps: intOr(settings.NumInferenceSteps, defaultImageSteps),
		Seed:              seed,
	}

	raw, err := m.client.doJSON(ctx, http.MethodPost, "/api/generate-image", payload)
	if err != nil && !hasBody(raw) {
		return domain.Failed[domain.MediaAsset](failureMessage(err, unexpectedResponseMessage))
	}
	return mediaEnvelope(raw, "image_url", prompt, domain.DefaultImageTitle, titleSettings{settings.AutoTitle, settings.AutoDescription})
}

func (m *MediaAPI) GenerateVideo(ctx context.Context, prompt string, settings domain.VideoSettings) domain.MediaEnvelope {
	if prompt == "" {
		return domain.Failed[domain.MediaAsset]("Prompt is required for video generation")
	}
	if m.client.currentEmail(ctx) == "" {
		return domain.Failed[domain.MediaAsset](domain.NotAuthenticatedMessage)
	}

	fastMode := settings.FastMode
	if fastMode == "" {
		fastMode = domain.FastModeBalanced
	}
	payload := generateVideoPayload{
		Prompt:           prompt,
		FastMode:         fastMode,
		NumFrames:        intOr(settings.NumFrames, defaultVideoFrames),
		AspectRatio:      stringOr(settings.AspectRatio, defaultVideoAspect),
		SampleShift:      floatOr(settings.SampleShift, defaultVideoShift),
		SampleSteps:      intOr(settings.SampleSteps, defaultVideoSteps),
		FramesPerSecond:  intOr(settings.FramesPerSecond, defaultVideoFPS),
		SampleGuideScale: floatOr(settings.SampleGuideScale, defaultVideoGuideScale),
	}

	raw, err := m.client.doJSON(ctx, http.MethodPost, "/api/generate-video", payload)
	if err != nil && !hasBody(raw) {
		return domain.Failed[domain.MediaAsset](failureMessage(err, unexpectedResponseMessage))
	}
	return mediaEnvelope(raw, "video_url", prompt, domain.DefaultVideoTitle, titleSettings{settings.AutoTitle, settings.AutoDescription})
}

func (m *MediaAPI) GenerateImageToImage(ctx context.Context, image *domain.SourceImage, prompt string, settings domain.ImageToImageSettings) domain.MediaEnvelope {
	if m.client.currentEmail(ctx) == "" {
		return domain.Failed[domain.MediaAsset](domain.NotAuthenticatedMessage)
	}
	if image == nil {
		return domain.Failed[domain.MediaAsset]("Image is required for image-to-image generation")
	}
	if prompt == "" {
		return domain.Failed[domain.MediaAsset]("Prompt is required for image-to-image generation")
	}

	goFast := true
	if settings.GoFast != nil {
		goFast = *settings.GoFast
	}
	fields := [][2]string{
		{"prompt", prompt},
		{"go_fast", strconv.FormatBool(goFast)},
		{"guidance", formatFloat(floatOr(settings.Guidance, defaultI2IGuidance))},
		{"megapixels", stringOr(settings.Megapixels, defaultI2IMegapixels)},
		{"num_outputs", strconv.Itoa(intOr(settings.NumOutputs, defaultI2IOutputs))},
		{"aspect_ratio", domain.MapAspectRatio(settings.AspectRatio)},
		{"output_format", stringOr(settings.OutputFormat, defaultI2IFormat)},
		{"output_quality", strconv.Itoa(intOr(settings.OutputQuality, defaultI2IQuality))},
		{"prompt_strength", formatFloat(floatOr(settings.PromptStrength, defaultI2IStrength))},
		{"num_inference_steps", strconv.Itoa(intOr(settings.NumInferenceSteps, defaultI2ISteps))},
	}

	raw, err := m.client.doMultipart(ctx, "/api/image-to-image", fields, &filePart{field: "image", filename: image.Filename, data: image.Data})
	if err != nil && !hasBody(raw) {
		return domain.Failed[domain.MediaAsset](failureMessage(err, unexpectedResponseMessage))
	}
	return mediaEnvelope(raw, "image_url", prompt, domain.DefaultImageTitle, titleSettings{settings.AutoTitle, settings.AutoDescription})
}

func (m *MediaAPI) GenerateImageToVideo(ctx context.Context, image *domain.SourceImage, prompt string, settings domain.ImageToVideoSettings) domain.MediaEnvelope {
	if m.client.currentEmail(ctx) == "" {
		return domain.Failed[domain.MediaAsset](domain.NotAuthenticatedMessage)
	}
	if image == nil {
		return domain.Failed[domain.MediaAsset]("Image is required for image-to-video generation")
	}
	if prompt == "" {
		return domain.Failed[domain.MediaAsset]("Prompt is required for image-to-video generation")
	}

	fastMode := settings.FastMode
	if fastMode == "" {
		fastMode = domain.FastModeBalanced
	}
	fields := [][2]string{
		{"prompt", prompt},
		{"max_area", stringOr(settings.MaxArea, defaultImageToVideoArea)},
		{"fast_mode", string(fastMode)},
		{"lora_scale", formatFloat(floatOr(settings.LoraScale, defaultLoraScale))},
		{"num_frames", strconv.Itoa(intOr(settings.NumFrames, defaultVideoFrames))},
		{"sample_shift", formatFloat(floatOr(settings.SampleShift, defaultVideoShift))},
		{"sample_steps", strconv.Itoa(intOr(settings.SampleSteps, defaultVideoSteps))},
		{"frames_per_second", strconv.Itoa(intOr(settings.FramesPerSecond, defaultVideoFPS))},
		{"sample_guide_scale", formatFloat(floatOr(settings.SampleGuideScale, defaultVideoGuideScale))},
	}

	raw, err := m.client.doMultipart(ctx, "/api/image-to-video", fields, &filePart{field: "image", filename: image.Filename, data: image.Data})
	if err != nil && !hasBody(raw) {
		return domain.Failed[domain.MediaAsset](failureMessage(err, unexpectedResponseMessage))
	}
	return mediaEnvelope(raw, "video_url", prompt, domain.DefaultVideoTitle, titleSettings{settings.AutoTitle, settings.AutoDescription})
}

func (m *MediaAPI) CheckGenerationStatus(ctx context.Context, id string) domain.MediaEnvelope {
	if id == "" {
		return domain.Failed[domain.MediaAsset]("generation id is required")
	}

	raw, err := m.client.doJSON(ctx, http.MethodGet, "/status/"+url.PathEscape(id), nil)
	if err != nil && !hasBody(raw) {
		return domain.Failed[domain.MediaAsset](failureMessage(err, unexpectedResponseMessage))
	}
	return statusEnvelope(raw, id)
}

func hasBody(raw []byte) bool {
	return len(raw) > 0
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func floatOr(value, fallback float64) float64 {
	if value == 0 {
		return fallback
	}
	return value
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
