package domain

import (
	"fmt"
	"strings"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func ParseMediaType(raw string) (MediaType, error) {
	switch MediaType(strings.ToLower(strings.TrimSpace(raw))) {
	case MediaTypeImage:
		return MediaTypeImage, nil
	case MediaTypeVideo:
		return MediaTypeVideo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, raw)
	}
}

// Title returns the capitalized media type, e.g. "Image".
func (t MediaType) Title() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (t MediaType) Extension() string {
	if t == MediaTypeVideo {
		return "mp4"
	}
	return "png"
}

// GenerationSettings are the UI-level knobs a user picks before generating.
type GenerationSettings struct {
	Style           string
	AspectRatio     string
	AutoTitle       bool
	AutoDescription bool
	GuidanceScale   float64
	InferenceSteps  int
	ExcludeText     string
}

type GenerationRequest struct {
	Type        MediaType
	Prompt      string
	SourceImage string
	Settings    GenerationSettings
}

// MediaAsset is the generated media as returned by the backend.
type MediaAsset struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type MediaData struct {
	Type        MediaType
	URL         string
	Title       string
	Description string
}

type MediaEnvelope = Envelope[MediaAsset]

type ImageSettings struct {
	AspectRatio       string
	AutoTitle         bool
	AutoDescription   bool
	NumInferenceSteps int
	Seed              int64
}

type FastMode string

const (
	FastModeBalanced FastMode = "Balanced"
	FastModeSpeed    FastMode = "Speed"
	FastModeQuality  FastMode = "Quality"
)

type VideoSettings struct {
	FastMode         FastMode
	NumFrames        int
	AspectRatio      string
	SampleShift      float64
	SampleSteps      int
	FramesPerSecond  int
	SampleGuideScale float64
	AutoTitle        bool
	AutoDescription  bool
}

type ImageToImageSettings struct {
	AspectRatio       string
	AutoTitle         bool
	AutoDescription   bool
	GoFast            *bool
	Guidance          float64
	Megapixels        string
	NumOutputs        int
	OutputFormat      string
	OutputQuality     int
	PromptStrength    float64
	NumInferenceSteps int
}

type ImageToVideoSettings struct {
	MaxArea          string
	FastMode         FastMode
	LoraScale        float64
	NumFrames        int
	SampleShift      float64
	SampleSteps      int
	FramesPerSecond  int
	SampleGuideScale float64
	AutoTitle        bool
	AutoDescription  bool
	AspectRatio      string
}

// SourceImage is an uploaded file for image-to-image and image-to-video.
type SourceImage struct {
	Filename string
	Data     []byte
}
