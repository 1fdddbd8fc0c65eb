package backend

import (
	"fmt"
	"strings"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/tidwall/gjson"
)

const unexpectedResponseMessage = "Unexpected API response format"

// mediaEnvelope normalizes a generation response. urlField is image_url or
// video_url depending on the endpoint.
func mediaEnvelope(raw []byte, urlField string, prompt string, defaultTitle string, settings titleSettings) domain.MediaEnvelope {
	if !gjson.ValidBytes(raw) {
		return domain.Failed[domain.MediaAsset](unexpectedResponseMessage)
	}

	status := gjson.GetBytes(raw, "status").String()
	switch {
	case status == "success" && gjson.GetBytes(raw, urlField).String() != "":
		asset := domain.MediaAsset{
			URL:   gjson.GetBytes(raw, urlField).String(),
			Title: defaultTitle,
		}
		if settings.autoTitle {
			asset.Title = domain.GenerateTitle(prompt)
		}
		if settings.autoDescription {
			asset.Description = prompt
		}
		return domain.Succeeded(asset)
	case isQueuedStatus(status):
		return domain.Pending[domain.MediaAsset](jobID(raw))
	default:
		if message := gjson.GetBytes(raw, "message").String(); message != "" {
			return domain.Failed[domain.MediaAsset](message)
		}
		return domain.Failed[domain.MediaAsset](unexpectedResponseMessage)
	}
}

// statusEnvelope normalizes a GET /status/{id} answer. Completed jobs carry
// base64 images that are turned into data URLs.
func statusEnvelope(raw []byte, id string) domain.MediaEnvelope {
	status := gjson.GetBytes(raw, "status").String()
	switch {
	case status == "COMPLETED" && gjson.GetBytes(raw, "output.images.0").Exists():
		return domain.Succeeded(domain.MediaAsset{
			URL:         dataURL(gjson.GetBytes(raw, "output.images.0").String(), domain.MediaTypeImage),
			Title:       domain.DefaultImageTitle,
			Description: "Image generated successfully",
		})
	case isQueuedStatus(status):
		return domain.Pending[domain.MediaAsset](id)
	default:
		return domain.Failed[domain.MediaAsset](fmt.Sprintf("Generation failed with status: %s", status))
	}
}

type titleSettings struct {
	autoTitle       bool
	autoDescription bool
}

func isQueuedStatus(status string) bool {
	return status == "IN_QUEUE" || status == "IN_PROGRESS"
}

func jobID(raw []byte) string {
	for _, path := range []string{"id", "job_id", "request_id"} {
		if value := gjson.GetBytes(raw, path).String(); value != "" {
			return value
		}
	}
	return ""
}

func dataURL(payload string, mediaType domain.MediaType) string {
	if strings.HasPrefix(payload, "data:") {
		return payload
	}
	if mediaType == domain.MediaTypeVideo {
		return "data:video/mp4;base64," + payload
	}
	return "data:image/png;base64," + payload
}
