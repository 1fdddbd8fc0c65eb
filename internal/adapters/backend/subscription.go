package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/tidwall/gjson"
)

// SubscriptionAPI answers with envelopes. Backend failures carry the server
// message or a per-call fallback.
type SubscriptionAPI struct {
	client *Client
}

func NewSubscriptionAPI(client *Client) *SubscriptionAPI {
	return &SubscriptionAPI{client: client}
}

// GetPlans lists plans, optionally restricted to one duration bucket.
func (s *SubscriptionAPI) GetPlans(ctx context.Context, duration domain.Duration) domain.Envelope[[]domain.SubscriptionPlan] {
	path := "/subscription/plans"
	if duration != "" {
		path += "?" + url.Values{"duration": {string(duration)}}.Encode()
	}

	raw, failure := s.call(ctx, http.MethodGet, path, nil, "Failed to fetch subscription plans", false)
	if failure != "" {
		return domain.Failed[[]domain.SubscriptionPlan](failure)
	}

	plans := gjson.ParseBytes(raw)
	if !plans.IsArray() {
		plans = firstExisting(raw, "plans", "data")
	}
	var out []domain.SubscriptionPlan
	if err := json.Unmarshal([]byte(plans.Raw), &out); err != nil {
		return domain.Failed[[]domain.SubscriptionPlan](unexpectedResponseMessage)
	}
	if duration != "" {
		out = filterPlans(out, duration)
	}
	return domain.Succeeded(out)
}

func (s *SubscriptionAPI) GetStatus(ctx context.Context) domain.Envelope[domain.SubscriptionStatus] {
	raw, failure := s.call(ctx, http.MethodGet, "/subscription/status", nil, "Failed to fetch subscription status", true)
	if failure != "" {
		return domain.Failed[domain.SubscriptionStatus](failure)
	}
	return decodeEnvelope[domain.SubscriptionStatus](raw, "subscription", "data")
}

func (s *SubscriptionAPI) CreateCheckoutSession(ctx context.Context, request domain.CheckoutRequest) domain.Envelope[domain.CheckoutSession] {
	raw, failure := s.call(ctx, http.MethodPost, "/subscription/create-checkout-session", request, "Failed to create checkout session", true)
	if failure != "" {
		return domain.Failed[domain.CheckoutSession](failure)
	}

	envelope := decodeEnvelope[domain.CheckoutSession](raw, "data")
	if envelope.Success && envelope.Data.CheckoutURL == "" {
		if alt := gjson.GetBytes(raw, "url").String(); alt != "" {
			envelope.Data.CheckoutURL = alt
		} else {
			return domain.Failed[domain.CheckoutSession]("checkout session has no url")
		}
	}
	return envelope
}

func (s *SubscriptionAPI) Cancel(ctx context.Context) domain.Envelope[string] {
	raw, failure := s.call(ctx, http.MethodPost, "/subscription/cancel", struct{}{}, "Failed to cancel subscription", true)
	if failure != "" {
		return domain.Failed[string](failure)
	}
	message := gjson.GetBytes(raw, "message").String()
	if message == "" {
		message = "Subscription cancelled"
	}
	return domain.Succeeded(message)
}

func (s *SubscriptionAPI) CheckValidity(ctx context.Context) domain.Envelope[domain.SubscriptionValidity] {
	email := s.client.currentEmail(ctx)
	if email == "" {
		return domain.Failed[domain.SubscriptionValidity](domain.NotAuthenticatedMessage)
	}

	raw, failure := s.call(ctx, http.MethodGet, userPath(email, "/subscription/validity"), nil, "Failed to check subscription validity", false)
	if failure != "" {
		return domain.Failed[domain.SubscriptionValidity](failure)
	}
	return decodeEnvelope[domain.SubscriptionValidity](raw, "data")
}

// call performs the request and returns a non-empty failure message when the
// envelope must fail.
func (s *SubscriptionAPI) call(ctx context.Context, method, path string, body any, fallback string, needsIdentity bool) ([]byte, string) {
	if needsIdentity && s.client.currentEmail(ctx) == "" {
		return nil, domain.NotAuthenticatedMessage
	}

	raw, err := s.client.doJSON(ctx, method, path, body)
	if err != nil {
		return nil, failureMessage(err, fallback)
	}
	if gjson.GetBytes(raw, "status").String() == "error" {
		if message := gjson.GetBytes(raw, "message").String(); message != "" {
			return nil, message
		}
		return nil, fallback
	}
	return raw, ""
}

func decodeEnvelope[T any](raw []byte, nested ...string) domain.Envelope[T] {
	payload := gjson.ParseBytes(raw)
	if inner := firstExisting(raw, nested...); inner.IsObject() {
		payload = inner
	}

	var out T
	if err := json.Unmarshal([]byte(payload.Raw), &out); err != nil {
		return domain.Failed[T](unexpectedResponseMessage)
	}
	return domain.Succeeded(out)
}

func firstExisting(raw []byte, paths ...string) gjson.Result {
	for _, path := range paths {
		if value := gjson.GetBytes(raw, path); value.Exists() {
			return value
		}
	}
	return gjson.Result{}
}

func filterPlans(plans []domain.SubscriptionPlan, duration domain.Duration) []domain.SubscriptionPlan {
	out := make([]domain.SubscriptionPlan, 0, len(plans))
	for _, plan := range plans {
		if plan.Duration == "" || plan.Duration == duration {
			out = append(out, plan)
		}
	}
	return out
}
