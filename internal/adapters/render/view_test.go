package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func TestRenderProfileView(t *testing.T) {
	output, err := Render(ProfileView{Profile: domain.UserProfile{
		Email:               "jane@example.com",
		Name:                "Jane",
		ImageCount:          12,
		VideoCount:          3,
		SubscriptionPlan:    strPtr("Pro"),
		SubscriptionEndDate: strPtr("2026-12-31"),
	}})

	require.NoError(t, err)
	assert.Contains(t, output, "Jane <jane@example.com>")
	assert.Contains(t, output, "images: 12  videos: 3")
	assert.Contains(t, output, "plan: Pro")
	assert.Contains(t, output, "ends: 2026-12-31")
}

func TestRenderProfileWithoutPlan(t *testing.T) {
	output, err := Render(ProfileView{Profile: domain.MinimalProfile("jane@example.com", "")})

	require.NoError(t, err)
	assert.Contains(t, output, "jane@example.com <jane@example.com>")
	assert.Contains(t, output, "plan: none")
}

func TestRenderSubscriptionUsage(t *testing.T) {
	output, err := Render(SubscriptionView{Status: domain.SubscriptionStatus{
		Status:     "active",
		Plan:       strPtr("Pro"),
		Duration:   strPtr("monthly"),
		Limits:     &domain.SubscriptionLimits{ImagesPerDay: 50, VideoMinutesPerDay: 0},
		DailyUsage: &domain.DailyUsage{Images: 25, VideoMinutes: 4},
	}})

	require.NoError(t, err)
	assert.Contains(t, output, "status: active")
	assert.Contains(t, output, "plan: Pro (monthly)")
	assert.Contains(t, output, "25/50")
	assert.Contains(t, output, "4 (unlimited)")
}

func TestRenderInactiveSubscriptionWarns(t *testing.T) {
	output, err := Render(SubscriptionView{Status: domain.SubscriptionStatus{Status: "past_due"}})

	require.NoError(t, err)
	assert.Contains(t, output, "status: past_due")
}

func TestRenderPlansView(t *testing.T) {
	output, err := Render(PlansView{
		Duration: domain.DurationMonthly,
		Plans: []domain.SubscriptionPlan{
			{Plan: "Basic", Duration: domain.DurationMonthly, Price: 9.99, Desc: "For starters", Perks: []string{"50 images/day"}},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "plans: 1 (monthly)")
	assert.Contains(t, output, "Basic")
	assert.Contains(t, output, "$9.99")
	assert.Contains(t, output, "50 images/day")
}

func TestRenderEmptyViews(t *testing.T) {
	plans, err := Render(PlansView{})
	require.NoError(t, err)
	assert.Contains(t, plans, "No plans available.")

	history, err := Render(HistoryView{})
	require.NoError(t, err)
	assert.Contains(t, history, "Nothing generated yet.")

	payments, err := Render(PaymentsView{})
	require.NoError(t, err)
	assert.Contains(t, payments, "No payments recorded.")
}

func TestRenderHistoryView(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	output, err := Render(HistoryView{
		Now: now,
		Records: []domain.GenerationRecord{
			{ID: "rec-1", Type: domain.MediaTypeImage, URL: "https://x/1.png", Prompt: "a cat", CreatedAt: now.Add(-2 * time.Hour)},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "items: 1")
	assert.Contains(t, output, "Generated Image")
	assert.Contains(t, output, "[image] 2h ago")
	assert.Contains(t, output, "https://x/1.png")
}

func TestRenderPaymentsView(t *testing.T) {
	output, err := Render(PaymentsView{Payments: []domain.PaymentHistory{
		{PaymentID: "p1", Amount: "9.99", Currency: "usd", Status: "paid", SubscriptionPlan: "Pro", CreatedAt: "2026-01-02T03:04:05Z"},
	}})

	require.NoError(t, err)
	assert.Contains(t, output, "02 Jan 2026")
	assert.Contains(t, output, "9.99 USD")
	assert.Contains(t, output, "(paid)")
}

func TestToastWritesMessages(t *testing.T) {
	var out bytes.Buffer
	toast := NewToast(&out)

	toast.Success("Image generated successfully!")
	toast.Error("Failed to generate media")

	assert.Contains(t, out.String(), "Image generated successfully!")
	assert.Contains(t, out.String(), "Failed to generate media")
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, "unknown", formatAge(time.Time{}, now))
	assert.Equal(t, "just now", formatAge(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", formatAge(now.Add(-5*time.Minute), now))
	assert.Equal(t, "10 Feb 2026", formatAge(now.AddDate(0, 0, -4), now))
}
