package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAspectRatio(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "landscape", raw: "landscape", want: "16:9"},
		{name: "portrait", raw: "portrait", want: "9:16"},
		{name: "square", raw: "square", want: "1:1"},
		{name: "wide", raw: "wide", want: "4:3"},
		{name: "tall", raw: "tall", want: "3:4"},
		{name: "case insensitive", raw: "LandScape", want: "16:9"},
		{name: "literal ratio passes through", raw: "4:5", want: "4:5"},
		{name: "invalid falls back", raw: "foo", want: "1:1"},
		{name: "partial ratio falls back", raw: "4:", want: "1:1"},
		{name: "empty falls back", raw: "", want: "1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapAspectRatio(tt.raw))
		})
	}
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{name: "short prompt unchanged", prompt: "a red fox", want: "a red fox"},
		{name: "third of the words", prompt: "a cat sitting on a red sofa at dusk", want: "a cat sitting..."},
		{name: "trailing punctuation dropped", prompt: "red, blue, green, yellow", want: "red, blue..."},
		{name: "capped at five words", prompt: strings.Repeat("word ", 30) + "end", want: "word word word word word..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateTitle(tt.prompt))
		})
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration(" Monthly ")
	require.NoError(t, err)
	assert.Equal(t, DurationMonthly, d)

	_, err = ParseDuration("daily")
	assert.ErrorContains(t, err, "unsupported duration")
}

func TestParseMediaType(t *testing.T) {
	mt, err := ParseMediaType("VIDEO")
	require.NoError(t, err)
	assert.Equal(t, MediaTypeVideo, mt)
	assert.Equal(t, "Video", mt.Title())
	assert.Equal(t, "mp4", mt.Extension())

	_, err = ParseMediaType("gif")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestValidateFormReportsEveryField(t *testing.T) {
	err := ValidateForm(SignupRequest{Name: "J", Email: "not-an-email", Password: "short"})
	require.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "name must be at least 2 characters")
	assert.ErrorContains(t, err, "email must be a valid email address")
	assert.ErrorContains(t, err, "password must be at least 8 characters")

	assert.NoError(t, ValidateForm(Credentials{Email: "jane@example.com", Password: "x"}))
}

func TestNewResetPasswordRequestFlag(t *testing.T) {
	assert.Equal(t, "1", NewResetPasswordRequest("", "new-secret-1").ResetFlag)
	assert.Equal(t, "0", NewResetPasswordRequest("old-secret", "new-secret-1").ResetFlag)
}

func TestEnvelopeConstructors(t *testing.T) {
	ok := Succeeded(MediaAsset{URL: "https://x/y.png"})
	assert.True(t, ok.Success)
	require.NotNil(t, ok.Data)
	assert.Equal(t, "https://x/y.png", ok.Data.URL)

	pending := Pending[MediaAsset]("job-1")
	assert.True(t, pending.IsPending())
	assert.Nil(t, pending.Data)

	failed := Failed[MediaAsset](NotAuthenticatedMessage)
	assert.False(t, failed.Success)
	assert.Equal(t, "User not authenticated", failed.Error)
}

func TestUserProfilePlanNamePrefersSubscriptionStatus(t *testing.T) {
	legacy := "basic"
	current := "pro"
	p := UserProfile{Email: "jane@example.com", SubscriptionPlan: &legacy}
	assert.Equal(t, "basic", p.PlanName())

	p.Subscription = &SubscriptionStatus{Status: "active", Plan: &current}
	assert.Equal(t, "pro", p.PlanName())
	assert.Equal(t, "jane@example.com", p.DisplayName())
}
