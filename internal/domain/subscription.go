package domain

import (
	"fmt"
	"strings"
)

type Duration string

const (
	DurationWeekly  Duration = "weekly"
	DurationMonthly Duration = "monthly"
	DurationYearly  Duration = "yearly"
)

func ParseDuration(raw string) (Duration, error) {
	d := Duration(strings.ToLower(strings.TrimSpace(raw)))
	switch d {
	case DurationWeekly, DurationMonthly, DurationYearly:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported duration %q (weekly|monthly|yearly)", raw)
	}
}

type SubscriptionPlan struct {
	ID       string   `json:"id,omitempty"`
	Duration Duration `json:"duration"`
	Plan     string   `json:"plan"`
	Desc     string   `json:"desc"`
	Price    float64  `json:"price"`
	Perks    []string `json:"perks"`
}

type SubscriptionLimits struct {
	ImagesPerDay       int `json:"images_per_day"`
	VideoMinutesPerDay int `json:"video_minutes_per_day"`
}

type DailyUsage struct {
	Images       int `json:"images"`
	VideoMinutes int `json:"video_minutes"`
}

// SubscriptionStatus.Status is one of active, inactive or past_due.
type SubscriptionStatus struct {
	Status     string              `json:"status"`
	Plan       *string             `json:"plan"`
	Duration   *string             `json:"duration"`
	StartDate  *string             `json:"start_date"`
	EndDate    *string             `json:"end_date"`
	Limits     *SubscriptionLimits `json:"limits,omitempty"`
	DailyUsage *DailyUsage         `json:"daily_usage,omitempty"`
}

func (s SubscriptionStatus) Active() bool {
	return strings.EqualFold(s.Status, "active")
}

type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type SubscriptionValidity struct {
	Valid   bool   `json:"valid"`
	EndDate string `json:"end_date,omitempty"`
	Message string `json:"message,omitempty"`
}

type CheckoutRequest struct {
	PlanType string   `json:"plan_type" validate:"required"`
	Duration Duration `json:"duration" validate:"required,oneof=weekly monthly yearly"`
}
