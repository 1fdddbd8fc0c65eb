package domain

import "time"

type UserProfile struct {
	Email                 string              `json:"email"`
	Name                  string              `json:"name"`
	ProfilePicture        *string             `json:"profile_picture"`
	ImageCount            int                 `json:"image_count"`
	VideoCount            int                 `json:"video_count"`
	SubscriptionPlan      *string             `json:"subscription_plan"`
	SubscriptionStartDate *string             `json:"subscription_start_date"`
	SubscriptionEndDate   *string             `json:"subscription_end_date"`
	Subscription          *SubscriptionStatus `json:"subscription,omitempty"`
}

// MinimalProfile is what the client knows about a user before the profile
// endpoint has answered.
func MinimalProfile(email, name string) UserProfile {
	return UserProfile{Email: email, Name: name}
}

func (p UserProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

func (p UserProfile) PlanName() string {
	if p.Subscription != nil && p.Subscription.Plan != nil && *p.Subscription.Plan != "" {
		return *p.Subscription.Plan
	}
	if p.SubscriptionPlan != nil && *p.SubscriptionPlan != "" {
		return *p.SubscriptionPlan
	}
	return ""
}

type PaymentHistory struct {
	PaymentID        string `json:"payment_id"`
	Email            string `json:"email"`
	Amount           string `json:"amount"`
	StripePaymentID  string `json:"stripe_payment_id"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	SubscriptionPlan string `json:"subscription_plan"`
	CreatedAt        string `json:"created_at"`
}

func (p PaymentHistory) CreatedTime() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, p.CreatedAt); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

type AddPaymentRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Amount           string `json:"amount" validate:"required"`
	StripePaymentID  string `json:"stripe_payment_id" validate:"required"`
	Currency         string `json:"currency" validate:"required"`
	Status           string `json:"status" validate:"required"`
	SubscriptionPlan string `json:"subscription_plan" validate:"required"`
}

type AddSubscriptionPlanRequest struct {
	SubscriptionPlan string `json:"subscription_plan" validate:"required"`
}
