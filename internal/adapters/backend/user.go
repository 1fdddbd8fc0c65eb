package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
)

// UserAPI manages the signed-in user's account. Calls fail with
// domain.ErrNotAuthenticated before any request when no identity is set.
type UserAPI struct {
	client *Client
}

var _ ports.ProfileBackend = (*UserAPI)(nil)

func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

func (u *UserAPI) GetUserProfile(ctx context.Context) (domain.UserProfile, error) {
	email := u.client.currentEmail(ctx)
	if err := requireIdentity(email); err != nil {
		return domain.UserProfile{}, err
	}
	return u.GetUserProfileByEmail(ctx, email)
}

func (u *UserAPI) GetUserProfileByEmail(ctx context.Context, email string) (domain.UserProfile, error) {
	path := userPath(email, "")
	raw, err := u.client.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("get user profile: %w", err)
	}
	return decodeJSON[domain.UserProfile](raw, path)
}

func (u *UserAPI) DeleteUser(ctx context.Context) error {
	email := u.client.currentEmail(ctx)
	if err := requireIdentity(email); err != nil {
		return err
	}
	if _, err := u.client.doJSON(ctx, http.MethodDelete, userPath(email, ""), nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (u *UserAPI) UploadProfilePicture(ctx context.Context, image domain.SourceImage) (domain.UserProfile, error) {
	email := u.client.currentEmail(ctx)
	if err := requireIdentity(email); err != nil {
		return domain.UserProfile{}, err
	}

	raw, err := u.client.doMultipart(ctx, "/upload_profile_picture",
		[][2]string{{"email", email}},
		&filePart{field: "profile_picture", filename: image.Filename, data: image.Data},
	)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("upload profile picture: %w", err)
	}
	return decodeJSON[domain.UserProfile](raw, "/upload_profile_picture")
}

func (u *UserAPI) RemoveProfilePicture(ctx context.Context) (domain.UserProfile, error) {
	email := u.client.currentEmail(ctx)
	if err := requireIdentity(email); err != nil {
		return domain.UserProfile{}, err
	}

	path := userPath(email, "/profile-picture")
	raw, err := u.client.doJSON(ctx, http.MethodDelete, path, map[string]string{"email": email})
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("remove profile picture: %w", err)
	}
	return decodeJSON[domain.UserProfile](raw, path)
}

func (u *UserAPI) GetPaymentHistory(ctx context.Context) ([]domain.PaymentHistory, error) {
	email := u.client.currentEmail(ctx)
	if err := requireIdentity(email); err != nil {
		return nil, err
	}

	path := userPath(email, "/payments")
	raw, err := u.client.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("get payment history: %w", err)
	}
	return decodeJSON[[]domain.PaymentHistory](raw, path)
}

func (u *UserAPI) AddPayment(ctx context.Context, request domain.AddPaymentRequest) error {
	email := u.client.currentEmail(ctx)
	if err := requireIdentity(email); err != nil {
		return err
	}
	if _, err := u.client.doJSON(ctx, http.MethodPut, userPath(email, "/add-payment"), request); err != nil {
		return fmt.Errorf("add payment: %w", err)
	}
	return nil
}

func (u *UserAPI) AddSubscriptionPlan(ctx context.Context, request domain.AddSubscriptionPlanRequest) error {
	email := u.client.currentEmail(ctx)
	if err := requireIdentity(email); err != nil {
		return err
	}
	if _, err := u.client.doJSON(ctx, http.MethodPut, userPath(email, "/subscription"), request); err != nil {
		return fmt.Errorf("add subscription plan: %w", err)
	}
	return nil
}
