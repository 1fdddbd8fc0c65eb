package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/tidwall/gjson"
)

// AuthAPI covers login, signup and password recovery. None of these calls
// need an identity.
type AuthAPI struct {
	client *Client
}

var _ ports.AuthBackend = (*AuthAPI)(nil)

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

func (a *AuthAPI) Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResponse, error) {
	raw, err := a.client.doJSON(ctx, http.MethodPost, "/auth/login", credentials)
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("login: %w", err)
	}

	resp, err := decodeJSON[domain.LoginResponse](raw, "/auth/login")
	if err != nil {
		return domain.LoginResponse{}, err
	}
	resp.Success = successFlag(raw)
	if resp.Email == "" {
		resp.Email = credentials.Email
	}
	return resp, nil
}

func (a *AuthAPI) Signup(ctx context.Context, request domain.SignupRequest) (domain.SignupResponse, error) {
	raw, err := a.client.doJSON(ctx, http.MethodPost, "/users", request)
	if err != nil {
		return domain.SignupResponse{}, fmt.Errorf("signup: %w", err)
	}

	resp, err := decodeJSON[domain.SignupResponse](raw, "/users")
	if err != nil {
		return domain.SignupResponse{}, err
	}
	resp.Success = successFlag(raw)
	return resp, nil
}

func (a *AuthAPI) SendOTP(ctx context.Context, email string) (domain.OTPResponse, error) {
	path := userPath(email, "/otp")
	raw, err := a.client.doJSON(ctx, http.MethodPost, path, nil)
	if err != nil {
		return domain.OTPResponse{}, fmt.Errorf("send otp: %w", err)
	}
	return otpResponse(raw, path)
}

func (a *AuthAPI) VerifyOTP(ctx context.Context, email string, request domain.VerifyOTPRequest) (domain.OTPResponse, error) {
	path := userPath(email, "/verify-otp")
	raw, err := a.client.doJSON(ctx, http.MethodPost, path, request)
	if err != nil {
		return domain.OTPResponse{}, fmt.Errorf("verify otp: %w", err)
	}
	return otpResponse(raw, path)
}

func (a *AuthAPI) ResetPassword(ctx context.Context, email string, request domain.ResetPasswordRequest) (domain.OTPResponse, error) {
	path := userPath(email, "/password")
	raw, err := a.client.doJSON(ctx, http.MethodPut, path, request)
	if err != nil {
		return domain.OTPResponse{}, fmt.Errorf("reset password: %w", err)
	}
	return otpResponse(raw, path)
}

func otpResponse(raw []byte, path string) (domain.OTPResponse, error) {
	resp, err := decodeJSON[domain.OTPResponse](raw, path)
	if err != nil {
		return domain.OTPResponse{}, err
	}
	resp.Success = successFlag(raw)
	return resp, nil
}

// successFlag treats a 2xx answer as success unless the body says otherwise.
func successFlag(raw []byte) bool {
	flag := gjson.GetBytes(raw, "success")
	if !flag.Exists() {
		return true
	}
	return flag.Bool()
}
