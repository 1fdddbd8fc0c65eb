package domain

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
}

type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Email   string `json:"email,omitempty"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,numeric,len=6"`
}

type OTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ResetFlag is "1" when the user forgot the old password and "0" when it is
// being changed from a signed-in session.
type ResetPasswordRequest struct {
	OldPassword string `json:"old_password,omitempty"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
	ResetFlag   string `json:"reset_flag" validate:"oneof=0 1"`
}

func NewResetPasswordRequest(oldPassword, newPassword string) ResetPasswordRequest {
	flag := "1"
	if oldPassword != "" {
		flag = "0"
	}
	return ResetPasswordRequest{OldPassword: oldPassword, NewPassword: newPassword, ResetFlag: flag}
}
