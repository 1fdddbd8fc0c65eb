package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPasswordCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Recover or change an account password",
	}

	cmd.AddCommand(
		newPasswordSendOTPCmd(app),
		newPasswordVerifyOTPCmd(app),
		newPasswordResetCmd(app),
	)

	return cmd
}

func newPasswordSendOTPCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "send-otp",
		Short: "Email a one-time code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if err := domain.ValidateForm(struct {
				Email string `validate:"required,email"`
			}{Email: email}); err != nil {
				return err
			}

			resp, err := app.authAPI.SendOTP(cmd.Context(), email)
			if err != nil {
				return err
			}
			return writeOTPResult(cmd, resp, "Verification code sent to "+email)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newPasswordVerifyOTPCmd(app *app) *cobra.Command {
	var email string
	var otp string

	cmd := &cobra.Command{
		Use:   "verify-otp",
		Short: "Verify a one-time code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := domain.VerifyOTPRequest{OTP: strings.TrimSpace(otp)}
			if err := domain.ValidateForm(request); err != nil {
				return err
			}

			resp, err := app.authAPI.VerifyOTP(cmd.Context(), strings.TrimSpace(email), request)
			if err != nil {
				return err
			}
			return writeOTPResult(cmd, resp, "Code verified")
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&otp, "otp", "", "Six digit code")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("otp")

	return cmd
}

func newPasswordResetCmd(app *app) *cobra.Command {
	var email string
	var oldPassword string
	var newPassword string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Set a new password (pass --old-password to change it while signed in)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := promptMissing(promptField{title: "New password", flag: "new-password", value: &newPassword, secret: true}); err != nil {
				return err
			}

			request := domain.NewResetPasswordRequest(oldPassword, newPassword)
			if err := domain.ValidateForm(request); err != nil {
				return err
			}

			resp, err := app.authAPI.ResetPassword(cmd.Context(), strings.TrimSpace(email), request)
			if err != nil {
				return err
			}
			return writeOTPResult(cmd, resp, "Password updated")
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&oldPassword, "old-password", "", "Current password")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "New password, at least 8 characters (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func writeOTPResult(cmd *cobra.Command, resp domain.OTPResponse, fallback string) error {
	if !resp.Success {
		return fmt.Errorf("%s: %s", cmd.CommandPath(), valueOr(resp.Message, "request was rejected"))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), valueOr(resp.Message, fallback))
	return err
}
