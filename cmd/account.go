package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/dreamai-cli/internal/adapters/render"
	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the signed-in account",
	}

	cmd.AddCommand(
		newAccountShowCmd(app),
		newAccountDeleteCmd(app),
		newAccountPaymentsCmd(app),
		newAccountPlanCmd(app),
		newAccountPictureCmd(app),
	)

	return cmd
}

func newAccountShowCmd(app *app) *cobra.Command {
	var email string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an account profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				profile domain.UserProfile
				err     error
			)
			if email != "" {
				profile, err = app.users.GetUserProfileByEmail(cmd.Context(), strings.TrimSpace(email))
			} else {
				profile, err = app.users.GetUserProfile(cmd.Context())
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, profile)
			}
			return writeView(cmd, app, render.ProfileView{Profile: profile})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Look up another account by email")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newAccountDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := requireSession(cmd, app)
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := confirm(fmt.Sprintf("Delete account %s? This cannot be undone.", email))
				if err != nil {
					return err
				}
				if !confirmed {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return err
				}
			}

			if err := app.users.DeleteUser(cmd.Context()); err != nil {
				return err
			}
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", email)
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newAccountPaymentsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List payment history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			payments, err := app.users.GetPaymentHistory(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, payments)
			}
			return writeView(cmd, app, render.PaymentsView{Payments: payments})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.AddCommand(newAccountPaymentsRecordCmd(app))

	return cmd
}

func newAccountPaymentsRecordCmd(app *app) *cobra.Command {
	var request domain.AddPaymentRequest

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a completed payment against the account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := requireSession(cmd, app)
			if err != nil {
				return err
			}
			request.Email = email
			if err := domain.ValidateForm(request); err != nil {
				return err
			}

			if err := app.users.AddPayment(cmd.Context(), request); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded payment %s\n", request.StripePaymentID)
			return err
		},
	}

	cmd.Flags().StringVar(&request.Amount, "amount", "", "Amount paid")
	cmd.Flags().StringVar(&request.Currency, "currency", "usd", "Currency code")
	cmd.Flags().StringVar(&request.Status, "status", "succeeded", "Payment status")
	cmd.Flags().StringVar(&request.SubscriptionPlan, "plan", "", "Plan the payment was for")
	cmd.Flags().StringVar(&request.StripePaymentID, "provider-id", "", "Payment provider reference")

	return cmd
}

func newAccountPlanCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <name>",
		Short: "Assign a subscription plan to the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := domain.AddSubscriptionPlanRequest{SubscriptionPlan: strings.TrimSpace(args[0])}
			if err := domain.ValidateForm(request); err != nil {
				return err
			}

			if err := app.users.AddSubscriptionPlan(cmd.Context(), request); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Plan set to %s\n", request.SubscriptionPlan)
			return err
		},
	}
}

func newAccountPictureCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picture",
		Short: "Manage the profile picture",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <image>",
			Short: "Upload a new profile picture",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read profile picture: %w", err)
				}

				profile, err := app.users.UploadProfilePicture(cmd.Context(), domain.SourceImage{
					Filename: filepath.Base(args[0]),
					Data:     data,
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile picture updated: %s\n", valueOr(derefString(profile.ProfilePicture), "pending"))
				return err
			},
		},
		&cobra.Command{
			Use:   "remove",
			Short: "Remove the profile picture",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := app.users.RemoveProfilePicture(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Profile picture removed")
				return err
			},
		},
	)

	return cmd
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
