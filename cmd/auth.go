package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/dreamai-cli/internal/adapters/render"
	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := promptMissing(
				promptField{title: "Email", flag: "email", value: &email},
				promptField{title: "Password", flag: "password", value: &password, secret: true},
			); err != nil {
				return err
			}

			credentials := domain.Credentials{Email: strings.TrimSpace(email), Password: password}
			if err := domain.ValidateForm(credentials); err != nil {
				return err
			}

			if err := app.auth.Login(cmd.Context(), credentials.Email, credentials.Password); err != nil {
				return err
			}

			user := app.auth.User()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Email)
			return writeView(cmd, app, render.ProfileView{Profile: *user})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

func newSignupCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a Dream AI account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := promptMissing(
				promptField{title: "Name", flag: "name", value: &name},
				promptField{title: "Email", flag: "email", value: &email},
				promptField{title: "Password", flag: "password", value: &password, secret: true},
			); err != nil {
				return err
			}

			request := domain.SignupRequest{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Password: password}
			if err := domain.ValidateForm(request); err != nil {
				return err
			}

			resp, err := app.auth.Signup(cmd.Context(), request.Name, request.Email, request.Password)
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("signup: %s", valueOr(resp.Message, "account was not created"))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. Run `dream login` to sign in.\n", request.Email)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password, at least 8 characters (prompted when omitted)")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, app); err != nil {
				return err
			}

			if refresh {
				if err := app.auth.RefreshUserData(cmd.Context()); err != nil {
					return err
				}
			} else if err := app.auth.Init(cmd.Context()); err != nil {
				return err
			}

			user := app.auth.User()
			if user == nil {
				return fmt.Errorf("%w: stored session could not be restored, run `dream login`", domain.ErrNotAuthenticated)
			}
			if asJSON {
				return writeJSON(cmd, user)
			}
			return writeView(cmd, app, render.ProfileView{Profile: *user})
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the cached profile")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
