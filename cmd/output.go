package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/dreamai-cli/internal/adapters/render"
	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func writeView(cmd *cobra.Command, app *app, view render.View) error {
	rendered, err := app.renderer(view)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// envelopeData unwraps a successful envelope or turns its failure into an
// error.
func envelopeData[T any](env domain.Envelope[T], action string) (T, error) {
	var zero T
	if !env.Success {
		message := env.Error
		if message == "" {
			message = "request failed"
		}
		if message == domain.NotAuthenticatedMessage {
			return zero, fmt.Errorf("%s: %w", action, domain.ErrNotAuthenticated)
		}
		return zero, fmt.Errorf("%s: %s", action, message)
	}
	if env.Data == nil {
		return zero, nil
	}
	return *env.Data, nil
}

func requireSession(cmd *cobra.Command, app *app) (string, error) {
	email := app.session.CurrentUserEmail(cmd.Context())
	if email == "" {
		return "", fmt.Errorf("%w: run `dream login` first", domain.ErrNotAuthenticated)
	}
	return email, nil
}
