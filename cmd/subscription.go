package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/dreamai-cli/internal/adapters/render"
	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *app) *cobra.Command {
	var duration string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List subscription plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var bucket domain.Duration
			if duration != "" {
				parsed, err := domain.ParseDuration(duration)
				if err != nil {
					return err
				}
				bucket = parsed
			}

			plans, err := envelopeData(app.subscriptions.GetPlans(cmd.Context(), bucket), "list plans")
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, plans)
			}
			return writeView(cmd, app, render.PlansView{Plans: plans, Duration: bucket})
		},
	}

	cmd.Flags().StringVar(&duration, "duration", string(domain.DurationMonthly), "Billing period (weekly|monthly|yearly, empty for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newSubscriptionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Manage the account subscription",
	}

	cmd.AddCommand(
		newSubscriptionStatusCmd(app),
		newSubscriptionCheckoutCmd(app),
		newSubscriptionCancelCmd(app),
		newSubscriptionValidityCmd(app),
	)

	return cmd
}

func newSubscriptionStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show subscription status and daily usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := envelopeData(app.subscriptions.GetStatus(cmd.Context()), "subscription status")
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, status)
			}
			return writeView(cmd, app, render.SubscriptionView{Status: status})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newSubscriptionCheckoutCmd(app *app) *cobra.Command {
	var plan string
	var duration string
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Start a checkout session for a plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := domain.CheckoutRequest{
				PlanType: strings.TrimSpace(plan),
				Duration: domain.Duration(strings.ToLower(strings.TrimSpace(duration))),
			}
			if err := domain.ValidateForm(request); err != nil {
				return err
			}

			session, err := envelopeData(app.subscriptions.CreateCheckoutSession(cmd.Context(), request), "create checkout session")
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Checkout: %s\n", session.CheckoutURL)
			if noBrowser {
				return nil
			}
			if err := app.openURL(session.CheckoutURL); err != nil {
				app.log.WithError(err).Warn("open checkout url")
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Open the URL above in a browser to finish.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan name")
	cmd.Flags().StringVar(&duration, "duration", string(domain.DurationMonthly), "Billing period (weekly|monthly|yearly)")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Print the checkout URL without opening it")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newSubscriptionCancelCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the active subscription",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				confirmed, err := confirm("Cancel your subscription?")
				if err != nil {
					return err
				}
				if !confirmed {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return err
				}
			}

			message, err := envelopeData(app.subscriptions.Cancel(cmd.Context()), "cancel subscription")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newSubscriptionValidityCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validity",
		Short: "Check whether the subscription is still valid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			validity, err := envelopeData(app.subscriptions.CheckValidity(cmd.Context()), "check subscription validity")
			if err != nil {
				return err
			}

			line := "Subscription is invalid"
			switch {
			case validity.Valid && validity.EndDate != "":
				line = "Subscription is valid until " + validity.EndDate
			case validity.Valid:
				line = "Subscription is valid"
			case validity.EndDate != "":
				line += " (ended " + validity.EndDate + ")"
			}
			if validity.Message != "" {
				line += ": " + validity.Message
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}
