package cmd

import (
	"fmt"

	"github.com/bnema/dreamai-cli/internal/adapters/render"
	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var limit int
	var mediaType string
	var all bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generated media, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.history.List(cmd.Context())
			if err != nil {
				return err
			}

			owner := ""
			if !all {
				owner = app.session.CurrentUserEmail(cmd.Context())
			}
			var filterType domain.MediaType
			if mediaType != "" {
				filterType, err = domain.ParseMediaType(mediaType)
				if err != nil {
					return err
				}
			}
			records = filterRecords(records, owner, filterType, limit)

			if asJSON {
				return writeJSON(cmd, records)
			}
			return writeView(cmd, app, render.HistoryView{Records: records, Now: app.now()})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum records to show (0 for all)")
	cmd.Flags().StringVar(&mediaType, "type", "", "Only show image or video")
	cmd.Flags().BoolVar(&all, "all", false, "Include records of every account on this machine")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func filterRecords(records []domain.GenerationRecord, owner string, mediaType domain.MediaType, limit int) []domain.GenerationRecord {
	out := make([]domain.GenerationRecord, 0, len(records))
	for _, record := range records {
		if owner != "" && record.Owner != owner {
			continue
		}
		if mediaType != "" && record.Type != mediaType {
			continue
		}
		out = append(out, record)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func newJobCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Inspect queued generations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status <id>",
		Short: "Check a queued generation once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope := app.generator.Status(cmd.Context(), args[0])
			if envelope.IsPending() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Job %s is still pending\n", args[0])
				return err
			}

			asset, err := envelopeData(envelope, "job status")
			if err != nil {
				return err
			}
			return writeMedia(cmd, domain.MediaData{Type: domain.MediaTypeImage, URL: asset.URL, Title: asset.Title, Description: asset.Description})
		},
	})

	return cmd
}
