package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newMediaCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Download, share or post generated media",
	}

	cmd.AddCommand(
		newMediaActionCmd(app, "download", "Save media to the download directory", func(cmd *cobra.Command, media domain.MediaData, _ []string) error {
			return downloadMedia(cmd, app, media)
		}),
		newMediaActionCmd(app, "share", "Copy a media URL to the clipboard", func(cmd *cobra.Command, media domain.MediaData, _ []string) error {
			return shareMedia(cmd, app, media)
		}),
		newMediaActionCmd(app, "post", "Download media and prepare it for posting", func(cmd *cobra.Command, media domain.MediaData, platforms []string) error {
			return postMedia(cmd, app, media, platforms)
		}),
	)

	return cmd
}

func newMediaActionCmd(app *app, use, short string, action func(*cobra.Command, domain.MediaData, []string) error) *cobra.Command {
	var mediaType string
	var platforms []string

	cmd := &cobra.Command{
		Use:   use + " <url|history-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			media, err := resolveMedia(cmd, app, args[0], mediaType)
			if err != nil {
				return err
			}
			return action(cmd, media, platforms)
		},
	}

	cmd.Flags().StringVar(&mediaType, "type", "", "Media type (image|video), inferred from history or the URL when omitted")
	if use == "post" {
		cmd.Flags().StringSliceVar(&platforms, "platform", nil, "Platforms to post to (default instagram,twitter)")
	}

	return cmd
}

// resolveMedia accepts a URL, a data: URL or the id of a history record.
func resolveMedia(cmd *cobra.Command, app *app, ref string, rawType string) (domain.MediaData, error) {
	var mediaType domain.MediaType
	if rawType != "" {
		parsed, err := domain.ParseMediaType(rawType)
		if err != nil {
			return domain.MediaData{}, err
		}
		mediaType = parsed
	}

	if !strings.Contains(ref, ":") {
		records, err := app.history.List(cmd.Context())
		if err != nil {
			return domain.MediaData{}, fmt.Errorf("load history: %w", err)
		}
		for _, record := range records {
			if record.ID == ref {
				if mediaType == "" {
					mediaType = record.Type
				}
				return domain.MediaData{Type: mediaType, URL: record.URL, Title: record.Title, Description: record.Description}, nil
			}
		}
		return domain.MediaData{}, fmt.Errorf("no generation %q in history", ref)
	}

	if mediaType == "" {
		mediaType = inferMediaType(ref)
	}
	return domain.MediaData{Type: mediaType, URL: ref}, nil
}

func inferMediaType(url string) domain.MediaType {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "data:video/") || strings.HasSuffix(lower, ".mp4") || strings.HasSuffix(lower, ".webm") {
		return domain.MediaTypeVideo
	}
	return domain.MediaTypeImage
}

func downloadMedia(cmd *cobra.Command, app *app, media domain.MediaData) error {
	result, err := app.actions.Download(cmd.Context(), media)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", result.Path, result.Size)
	return err
}

func shareMedia(cmd *cobra.Command, app *app, media domain.MediaData) error {
	result, err := app.actions.Share(cmd.Context(), media)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Advice)
	return err
}

func postMedia(cmd *cobra.Command, app *app, media domain.MediaData, platforms []string) error {
	result, err := app.actions.PostTo(cmd.Context(), media, platforms)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Saved %s\n", result.Download.Path)
	if result.PublicURL != "" {
		_, _ = fmt.Fprintf(out, "Public URL: %s\n", result.PublicURL)
	}
	_, err = fmt.Fprintf(out, "Ready to post on %s\n", strings.Join(result.Platforms, ", "))
	return err
}
