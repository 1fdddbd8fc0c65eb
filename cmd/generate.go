package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dreamai-cli/internal/application"
	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	source          string
	aspect          string
	style           string
	guidance        float64
	steps           int
	exclude         string
	autoTitle       bool
	autoDescription bool
	download        bool
	share           bool
	post            bool
	platforms       []string
	asJSON          bool
}

func newGenerateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate media from a prompt",
	}

	cmd.AddCommand(
		newGenerateMediaCmd(app, domain.MediaTypeImage),
		newGenerateMediaCmd(app, domain.MediaTypeVideo),
	)

	return cmd
}

func newGenerateMediaCmd(app *app, mediaType domain.MediaType) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   string(mediaType) + " [prompt...]",
		Short: fmt.Sprintf("Generate %s from text, or from a source image with --source", articleFor(mediaType)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd, app); err != nil {
				return err
			}

			request := domain.GenerationRequest{
				Type:        mediaType,
				Prompt:      strings.TrimSpace(strings.Join(args, " ")),
				SourceImage: flags.source,
				Settings: domain.GenerationSettings{
					Style:           flags.style,
					AspectRatio:     flags.aspect,
					AutoTitle:       flags.autoTitle,
					AutoDescription: flags.autoDescription,
					GuidanceScale:   flags.guidance,
					InferenceSteps:  flags.steps,
					ExcludeText:     flags.exclude,
				},
			}
			if request.Prompt == "" && request.SourceImage == "" {
				return fmt.Errorf("generate %s: %w", mediaType, domain.ErrPromptRequired)
			}

			media, err := runGeneration(cmd, app, request, !flags.asJSON)
			if err != nil {
				return err
			}

			if flags.asJSON {
				if err := writeJSON(cmd, media); err != nil {
					return err
				}
			} else if err := writeMedia(cmd, media); err != nil {
				return err
			}

			return runFollowUps(cmd, app, media, flags)
		},
	}

	cmd.Flags().StringVar(&flags.source, "source", "", "Source image for image-to-"+string(mediaType))
	cmd.Flags().StringVar(&flags.aspect, "aspect", "", "Aspect ratio (square|landscape|portrait|wide|tall or W:H)")
	cmd.Flags().StringVar(&flags.style, "style", "", "Style hint")
	cmd.Flags().Float64Var(&flags.guidance, "guidance", 0, "Guidance scale as shown in the web UI (0 keeps the default)")
	cmd.Flags().IntVar(&flags.steps, "steps", 0, "Inference steps (0 keeps the default)")
	cmd.Flags().StringVar(&flags.exclude, "exclude", "", "Things to keep out of the result")
	cmd.Flags().BoolVar(&flags.autoTitle, "auto-title", false, "Derive the title from the prompt")
	cmd.Flags().BoolVar(&flags.autoDescription, "auto-description", false, "Use the prompt as description")
	cmd.Flags().BoolVar(&flags.download, "download", false, "Save the result to the download directory")
	cmd.Flags().BoolVar(&flags.share, "share", false, "Copy the result URL to the clipboard")
	cmd.Flags().BoolVar(&flags.post, "post", false, "Prepare the result for posting")
	cmd.Flags().StringSliceVar(&flags.platforms, "platform", nil, "Platforms to post to (default instagram,twitter)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Output JSON")

	return cmd
}

func runGeneration(cmd *cobra.Command, app *app, request domain.GenerationRequest, spin bool) (domain.MediaData, error) {
	job := app.generator.Trigger(request)

	var media domain.MediaData
	run := func(ctx context.Context) error {
		var err error
		media, err = job.Run(ctx)
		return err
	}

	var err error
	if spin {
		err = runGenerationSpinner(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Generating %s...", request.Type), run)
	} else {
		err = run(cmd.Context())
	}
	if err != nil {
		if application.IsGenerationFailure(err) {
			return domain.MediaData{}, fmt.Errorf("%s: %w", application.GenerationFailedMessage, err)
		}
		return domain.MediaData{}, err
	}

	return media, nil
}

func writeMedia(cmd *cobra.Command, media domain.MediaData) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, valueOr(media.Title, domain.DefaultTitle(media.Type)))
	if media.Description != "" {
		_, _ = fmt.Fprintln(out, media.Description)
	}
	_, err := fmt.Fprintln(out, media.URL)
	return err
}

// runFollowUps performs the requested actions independently; one failing
// does not skip the others.
func runFollowUps(cmd *cobra.Command, app *app, media domain.MediaData, flags generateFlags) error {
	var errs []error

	if flags.download {
		errs = append(errs, downloadMedia(cmd, app, media))
	}
	if flags.share {
		errs = append(errs, shareMedia(cmd, app, media))
	}
	if flags.post {
		errs = append(errs, postMedia(cmd, app, media, flags.platforms))
	}

	return errors.Join(errs...)
}

func articleFor(mediaType domain.MediaType) string {
	if mediaType == domain.MediaTypeImage {
		return "an image"
	}
	return "a video"
}
