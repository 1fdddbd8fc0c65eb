package ports

import (
	"context"

	"github.com/bnema/dreamai-cli/internal/domain"
)

type AuthBackend interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResponse, error)
	Signup(ctx context.Context, request domain.SignupRequest) (domain.SignupResponse, error)
}

type ProfileBackend interface {
	GetUserProfile(ctx context.Context) (domain.UserProfile, error)
}

type MediaBackend interface {
	GenerateImage(ctx context.Context, prompt string, settings domain.ImageSettings) domain.MediaEnvelope
	GenerateVideo(ctx context.Context, prompt string, settings domain.VideoSettings) domain.MediaEnvelope
	GenerateImageToImage(ctx context.Context, image *domain.SourceImage, prompt string, settings domain.ImageToImageSettings) domain.MediaEnvelope
	GenerateImageToVideo(ctx context.Context, image *domain.SourceImage, prompt string, settings domain.ImageToVideoSettings) domain.MediaEnvelope
	CheckGenerationStatus(ctx context.Context, id string) domain.MediaEnvelope
}
