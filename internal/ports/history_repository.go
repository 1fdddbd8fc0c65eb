package ports

import (
	"context"

	"github.com/bnema/dreamai-cli/internal/domain"
)

type HistoryRepository interface {
	Append(ctx context.Context, record domain.GenerationRecord) error
	List(ctx context.Context) ([]domain.GenerationRecord, error)
}
