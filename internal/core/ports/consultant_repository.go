package ports

import (
	"context"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// ConsultantRepository persists consultant records.
type ConsultantRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Consultant, error)
	FindByAuthID(ctx context.Context, authID string) (*domain.Consultant, error)
	Insert(ctx context.Context, c *domain.Consultant) error
}
