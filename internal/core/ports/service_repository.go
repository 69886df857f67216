package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

type ServiceRepository interface {
	List(ctx context.Context, category string) ([]domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	Insert(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
}
