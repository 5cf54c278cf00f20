package repositories

import (
	"context"

	"solene-digital.backend/internal/domain/entities"
	domainerrors "solene-digital.backend/internal/domain/errors"
	"solene-digital.backend/internal/infrastructure/models"
)

// GetServices returns every service in insertion order.
func (s *Storage) GetServices(ctx context.Context) ([]*entities.Service, error) {
	var ms []models.Service
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, domainerrors.NewStorageError("list services", err)
	}

	items := make([]*entities.Service, 0, len(ms))
	for i := range ms {
		items = append(items, toServiceEntity(&ms[i]))
	}
	return items, nil
}

func (s *Storage) CreateService(ctx context.Context, input entities.ServiceInput) (*entities.Service, error) {
	m := &models.Service{
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, domainerrors.NewStorageError("create service", err)
	}
	return toServiceEntity(m), nil
}

func toServiceEntity(m *models.Service) *entities.Service {
	return &entities.Service{
		ID: m.ID,
		ServiceInput: entities.ServiceInput{
			Title:       m.Title,
			Description: m.Description,
			Icon:        m.Icon,
		},
		CreatedAt: m.CreatedAt,
	}
}
