package repositories

import (
	"context"

	"solene-digital.backend/internal/domain/entities"
	domainerrors "solene-digital.backend/internal/domain/errors"
	"solene-digital.backend/internal/infrastructure/models"
)

func (s *Storage) CreateContact(ctx context.Context, input entities.ContactInput) (*entities.Contact, error) {
	m := &models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, domainerrors.NewStorageError("create contact", err)
	}
	return toContactEntity(m), nil
}

func toContactEntity(m *models.Contact) *entities.Contact {
	return &entities.Contact{
		ID: m.ID,
		ContactInput: entities.ContactInput{
			Name:    m.Name,
			Email:   m.Email,
			Message: m.Message,
		},
		CreatedAt: m.CreatedAt,
	}
}
