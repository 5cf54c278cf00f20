package repositories

import (
	"context"

	"solene-digital.backend/internal/domain/entities"
	domainerrors "solene-digital.backend/internal/domain/errors"
	"solene-digital.backend/internal/infrastructure/models"
)

// GetTeamMembers returns every team member in insertion order.
func (s *Storage) GetTeamMembers(ctx context.Context) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, domainerrors.NewStorageError("list team members", err)
	}

	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		items = append(items, toTeamMemberEntity(&ms[i]))
	}
	return items, nil
}

func (s *Storage) CreateTeamMember(ctx context.Context, input entities.TeamMemberInput) (*entities.TeamMember, error) {
	m := &models.TeamMember{
		Name:     input.Name,
		Role:     input.Role,
		Bio:      input.Bio,
		ImageURL: input.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, domainerrors.NewStorageError("create team member", err)
	}
	return toTeamMemberEntity(m), nil
}

func toTeamMemberEntity(m *models.TeamMember) *entities.TeamMember {
	return &entities.TeamMember{
		ID: m.ID,
		TeamMemberInput: entities.TeamMemberInput{
			Name:     m.Name,
			Role:     m.Role,
			Bio:      m.Bio,
			ImageURL: m.ImageURL,
		},
		CreatedAt: m.CreatedAt,
	}
}
