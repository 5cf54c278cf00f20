package repositories

import (
	"context"

	"solene-digital.backend/internal/domain/entities"
)

type ContactRepository interface {
	CreateContact(ctx context.Context, input entities.ContactInput) (*entities.Contact, error)
}

type ServiceRepository interface {
	GetServices(ctx context.Context) ([]*entities.Service, error)
	CreateService(ctx context.Context, input entities.ServiceInput) (*entities.Service, error)
}

type TeamMemberRepository interface {
	GetTeamMembers(ctx context.Context) ([]*entities.TeamMember, error)
	CreateTeamMember(ctx context.Context, input entities.TeamMemberInput) (*entities.TeamMember, error)
}

// Storage is the resource-oriented facade over the backing store. It is the
// only writer of records. Failures are reported as *errors.StorageError.
type Storage interface {
	ContactRepository
	ServiceRepository
	TeamMemberRepository
}
