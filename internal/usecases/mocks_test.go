package usecases_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"solene-digital.backend/internal/domain/entities"
)

// Mock Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateContact(ctx context.Context, input entities.ContactInput) (*entities.Contact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contact), args.Error(1)
}

func (m *MockStorage) GetServices(ctx context.Context) ([]*entities.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Service), args.Error(1)
}

func (m *MockStorage) CreateService(ctx context.Context, input entities.ServiceInput) (*entities.Service, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Service), args.Error(1)
}

func (m *MockStorage) GetTeamMembers(ctx context.Context) ([]*entities.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TeamMember), args.Error(1)
}

func (m *MockStorage) CreateTeamMember(ctx context.Context, input entities.TeamMemberInput) (*entities.TeamMember, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, contact *entities.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// recordingMailer keeps every email it is asked to send and fails for the
// addresses listed in failFor.
type recordingMailer struct {
	mu      sync.Mutex
	sent    []entities.Email
	failFor map[string]error
}

func (r *recordingMailer) Send(_ context.Context, email entities.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failFor[email.To]; ok {
		return err
	}
	r.sent = append(r.sent, email)
	return nil
}

func (r *recordingMailer) Sent() []entities.Email {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Email(nil), r.sent...)
}

type countingMetrics struct {
	mu            sync.Mutex
	contacts      int
	notifications map[string]int
	seeded        map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{notifications: map[string]int{}, seeded: map[string]int{}}
}

func (c *countingMetrics) ContactCreated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contacts++
}

func (c *countingMetrics) NotificationResult(kind string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := "sent"
	if err != nil {
		result = "failed"
	}
	c.notifications[kind+":"+result]++
}

func (c *countingMetrics) Seeded(table string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seeded[table] += n
}
