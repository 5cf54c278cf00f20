package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"solene-digital.backend/internal/domain/entities"
)

type contactSubmitterStub struct {
	calls []entities.ContactInput
	err   error
}

func (s *contactSubmitterStub) Submit(_ context.Context, input entities.ContactInput) (*entities.Contact, error) {
	s.calls = append(s.calls, input)
	if s.err != nil {
		return nil, s.err
	}
	return &entities.Contact{
		ID:           int64(len(s.calls)),
		ContactInput: input,
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil
}

type contentRepoStub struct {
	services []*entities.Service
	team     []*entities.TeamMember
	err      error
}

func (s *contentRepoStub) GetServices(context.Context) ([]*entities.Service, error) {
	return s.services, s.err
}

func (s *contentRepoStub) CreateService(_ context.Context, input entities.ServiceInput) (*entities.Service, error) {
	svc := &entities.Service{ID: int64(len(s.services) + 1), ServiceInput: input}
	s.services = append(s.services, svc)
	return svc, s.err
}

func (s *contentRepoStub) GetTeamMembers(context.Context) ([]*entities.TeamMember, error) {
	return s.team, s.err
}

func (s *contentRepoStub) CreateTeamMember(_ context.Context, input entities.TeamMemberInput) (*entities.TeamMember, error) {
	m := &entities.TeamMember{ID: int64(len(s.team) + 1), TeamMemberInput: input}
	s.team = append(s.team, m)
	return m, s.err
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
