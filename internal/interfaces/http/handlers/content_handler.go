package handlers

import (
	"github.com/gin-gonic/gin"
	"solene-digital.backend/internal/domain/contract"
	"solene-digital.backend/internal/domain/entities"
	"solene-digital.backend/internal/domain/repositories"
	"solene-digital.backend/internal/interfaces/http/response"
)

// ContentHandler serves the read-only brochure content.
type ContentHandler struct {
	services repositories.ServiceRepository
	team     repositories.TeamMemberRepository
}

func NewContentHandler(services repositories.ServiceRepository, team repositories.TeamMemberRepository) *ContentHandler {
	return &ContentHandler{services: services, team: team}
}

// ListServices returns every service offering.
// GET /api/services
func (h *ContentHandler) ListServices(c *gin.Context) {
	items, err := h.services.GetServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Service{}
	}
	response.Success(c, contract.ListServices.SuccessStatus, items)
}

// ListTeamMembers returns every team member.
// GET /api/team
func (h *ContentHandler) ListTeamMembers(c *gin.Context) {
	items, err := h.team.GetTeamMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.TeamMember{}
	}
	response.Success(c, contract.ListTeam.SuccessStatus, items)
}
