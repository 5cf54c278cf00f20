package usecases

import (
	"context"
	_ "embed"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"solene-digital.backend/internal/domain/contract"
	"solene-digital.backend/internal/domain/entities"
	"solene-digital.backend/internal/domain/repositories"
	"solene-digital.backend/pkg/logger"
)

//go:embed seed/defaults.yaml
var defaultSeedYAML []byte

// SeedData is the default content inserted into empty tables.
type SeedData struct {
	Services []entities.ServiceInput    `yaml:"services"`
	Team     []entities.TeamMemberInput `yaml:"team"`
}

// SeedReport counts the rows a Seed call inserted.
type SeedReport struct {
	ServicesInserted int
	TeamInserted     int
}

// LoadSeedData parses a seed document and validates every entry.
func LoadSeedData(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	for i := range data.Services {
		if verr := contract.Parse(&data.Services[i]); verr != nil {
			return nil, fmt.Errorf("seed service %d: %w", i, verr)
		}
	}
	for i := range data.Team {
		if verr := contract.Parse(&data.Team[i]); verr != nil {
			return nil, fmt.Errorf("seed team member %d: %w", i, verr)
		}
	}
	return &data, nil
}

// DefaultSeedData returns the embedded default content.
func DefaultSeedData() (*SeedData, error) {
	return LoadSeedData(defaultSeedYAML)
}

type seedMetrics interface {
	Seeded(table string, n int)
}

// SeedUsecase fills the services and team tables when they are empty.
type SeedUsecase struct {
	services repositories.ServiceRepository
	team     repositories.TeamMemberRepository
	data     *SeedData
	metrics  seedMetrics
}

func NewSeedUsecase(
	services repositories.ServiceRepository,
	team repositories.TeamMemberRepository,
	data *SeedData,
	metrics seedMetrics,
) *SeedUsecase {
	return &SeedUsecase{
		services: services,
		team:     team,
		data:     data,
		metrics:  metrics,
	}
}

// Seed inserts the default services and team members, each list only when
// its table is empty. Tables that already hold rows are left untouched.
func (u *SeedUsecase) Seed(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	existingServices, err := u.services.GetServices(ctx)
	if err != nil {
		return report, err
	}
	if len(existingServices) == 0 {
		for _, svc := range u.data.Services {
			if _, err := u.services.CreateService(ctx, svc); err != nil {
				return report, err
			}
			report.ServicesInserted++
		}
		logger.Info(ctx, "Default services seeded", zap.Int("count", report.ServicesInserted))
	}

	existingTeam, err := u.team.GetTeamMembers(ctx)
	if err != nil {
		return report, err
	}
	if len(existingTeam) == 0 {
		for _, member := range u.data.Team {
			if _, err := u.team.CreateTeamMember(ctx, member); err != nil {
				return report, err
			}
			report.TeamInserted++
		}
		logger.Info(ctx, "Default team members seeded", zap.Int("count", report.TeamInserted))
	}

	if u.metrics != nil {
		u.metrics.Seeded("services", report.ServicesInserted)
		u.metrics.Seeded("team_members", report.TeamInserted)
	}
	return report, nil
}
