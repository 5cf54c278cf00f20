package entities

import (
	"strings"
	"time"
)

type TeamMemberInput struct {
	Name     string `json:"name" yaml:"name" validate:"required,max=255"`
	Role     string `json:"role" yaml:"role" validate:"required,max=255"`
	Bio      string `json:"bio" yaml:"bio" validate:"required"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl" validate:"required,max=500"`
}

func (in *TeamMemberInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	in.Bio = strings.TrimSpace(in.Bio)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

type TeamMember struct {
	ID int64 `json:"id"`
	TeamMemberInput
	CreatedAt time.Time `json:"createdAt"`
}
