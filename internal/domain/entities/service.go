package entities

import (
	"strings"
	"time"
)

// ServiceInput is the insertable part of an agency service offering.
// Icon names a front-end icon and is not interpreted here.
type ServiceInput struct {
	Title       string `json:"title" yaml:"title" validate:"required,max=255"`
	Description string `json:"description" yaml:"description" validate:"required"`
	Icon        string `json:"icon" yaml:"icon" validate:"required,max=100"`
}

func (in *ServiceInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Icon = strings.TrimSpace(in.Icon)
}

type Service struct {
	ID int64 `json:"id"`
	ServiceInput
	CreatedAt time.Time `json:"createdAt"`
}
