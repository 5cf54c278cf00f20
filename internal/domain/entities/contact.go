package entities

import (
	"strings"
	"time"
)

// ContactInput is the insertable part of a contact-form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

// Normalize trims surrounding whitespace from every field.
func (in *ContactInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
}

// Contact is a stored submission. ID and CreatedAt are assigned by the store
// and never change afterwards.
type Contact struct {
	ID int64 `json:"id"`
	ContactInput
	CreatedAt time.Time `json:"createdAt"`
}
