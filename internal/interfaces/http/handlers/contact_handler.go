package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"solene-digital.backend/internal/domain/contract"
	"solene-digital.backend/internal/domain/entities"
	"solene-digital.backend/internal/interfaces/http/response"
)

// ContactSubmitter stores a validated contact submission.
type ContactSubmitter interface {
	Submit(ctx context.Context, input entities.ContactInput) (*entities.Contact, error)
}

type ContactHandler struct {
	usecase ContactSubmitter
}

func NewContactHandler(usecase ContactSubmitter) *ContactHandler {
	return &ContactHandler{usecase: usecase}
}

// CreateContact stores a contact form submission.
// POST /api/contact
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var input entities.ContactInput
	if verr := bindJSON(c, &input); verr != nil {
		response.Validation(c, verr)
		return
	}
	if verr := contract.Parse(&input); verr != nil {
		response.Validation(c, verr)
		return
	}

	contact, err := h.usecase.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contract.CreateContact.SuccessStatus, contact)
}

// bindJSON decodes the request body into dst and reports unreadable
// payloads in the same shape as rule violations.
func bindJSON(c *gin.Context, dst interface{}) *contract.ValidationError {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return &contract.ValidationError{Message: "request body is required"}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &contract.ValidationError{
			Message: typeErr.Field + " must be a " + typeErr.Type.String(),
			Field:   typeErr.Field,
		}
	default:
		return &contract.ValidationError{Message: "invalid JSON body"}
	}
}
