package contract

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solene-digital.backend/internal/domain/entities"
)

func TestEndpoints_Definitions(t *testing.T) {
	require.Len(t, Endpoints(), 3)

	assert.Equal(t, http.MethodPost, CreateContact.Method)
	assert.Equal(t, "/api/contact", CreateContact.Path)
	assert.Equal(t, http.StatusCreated, CreateContact.SuccessStatus)
	assert.True(t, CreateContact.Declares(http.StatusBadRequest))
	assert.False(t, CreateContact.Declares(http.StatusNotFound))

	assert.Equal(t, "/api/services", ListServices.Path)
	assert.Equal(t, "/api/team", ListTeam.Path)
	assert.True(t, ListTeam.Declares(http.StatusOK))

	e, ok := Lookup("team.list")
	require.True(t, ok)
	assert.Equal(t, ListTeam, e)
	_, ok = Lookup("team.delete")
	assert.False(t, ok)

	assert.Equal(t, "contacts.create POST /api/contact", CreateContact.String())
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "/api/services", BuildURL("/api/services", nil))
	assert.Equal(t, "/api/items/42", BuildURL("/api/items/:id", map[string]string{"id": "42"}))
	assert.Equal(t, "/api/items/a%2Fb", BuildURL("/api/items/:id", map[string]string{"id": "a/b"}))
	assert.Equal(t, "/api/items/:id", BuildURL("/api/items/:id", map[string]string{"other": "x"}))
}

func TestParse_ContactFirstFailingField(t *testing.T) {
	in := &entities.ContactInput{Name: "", Email: "a@b.com", Message: "hi"}
	verr := Parse(in)
	require.NotNil(t, verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "name is required", verr.Message)

	in = &entities.ContactInput{Name: "Jane", Email: "", Message: ""}
	verr = Parse(in)
	require.NotNil(t, verr)
	assert.Equal(t, "email", verr.Field)
}

func TestParse_TrimsBeforeValidating(t *testing.T) {
	in := &entities.ContactInput{Name: "   ", Email: "a@b.com", Message: "hi"}
	verr := Parse(in)
	require.NotNil(t, verr)
	assert.Equal(t, "name", verr.Field)

	in = &entities.ContactInput{Name: "  Jane ", Email: " jane@x.com", Message: "Hello\n"}
	require.Nil(t, Parse(in))
	assert.Equal(t, "Jane", in.Name)
	assert.Equal(t, "jane@x.com", in.Email)
	assert.Equal(t, "Hello", in.Message)
}

func TestParse_MaxLength(t *testing.T) {
	in := &entities.ServiceInput{Title: "SEO", Description: "d", Icon: strings.Repeat("x", 101)}
	verr := Parse(in)
	require.NotNil(t, verr)
	assert.Equal(t, "icon", verr.Field)
	assert.Equal(t, "icon must be at most 100 characters", verr.Message)

	member := &entities.TeamMemberInput{Name: "A", Role: "B", Bio: "C", ImageURL: strings.Repeat("u", 501)}
	verr = Parse(member)
	require.NotNil(t, verr)
	assert.Equal(t, "imageUrl", verr.Field)
}

func TestParse_NilInput(t *testing.T) {
	verr := Parse(nil)
	require.NotNil(t, verr)
	assert.Empty(t, verr.Field)

	var in *entities.ContactInput
	verr = Parse(in)
	require.NotNil(t, verr)
	assert.Equal(t, "request body is required", verr.Error())
}

func TestValidate_NonStruct(t *testing.T) {
	verr := Validate("not a struct")
	require.NotNil(t, verr)
	assert.Equal(t, "invalid input", verr.Message)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "name: name is required", (&ValidationError{Message: "name is required", Field: "name"}).Error())
	assert.Equal(t, "bad", (&ValidationError{Message: "bad"}).Error())
}
