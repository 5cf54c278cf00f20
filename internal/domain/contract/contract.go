// Package contract is the shared definition of the public HTTP API: which
// method and path serve each resource operation, which status codes they
// answer with, and how request payloads are validated. Both the server
// handlers and pkg/client read from here.
package contract

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Endpoint describes one resource operation.
type Endpoint struct {
	Name          string
	Method        string
	Path          string
	SuccessStatus int
	ErrorStatuses []int
}

var (
	CreateContact = Endpoint{
		Name:          "contacts.create",
		Method:        http.MethodPost,
		Path:          "/api/contact",
		SuccessStatus: http.StatusCreated,
		ErrorStatuses: []int{http.StatusBadRequest},
	}
	ListServices = Endpoint{
		Name:          "services.list",
		Method:        http.MethodGet,
		Path:          "/api/services",
		SuccessStatus: http.StatusOK,
	}
	ListTeam = Endpoint{
		Name:          "team.list",
		Method:        http.MethodGet,
		Path:          "/api/team",
		SuccessStatus: http.StatusOK,
	}
)

// Endpoints returns every operation in registration order.
func Endpoints() []Endpoint {
	return []Endpoint{CreateContact, ListServices, ListTeam}
}

// Lookup finds an endpoint by its dotted name.
func Lookup(name string) (Endpoint, bool) {
	for _, e := range Endpoints() {
		if e.Name == name {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Declares reports whether status is one of the documented responses.
func (e Endpoint) Declares(status int) bool {
	if status == e.SuccessStatus {
		return true
	}
	for _, s := range e.ErrorStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s %s %s", e.Name, e.Method, e.Path)
}

// BuildURL replaces ":key" segments in path with the escaped params values.
// Params without a matching placeholder are ignored.
func BuildURL(path string, params map[string]string) string {
	out := path
	for key, value := range params {
		placeholder := ":" + key
		if strings.Contains(out, placeholder) {
			out = strings.ReplaceAll(out, placeholder, url.PathEscape(value))
		}
	}
	return out
}
