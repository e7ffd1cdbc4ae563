package handler

import (
	"net/http"

	"github.com/abacqu/people-api/internal/model"
	"github.com/abacqu/people-api/internal/server"
	"github.com/abacqu/people-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PersonHandler struct {
	Handler
	personService *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

// Hello answers GET / with a plain-text liveness string.
func (h *PersonHandler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, "hello world")
}

func (h *PersonHandler) ListPeople(c echo.Context, _ *model.ListPeopleRequest) ([]model.Person, error) {
	return h.personService.ListPeople(c.Request().Context())
}

func (h *PersonHandler) CreatePerson(c echo.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	return h.personService.CreatePerson(c.Request().Context(), req.PersonFields)
}

// UpdatePerson answers with the updated person, or null when no person has
// the id.
func (h *PersonHandler) UpdatePerson(c echo.Context, req *model.UpdatePersonRequest) (*model.Person, error) {
	return h.personService.UpdatePerson(c.Request().Context(), req.ID, req.PersonFields)
}

// DeletePerson answers with the removed person, or null when no person has
// the id.
func (h *PersonHandler) DeletePerson(c echo.Context, req *model.DeletePersonRequest) (*model.Person, error) {
	return h.personService.DeletePerson(c.Request().Context(), req.ID)
}
