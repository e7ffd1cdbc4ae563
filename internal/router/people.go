package router

import (
	"net/http"

	"github.com/abacqu/people-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerPeopleRoutes(r *echo.Echo, h *handler.Handlers) {
	people := r.Group("/people")

	people.GET("", handler.Handle(h.Person.Handler, h.Person.ListPeople, http.StatusOK))
	people.POST("", handler.Handle(h.Person.Handler, h.Person.CreatePerson, http.StatusOK))
	people.PUT("/:id", handler.Handle(h.Person.Handler, h.Person.UpdatePerson, http.StatusOK))
	people.DELETE("/:id", handler.Handle(h.Person.Handler, h.Person.DeletePerson, http.StatusOK))
}
