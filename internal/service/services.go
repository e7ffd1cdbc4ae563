// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data.
package service

import (
	"github.com/abacqu/people-api/internal/repository"
	"github.com/abacqu/people-api/internal/server"
)

type Services struct {
	Person *PersonService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Person: NewPersonService(s, repos.People),
	}, nil
}
