// Package repository handles all interactions with the document store.
//
// PersonRepository is the storage contract for the People resource. Every
// method performs exactly one storage operation and returns either a
// result or a *dberr.Error; nothing is retried. Two implementations exist:
// MongoDB for real deployments and go-memdb for local runs and tests.
package repository

import (
	"context"

	"github.com/abacqu/people-api/internal/model"
	"github.com/abacqu/people-api/internal/server"
)

// personEntity names People in error codes and messages.
const personEntity = "person"

// PersonRepository stores People documents.
//
// Update and Delete return (nil, nil) when no document has the id.
type PersonRepository interface {
	List(ctx context.Context) ([]model.Person, error)
	Create(ctx context.Context, fields model.PersonFields) (*model.Person, error)
	Update(ctx context.Context, id string, fields model.PersonFields) (*model.Person, error)
	Delete(ctx context.Context, id string) (*model.Person, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	People PersonRepository
}

// NewRepositories builds repositories for the configured driver.
//
// The memory driver needs nothing from the server; the mongo driver reads
// the collection from s.DB, which server.New connected.
func NewRepositories(s *server.Server) (*Repositories, error) {
	if s.Config.Database.IsMemory() {
		people, err := NewMemoryPersonRepository()
		if err != nil {
			return nil, err
		}
		return &Repositories{People: people}, nil
	}

	return &Repositories{
		People: NewMongoPersonRepository(s.DB.Collection(s.Config.Database.Collection)),
	}, nil
}
