package service

import (
	"context"

	"github.com/abacqu/people-api/internal/model"
	"github.com/abacqu/people-api/internal/repository"
	"github.com/abacqu/people-api/internal/server"
	"github.com/rs/zerolog"
)

// PersonService runs the People operations. Each call maps to exactly one
// repository call; errors are returned unchanged so the global error
// handler can classify them.
type PersonService struct {
	server *server.Server
	repo   repository.PersonRepository
}

func NewPersonService(s *server.Server, repo repository.PersonRepository) *PersonService {
	return &PersonService{
		server: s,
		repo:   repo,
	}
}

// ListPeople returns every stored person, never nil.
func (ps *PersonService) ListPeople(ctx context.Context) ([]model.Person, error) {
	people, err := ps.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if people == nil {
		people = []model.Person{}
	}
	return people, nil
}

func (ps *PersonService) CreatePerson(ctx context.Context, fields model.PersonFields) (*model.Person, error) {
	person, err := ps.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	ps.logger(ctx).Info().
		Str("event", "person_created").
		Str("person_id", person.ID.Hex()).
		Msg("person created")

	return person, nil
}

// UpdatePerson applies the provided fields. A nil person with a nil error
// means no document has the id.
func (ps *PersonService) UpdatePerson(ctx context.Context, id string, fields model.PersonFields) (*model.Person, error) {
	person, err := ps.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if person == nil {
		ps.logger(ctx).Debug().Str("person_id", id).Msg("update matched no person")
		return nil, nil
	}

	ps.logger(ctx).Info().
		Str("event", "person_updated").
		Str("person_id", id).
		Msg("person updated")

	return person, nil
}

// DeletePerson removes the person and returns it as it was stored. A nil
// person with a nil error means no document has the id.
func (ps *PersonService) DeletePerson(ctx context.Context, id string) (*model.Person, error) {
	person, err := ps.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if person == nil {
		ps.logger(ctx).Debug().Str("person_id", id).Msg("delete matched no person")
		return nil, nil
	}

	ps.logger(ctx).Info().
		Str("event", "person_deleted").
		Str("person_id", id).
		Msg("person deleted")

	return person, nil
}

// logger prefers the request-scoped logger stored by the context enhancer.
func (ps *PersonService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return ps.server.Logger
}
