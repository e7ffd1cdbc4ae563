package service

import (
	"context"
	"errors"
	"testing"

	"github.com/abacqu/people-api/internal/dberr"
	"github.com/abacqu/people-api/internal/model"
	"github.com/abacqu/people-api/internal/repository"
	"github.com/abacqu/people-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type nilListRepo struct {
	repository.PersonRepository
}

func (nilListRepo) List(context.Context) ([]model.Person, error) {
	return nil, nil
}

type failingRepo struct {
	repository.PersonRepository
	err error
}

func (f failingRepo) Create(context.Context, model.PersonFields) (*model.Person, error) {
	return nil, f.err
}

func newTestService(t *testing.T, repo repository.PersonRepository) *PersonService {
	t.Helper()
	logger := zerolog.Nop()
	return NewPersonService(&server.Server{Logger: &logger}, repo)
}

func TestListPeopleNeverNil(t *testing.T) {
	people, err := newTestService(t, nilListRepo{}).ListPeople(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)
}

func TestCreatePersonPassesStorageErrorThrough(t *testing.T) {
	storageErr := dberr.New(dberr.OpCreate, "person", dberr.Network, errors.New("connection reset"))

	_, err := newTestService(t, failingRepo{err: storageErr}).CreatePerson(context.Background(), model.PersonFields{})
	assert.ErrorIs(t, err, storageErr)
}

func TestPersonLifecycle(t *testing.T) {
	repo, err := repository.NewMemoryPersonRepository()
	require.NoError(t, err)
	svc := newTestService(t, repo)

	// The request-scoped logger travels in the context.
	ctx := zerolog.Nop().WithContext(context.Background())

	name := "Ada"
	created, err := svc.CreatePerson(ctx, model.PersonFields{Name: &name})
	require.NoError(t, err)

	title := "Engineer"
	updated, err := svc.UpdatePerson(ctx, created.ID.Hex(), model.PersonFields{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Engineer", *updated.Title)

	deleted, err := svc.DeletePerson(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, deleted)

	again, err := svc.DeletePerson(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, again)

	missing, err := svc.UpdatePerson(ctx, primitive.NewObjectID().Hex(), model.PersonFields{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
