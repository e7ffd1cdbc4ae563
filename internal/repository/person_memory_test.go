package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/abacqu/people-api/internal/dberr"
	"github.com/abacqu/people-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string {
	return &s
}

func newMemoryRepo(t *testing.T) *MemoryPersonRepository {
	t.Helper()
	repo, err := NewMemoryPersonRepository()
	require.NoError(t, err)
	return repo
}

func TestMemoryListEmptyIsNotNil(t *testing.T) {
	people, err := newMemoryRepo(t).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)
}

func TestMemoryCreateThenList(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	created, err := repo.Create(ctx, model.PersonFields{Name: strPtr("Ada"), Title: strPtr("Engineer")})
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Ada", *created.Name)
	assert.Nil(t, created.Image)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, *created, people[0])
}

func TestMemoryListKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, model.PersonFields{Name: strPtr(name)})
		require.NoError(t, err)
	}

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "first", *people[0].Name)
	assert.Equal(t, "third", *people[2].Name)
}

func TestMemoryUpdateSetsOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	created, err := repo.Create(ctx, model.PersonFields{Name: strPtr("Ada"), Title: strPtr("Engineer")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID.Hex(), model.PersonFields{Title: strPtr("Lead Engineer")})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ada", *updated.Name)
	assert.Equal(t, "Lead Engineer", *updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Lead Engineer", *people[0].Title)
}

func TestMemoryUpdateAcceptsUppercaseHex(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	created, err := repo.Create(ctx, model.PersonFields{Name: strPtr("Ada")})
	require.NoError(t, err)

	upper := ""
	for _, c := range created.ID.Hex() {
		if c >= 'a' && c <= 'f' {
			c -= 'a' - 'A'
		}
		upper += string(c)
	}

	updated, err := repo.Update(ctx, upper, model.PersonFields{Image: strPtr("https://example.com/ada.png")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "https://example.com/ada.png", *updated.Image)
}

func TestMemoryMissingIDReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	missing := primitive.NewObjectID().Hex()

	updated, err := repo.Update(ctx, missing, model.PersonFields{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestMemoryMalformedIDIsInvalidID(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	_, err := repo.Update(ctx, "doesnotexist", model.PersonFields{})
	assert.Equal(t, dberr.InvalidID, dberr.ErrCode(err))

	_, err = repo.Delete(ctx, "doesnotexist")
	assert.Equal(t, dberr.InvalidID, dberr.ErrCode(err))
}

func TestMemoryDeleteReturnsRemovedPerson(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	keep, err := repo.Create(ctx, model.PersonFields{Name: strPtr("keep")})
	require.NoError(t, err)
	gone, err := repo.Create(ctx, model.PersonFields{Name: strPtr("gone")})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, gone.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, *gone, *deleted)

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, keep.ID, people[0].ID)
}

func TestMemoryConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, model.PersonFields{Name: strPtr("concurrent")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	people, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 50)
}

func TestMemoryUpdateUnsetsNullFields(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	created, err := repo.Create(ctx, model.PersonFields{Name: strPtr("Ada"), Title: strPtr("Engineer")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID.Hex(), model.PersonFields{Unset: []string{"title"}})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ada", *updated.Name)
	assert.Nil(t, updated.Title)
}
