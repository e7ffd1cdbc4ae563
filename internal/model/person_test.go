package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonFieldsNullIsUnset(t *testing.T) {
	var req UpdatePersonRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"title":"Lead","_id":"x","extra":1}`), &req))

	assert.Nil(t, req.Name)
	assert.Nil(t, req.Image)
	require.NotNil(t, req.Title)
	assert.Equal(t, "Lead", *req.Title)
	assert.Equal(t, []string{"name"}, req.Unset)
	assert.Empty(t, req.ID)
	assert.False(t, req.IsEmpty())
}

func TestPersonFieldsRejectsNonString(t *testing.T) {
	var req CreatePersonRequest
	err := json.Unmarshal([]byte(`{"name":42}`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestApplyClearsUnsetFields(t *testing.T) {
	name, title := "Ada", "Engineer"
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p := NewPerson(PersonFields{Name: &name, Title: &title}, created)

	later := created.Add(time.Minute)
	p.Apply(PersonFields{Unset: []string{"title"}}, later)

	require.NotNil(t, p.Name)
	assert.Equal(t, "Ada", *p.Name)
	assert.Nil(t, p.Title)
	assert.Equal(t, later, p.UpdatedAt)
	assert.Equal(t, created, p.CreatedAt)
}
