package model

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ListPeopleRequest has no input; it exists so every route goes through
// the same bind/validate pipeline.
type ListPeopleRequest struct{}

func (r *ListPeopleRequest) Validate() error {
	return nil
}

// CreatePersonRequest is the POST /people body.
type CreatePersonRequest struct {
	PersonFields
}

func (r *CreatePersonRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePersonRequest is PUT /people/:id. The id comes from the path only;
// a body "_id" or "id" is never bound.
type UpdatePersonRequest struct {
	ID string `param:"id" json:"-" validate:"required,mongodb"`
	PersonFields
}

func (r *UpdatePersonRequest) Validate() error {
	return validate.Struct(r)
}

// DeletePersonRequest is DELETE /people/:id.
type DeletePersonRequest struct {
	ID string `param:"id" json:"-" validate:"required,mongodb"`
}

func (r *DeletePersonRequest) Validate() error {
	return validate.Struct(r)
}
