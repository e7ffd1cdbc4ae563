// Package model holds the People record and the request payloads that
// the handlers bind and validate.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person is a stored People document.
//
// Optional fields are pointers: nil means the field was never set and is
// omitted from JSON and BSON, while a pointer to "" is a stored empty
// string.
type Person struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      *string            `json:"name,omitempty" bson:"name,omitempty"`
	Image     *string            `json:"image,omitempty" bson:"image,omitempty"`
	Title     *string            `json:"title,omitempty" bson:"title,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PersonFields is the client-writable part of a Person.
//
// Unset lists the fields the body sent as an explicit null. An update
// removes them from the document; a missing field is left untouched.
type PersonFields struct {
	Name  *string  `json:"name" bson:"name,omitempty"`
	Image *string  `json:"image" bson:"image,omitempty"`
	Title *string  `json:"title" bson:"title,omitempty"`
	Unset []string `json:"-" bson:"-"`
}

// UnmarshalJSON tells a null field apart from a missing one. Unknown keys
// are ignored.
func (f *PersonFields) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*f = PersonFields{}
	fields := []struct {
		key string
		dst **string
	}{
		{"name", &f.Name},
		{"image", &f.Image},
		{"title", &f.Title},
	}

	for _, field := range fields {
		value, ok := raw[field.key]
		if !ok {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			f.Unset = append(f.Unset, field.key)
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return fmt.Errorf("field %s: %w", field.key, err)
		}
		*field.dst = &s
	}

	return nil
}

// IsEmpty reports whether no field is set or unset.
func (f PersonFields) IsEmpty() bool {
	return f.Name == nil && f.Image == nil && f.Title == nil && len(f.Unset) == 0
}

// NewPerson builds a Person from fields with a fresh identifier and both
// timestamps set to now.
func NewPerson(fields PersonFields, now time.Time) Person {
	return Person{
		ID:        primitive.NewObjectIDFromTimestamp(now),
		Name:      fields.Name,
		Image:     fields.Image,
		Title:     fields.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply copies the set fields onto p, clears the unset ones and bumps
// UpdatedAt. Fields absent from both are left untouched.
func (p *Person) Apply(fields PersonFields, now time.Time) {
	if fields.Name != nil {
		p.Name = fields.Name
	}
	if fields.Image != nil {
		p.Image = fields.Image
	}
	if fields.Title != nil {
		p.Title = fields.Title
	}
	for _, key := range fields.Unset {
		switch key {
		case "name":
			p.Name = nil
		case "image":
			p.Image = nil
		case "title":
			p.Title = nil
		}
	}
	p.UpdatedAt = now
}

// Now returns the current time the way the document store keeps it: UTC
// with millisecond precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
