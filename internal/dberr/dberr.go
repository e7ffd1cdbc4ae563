// Package dberr specifically handles document store errors.
//
// Repositories wrap every failed storage call in an *Error that records the
// operation, the entity and a classified Code. HandleError turns those into
// the API's uniform errs.HTTPError.
package dberr

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Code classifies a storage failure.
type Code string

const (
	InvalidID    Code = "invalid_id"
	DuplicateKey Code = "duplicate_key"
	Rejected     Code = "rejected"
	Timeout      Code = "timeout"
	Network      Code = "network"
	Other        Code = "other"
)

// Op names the storage operation that failed.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpPing   Op = "ping"
)

// Error is a classified storage failure.
type Error struct {
	Op     Op
	Entity string
	Code   Code

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Entity, e.Code, e.driverErr)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Wrap classifies err and records where it happened. A nil err stays nil.
func Wrap(op Op, entity string, err error) error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	return &Error{
		Op:        op,
		Entity:    entity,
		Code:      MapCode(err),
		driverErr: err,
	}
}

// New creates an Error for failures detected before reaching the driver,
// e.g. an identifier that is not an ObjectID.
func New(op Op, entity string, code Code, err error) *Error {
	return &Error{Op: op, Entity: entity, Code: code, driverErr: err}
}

// MapCode classifies a MongoDB driver error.
func MapCode(err error) Code {
	var srvErr mongo.ServerError

	switch {
	case errors.Is(err, primitive.ErrInvalidHex):
		return InvalidID
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case mongo.IsNetworkError(err):
		return Network
	case errors.As(err, &srvErr):
		// Any other write or command error: the server refused the document
		// or the command (document validation, bad update operator, ...).
		return Rejected
	default:
		return Other
	}
}

// ErrCode reports the Code of err, or Other when err is not an *Error.
func ErrCode(err error) Code {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return Other
}
