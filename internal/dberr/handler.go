package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abacqu/people-api/internal/errs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"go.mongodb.org/mongo-driver/mongo"
)

// generateErrorCode creates application codes of the form <ENTITY>_<ACTION>,
// e.g. person + DuplicateKey => PERSON_ALREADY_EXISTS.
func generateErrorCode(entity string, code Code) string {
	if entity == "" {
		entity = "record"
	}

	action := "STORAGE_FAILED"
	switch code {
	case InvalidID:
		action = "INVALID_ID"
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	case Rejected:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", strings.ToUpper(entity), action)
}

// formatUserFriendlyMessage produces the client-facing message. Driver
// messages are never passed through.
func formatUserFriendlyMessage(dbErr *Error) string {
	entity := humanizeText(dbErr.Entity)
	if entity == "" {
		entity = "Record"
	}

	switch dbErr.Code {
	case InvalidID:
		return fmt.Sprintf("%s identifier is not valid", entity)
	case DuplicateKey:
		return fmt.Sprintf("A %s with this identifier already exists", strings.ToLower(entity))
	case Rejected:
		return fmt.Sprintf("The %s document was rejected by the database", strings.ToLower(entity))
	case Timeout:
		return "The database did not respond in time"
	case Network:
		return "The database is unreachable"
	default:
		return "An error occurred while processing your request"
	}
}

// humanizeText converts snake_case identifiers into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a storage error into an application error.
//
//   - *errs.HTTPError: returned unchanged
//   - *Error: 400 with an <ENTITY>_<ACTION> code; every storage failure is a 400
//   - mongo.ErrNoDocuments: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var dbErr *Error
	if errors.As(err, &dbErr) {
		errorCode := generateErrorCode(dbErr.Entity, dbErr.Code)
		userMessage := formatUserFriendlyMessage(dbErr)

		// Messages for client mistakes are safe to show as-is.
		override := dbErr.Code == InvalidID || dbErr.Code == DuplicateKey

		return errs.NewBadRequestError(userMessage, override, &errorCode, nil)
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
