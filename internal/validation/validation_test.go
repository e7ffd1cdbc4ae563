package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abacqu/people-api/internal/errs"
	"github.com/abacqu/people-api/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body string, id string) echo.Context {
	req := httptest.NewRequest(method, "/people/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath("/people/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestBindAndValidateUpdate(t *testing.T) {
	c := newContext(http.MethodPut, `{"title":"Lead Engineer","_id":"ignored"}`, "507f1f77bcf86cd799439011")

	req := &model.UpdatePersonRequest{}
	require.NoError(t, BindAndValidate(c, req))

	assert.Equal(t, "507f1f77bcf86cd799439011", req.ID)
	require.NotNil(t, req.Title)
	assert.Equal(t, "Lead Engineer", *req.Title)
	assert.Nil(t, req.Name)
}

func TestBindAndValidateMalformedID(t *testing.T) {
	c := newContext(http.MethodDelete, "", "doesnotexist")

	err := BindAndValidate(c, &model.DeletePersonRequest{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.True(t, httpErr.Override)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "id", httpErr.Errors[0].Field)
	assert.Contains(t, httpErr.Errors[0].Error, "valid identifier")
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":`, "")

	err := BindAndValidate(c, &model.CreatePersonRequest{})
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.False(t, httpErr.Override)
	assert.NotEmpty(t, httpErr.Message)
}

func TestExtractCustomValidationErrors(t *testing.T) {
	msg, fieldErrors := extractValidationError(CustomValidationErrors{
		{Field: "name", Message: "must not be blank"},
	})

	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "must not be blank"}}, fieldErrors)
}
