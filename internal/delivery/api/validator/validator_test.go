package validator

import (
	"testing"

	domainerrors "launchpad/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Label string `json:"label" validate:"required"`
}

type sample struct {
	Name   string   `json:"name" validate:"required,max=5"`
	Stage  string   `json:"stage" validate:"omitempty,oneof=Idea MVP"`
	Items  []item   `json:"items" validate:"max=2,dive"`
	Hidden string   `json:"-"`
	Tags   []string `json:"tags"`
}

func TestValidator_FieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Name: "toolong", Stage: "Unicorn", Items: []item{{Label: ""}}})
	require.Error(t, err)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)
	assert.ElementsMatch(t, []domainerrors.FieldError{
		{Field: "name", Rule: "max", Message: "must be at most 5 characters"},
		{Field: "stage", Rule: "oneof", Message: "must be one of: Idea MVP"},
		{Field: "items[0].label", Rule: "required", Message: "is required"},
	}, fields)
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Name: "ok"}))
}

type titled struct {
	Title   string  `json:"title" validate:"required,notblank,max=20"`
	Rename  *string `json:"rename" validate:"omitempty,notblank"`
	Comment string  `json:"comment" validate:"omitempty,notblank"`
}

func TestValidator_NotBlank(t *testing.T) {
	v := New()
	blank := "  \t "

	err := v.Validate(&titled{Title: "   ", Rename: &blank})
	require.Error(t, err)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)
	assert.ElementsMatch(t, []domainerrors.FieldError{
		{Field: "title", Rule: "notblank", Message: "must not be blank"},
		{Field: "rename", Rule: "notblank", Message: "must not be blank"},
	}, fields)

	name := "launch"
	assert.NoError(t, v.Validate(&titled{Title: " ok ", Rename: &name}))
}
