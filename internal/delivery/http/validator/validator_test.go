package validator

import (
	"testing"

	domainerrors "terraverde/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name   string `validate:"required,min=1,max=100"`
	Rating int    `validate:"omitempty,min=1,max=5"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Name: "Milho", Rating: 4})

	require.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Rating: 4})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestValidate_BoundaryViolation(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Name: "Milho", Rating: 6})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}
