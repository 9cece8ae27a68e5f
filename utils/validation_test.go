package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waitlist-simple/apperrors"
)

type slugPayload struct {
	Slug string `json:"slug" binding:"required,min=2,max=50,slug"`
}

func TestRegisterValidators_SlugRule(t *testing.T) {
	RegisterValidators()

	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		{"plain", "my-project", true},
		{"digits", "launch2024", true},
		{"uppercase", "My-Project", false},
		{"spaces", "my project", false},
		{"underscore", "my_project", false},
		{"too short", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&slugPayload{Slug: tt.slug})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBindingError_FieldMessages(t *testing.T) {
	RegisterValidators()

	err := binding.Validator.ValidateStruct(&slugPayload{Slug: "Bad Slug!"})
	require.Error(t, err)

	appErr := apperrors.From(BindingError(err))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "slug", appErr.Fields[0].Field)
	assert.Equal(t, "Slug can only contain lowercase letters, numbers, and hyphens", appErr.Fields[0].Message)
}

func TestBindingError_NonValidatorError(t *testing.T) {
	appErr := apperrors.From(BindingError(assert.AnError))
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "body", appErr.Fields[0].Field)
}
