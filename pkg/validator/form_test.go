package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proveo/clientkit/pkg/validator"
)

func TestValidateForm_Valid(t *testing.T) {
	t.Parallel()
	fields := map[string]string{
		"name":        "  Panaderia La Espiga  ",
		"address":     "Calle 5 de Mayo 12",
		"description": "<p>Pan <b>artesanal</b></p><script>x()</script>",
		"email":       "  OWNER@SHOP.MX ",
		"phone":       "+52 (55) 1234-5678 ext",
		"website":     "https://laespiga.mx",
		"notes":       "open <late>",
	}

	sanitized, err := validator.ValidateForm(fields)
	require.NoError(t, err)

	assert.Equal(t, "Panaderia La Espiga", sanitized["name"])
	assert.Equal(t, "Calle 5 de Mayo 12", sanitized["address"])
	assert.Equal(t, "<p>Pan <b>artesanal</b></p>", sanitized["description"])
	assert.Equal(t, "owner@shop.mx", sanitized["email"])
	assert.Equal(t, "+52 (55) 1234-5678 ", sanitized["phone"])
	assert.Equal(t, "https://laespiga.mx", sanitized["website"])
	assert.Equal(t, "open", sanitized["notes"])
}

func TestValidateForm_MissingRequired(t *testing.T) {
	t.Parallel()
	_, err := validator.ValidateForm(map[string]string{
		"name":        "",
		"address":     "somewhere",
		"description": "text",
	})
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidateForm_SanitizerEmptiedRequiredFieldIsError(t *testing.T) {
	t.Parallel()
	// A name consisting solely of markup silently collapses to "" at
	// the sanitizer level; at the form boundary it must be an error.
	_, err := validator.ValidateForm(map[string]string{
		"name":        "<br><hr/>",
		"address":     "somewhere",
		"description": "text",
	})
	require.Error(t, err)
	assert.True(t, validator.ExtractValidationErrors(err).Has("name"))
}

func TestValidateForm_InvalidEmail(t *testing.T) {
	t.Parallel()
	_, err := validator.ValidateForm(map[string]string{
		"name":        "shop",
		"address":     "street",
		"description": "desc",
		"email":       "not-an-email",
	})
	require.Error(t, err)
	assert.True(t, validator.ExtractValidationErrors(err).Has("email"))
}

func TestValidateForm_OptionalEmailOmitted(t *testing.T) {
	t.Parallel()
	sanitized, err := validator.ValidateForm(map[string]string{
		"name":        "shop",
		"address":     "street",
		"description": "desc",
	})
	require.NoError(t, err)
	assert.NotContains(t, sanitized, "email")
}

func TestValidateForm_AbsentRequiredFieldIsError(t *testing.T) {
	t.Parallel()
	// Leaving a required field out of the map entirely fails the same
	// way submitting it empty does.
	_, err := validator.ValidateForm(map[string]string{
		"name":    "shop",
		"address": "street",
	})
	require.Error(t, err)

	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
}