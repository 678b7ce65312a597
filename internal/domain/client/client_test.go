package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ana"))
	assert.NoError(t, ValidateName(" Jô "))
	assert.True(t, httperr.IsBusiness(ValidateName(""), httperr.CodeInvalidName))
	assert.True(t, httperr.IsBusiness(ValidateName("  A  "), httperr.CodeInvalidName))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("11999999999"))
	assert.NoError(t, ValidatePhone("(11) 3333-4444"))
	assert.True(t, httperr.IsBusiness(ValidatePhone("99999-9999"), httperr.CodeInvalidPhone))
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"11999999999":     "(11) 99999-9999",
		"1133334444":      "(11) 3333-4444",
		"(11) 99999-9999": "(11) 99999-9999",
		"5511999999999":   "5511999999999",
		"123":             "123",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPhone(in), in)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "11999999999", Digits("+(11) 99999-9999"))
	assert.Equal(t, "", Digits("abc"))
}
