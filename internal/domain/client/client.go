package client

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

const (
	MinNameLength  = 2
	MinPhoneDigits = 10
)

var ErrNotFound = httperr.ErrBusiness(httperr.CodeClientNotFound)

type Repository interface {
	Add(ctx context.Context, c models.Client) error
	// Remove de um id inexistente não é erro.
	Remove(ctx context.Context, id string) error
	// Update troca nome e telefone mantendo id e createdAt; ErrNotFound se não existir.
	Update(ctx context.Context, c models.Client) error
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) []models.Client
}

// ===============================
// Validations
// ===============================

func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLength {
		return httperr.ErrBusiness(httperr.CodeInvalidName)
	}
	return nil
}

func ValidatePhone(phone string) error {
	if len(Digits(phone)) < MinPhoneDigits {
		return httperr.ErrBusiness(httperr.CodeInvalidPhone)
	}
	return nil
}

// Digits keeps only the numbers of a phone.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) && r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone formata para exibição: (11) 9999-9999 ou (11) 99999-9999.
// Números fora desses tamanhos são devolvidos só com os dígitos.
func FormatPhone(phone string) string {
	d := Digits(phone)
	switch len(d) {
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	default:
		return d
	}
}
