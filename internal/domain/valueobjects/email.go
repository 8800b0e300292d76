package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que carrega sempre um endereço normalizado:
// espaços das pontas removidos e caracteres em minúsculas. Toda comparação
// de unicidade no sistema acontece sobre esta forma normalizada.
type Email struct {
	value string
}

// NewEmail normaliza e valida um endereço de email
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor normalizado do email
func (e Email) String() string {
	return e.value
}

func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
