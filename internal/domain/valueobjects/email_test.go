package valueobjects

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmail(t *testing.T) {
	t.Run("normaliza espaços e maiúsculas", func(t *testing.T) {
		email, err := NewEmail("  Maria.Silva@Exemplo.COM ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if email.String() != "maria.silva@exemplo.com" {
			t.Errorf("esperava 'maria.silva@exemplo.com', obteve '%s'", email.String())
		}
	})

	t.Run("aceita formatos comuns", func(t *testing.T) {
		validos := []string{
			"a@b.co",
			"maria+tag@exemplo.com",
			"nome_composto%x@sub.exemplo.com.br",
		}
		for _, v := range validos {
			if _, err := NewEmail(v); err != nil {
				t.Errorf("esperava aprovação para '%s': %v", v, err)
			}
		}
	})

	t.Run("rejeita formatos inválidos", func(t *testing.T) {
		invalidos := []string{
			"",
			"sem-arroba",
			"@dominio.com",
			"usuario@",
			"usuario@dominio",
			"usuario@dominio.c",
			"usuario exemplo@dominio.com",
			"a@" + strings.Repeat("x", 250) + ".com",
		}
		for _, v := range invalidos {
			if _, err := NewEmail(v); !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("esperava ErrInvalidEmail para '%s', obteve %v", v, err)
			}
		}
	})
}
