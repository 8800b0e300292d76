package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestCalcularIdade(t *testing.T) {
	data := func(ano int, mes time.Month, dia int) time.Time {
		return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
	}

	casos := []struct {
		nome       string
		nascimento time.Time
		referencia time.Time
		esperado   int
	}{
		{
			nome:       "aniversário de 18 anos no próprio dia",
			nascimento: data(2008, time.August, 31),
			referencia: data(2026, time.August, 31),
			esperado:   18,
		},
		{
			nome:       "um dia antes do aniversário de 18 anos",
			nascimento: data(2008, time.September, 1),
			referencia: data(2026, time.August, 31),
			esperado:   17,
		},
		{
			nome:       "um dia depois do aniversário",
			nascimento: data(2008, time.August, 30),
			referencia: data(2026, time.August, 31),
			esperado:   18,
		},
		{
			nome:       "referência em 29 de fevereiro recua para 28 em ano comum",
			nascimento: data(2006, time.March, 1),
			referencia: data(2024, time.February, 29),
			esperado:   17,
		},
		{
			nome:       "nascido em 28 de fevereiro com referência em 29",
			nascimento: data(2006, time.February, 28),
			referencia: data(2024, time.February, 29),
			esperado:   18,
		},
		{
			nome:       "nascido em 29 de fevereiro antes do aniversário em ano comum",
			nascimento: data(2008, time.February, 29),
			referencia: data(2026, time.February, 28),
			esperado:   17,
		},
		{
			nome:       "nascido em 29 de fevereiro depois do aniversário em ano comum",
			nascimento: data(2008, time.February, 29),
			referencia: data(2026, time.March, 1),
			esperado:   18,
		},
		{
			nome:       "ignora o horário das datas",
			nascimento: time.Date(2008, time.August, 31, 23, 0, 0, 0, time.UTC),
			referencia: time.Date(2026, time.August, 31, 1, 0, 0, 0, time.UTC),
			esperado:   18,
		},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			idade := CalcularIdade(caso.nascimento, caso.referencia)
			if idade != caso.esperado {
				t.Errorf("CalcularIdade(%v, %v) = %d, esperado %d",
					caso.nascimento, caso.referencia, idade, caso.esperado)
			}
		})
	}
}

func TestValidarMaioridade(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("maioridade", validarMaioridade); err != nil {
		t.Fatalf("erro ao registrar validação: %v", err)
	}

	type carga struct {
		DataNascimento time.Time `validate:"maioridade"`
	}

	hoje := time.Now().UTC()

	t.Run("aceita quem completa 18 anos hoje", func(t *testing.T) {
		nasc := time.Date(hoje.Year()-18, hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC)
		if err := v.Struct(carga{DataNascimento: nasc}); err != nil {
			t.Errorf("esperava aprovação para %v: %v", nasc, err)
		}
	})

	t.Run("rejeita quem completa 18 anos amanhã", func(t *testing.T) {
		nasc := time.Date(hoje.Year()-18, hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		if err := v.Struct(carga{DataNascimento: nasc}); err == nil {
			t.Errorf("esperava rejeição para %v", nasc)
		}
	})
}

func TestValidarTelefone(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("telefone", validarTelefone); err != nil {
		t.Fatalf("erro ao registrar validação: %v", err)
	}

	type carga struct {
		Telefone *string `validate:"omitempty,telefone"`
	}

	casos := []struct {
		nome     string
		telefone *string
		valido   bool
	}{
		{"formato completo", ptr("(11) 91234-5678"), true},
		{"sem parênteses", ptr("11 91234-5678"), false},
		{"sem espaço", ptr("(11)91234-5678"), false},
		{"sem hífen", ptr("(11) 912345678"), false},
		{"apenas dígitos", ptr("11912345678"), false},
		{"quatro dígitos no prefixo", ptr("(11) 1234-5678"), false},
		{"vazio passa", ptr(""), true},
		{"ausente passa", nil, true},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			err := v.Struct(carga{Telefone: caso.telefone})
			if caso.valido && err != nil {
				t.Errorf("esperava aprovação para %v: %v", caso.telefone, err)
			}
			if !caso.valido && err == nil {
				t.Errorf("esperava rejeição para %v", *caso.telefone)
			}
		})
	}
}

func ptr(s string) *string { return &s }
