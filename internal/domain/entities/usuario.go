package entities

import (
	"time"

	"github.com/cadastrodev/usuarios-backend/internal/domain/valueobjects"
)

// Usuario representa um usuário cadastrado no sistema.
// A senha é persistida em texto puro por contrato com a base existente;
// ela nunca aparece nas projeções de leitura (ver handlers/dto).
type Usuario struct {
	ID              int
	Nome            string
	Email           valueobjects.Email
	Senha           string
	DataNascimento  time.Time
	Telefone        *string
	Ativo           bool
	DataCriacao     time.Time
	DataAtualizacao *time.Time
}

// NovoUsuario monta um usuário ativo, com data de criação em UTC
// e sem data de atualização.
func NovoUsuario(nome string, email valueobjects.Email, senha string, dataNascimento time.Time, telefone *string, agora time.Time) *Usuario {
	return &Usuario{
		Nome:           nome,
		Email:          email,
		Senha:          senha,
		DataNascimento: dataNascimento,
		Telefone:       telefone,
		Ativo:          true,
		DataCriacao:    agora,
	}
}

// Atualizar sobrescreve os dados cadastrais e registra o momento da alteração.
// A senha nunca é alterada por esta operação.
func (u *Usuario) Atualizar(nome string, email valueobjects.Email, dataNascimento time.Time, telefone *string, ativo bool, agora time.Time) {
	u.Nome = nome
	u.Email = email
	u.DataNascimento = dataNascimento
	u.Telefone = telefone
	u.Ativo = ativo
	u.DataAtualizacao = &agora
}

// Desativar marca o usuário como inativo (soft delete) e registra o momento.
// Chamadas repetidas sobre um usuário já inativo continuam registrando a
// data de atualização.
func (u *Usuario) Desativar(agora time.Time) {
	u.Ativo = false
	u.DataAtualizacao = &agora
}
