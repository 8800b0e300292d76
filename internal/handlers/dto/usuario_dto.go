package dto

import (
	"time"

	"github.com/cadastrodev/usuarios-backend/internal/domain/entities"
	"github.com/cadastrodev/usuarios-backend/internal/services"
)

// CriarUsuarioRequest representa a requisição para criar um usuário.
// As tags maioridade e telefone são registradas em validators.go.
type CriarUsuarioRequest struct {
	Nome           string    `json:"nome" binding:"required,min=3,max=100"`
	Email          string    `json:"email" binding:"required,email"`
	Senha          string    `json:"senha" binding:"required,min=6"`
	DataNascimento time.Time `json:"dataNascimento" binding:"required,maioridade"`
	Telefone       *string   `json:"telefone" binding:"omitempty,telefone"`
}

// AtualizarUsuarioRequest representa a requisição para atualizar um
// usuário. Não carrega senha: a atualização nunca a altera.
type AtualizarUsuarioRequest struct {
	Nome           string    `json:"nome" binding:"required,min=3,max=100"`
	Email          string    `json:"email" binding:"required,email"`
	DataNascimento time.Time `json:"dataNascimento" binding:"required,maioridade"`
	Telefone       *string   `json:"telefone" binding:"omitempty,telefone"`
	Ativo          bool      `json:"ativo"`
}

// UsuarioResponse é a projeção de leitura de um usuário. A senha nunca
// faz parte dela.
type UsuarioResponse struct {
	ID             int       `json:"id"`
	Nome           string    `json:"nome"`
	Email          string    `json:"email"`
	DataNascimento time.Time `json:"dataNascimento"`
	Telefone       *string   `json:"telefone,omitempty"`
	Ativo          bool      `json:"ativo"`
	DataCriacao    time.Time `json:"dataCriacao"`
}

// ToInput converte a requisição de criação para o input do serviço
func (r *CriarUsuarioRequest) ToInput() services.CriarUsuarioInput {
	return services.CriarUsuarioInput{
		Nome:           r.Nome,
		Email:          r.Email,
		Senha:          r.Senha,
		DataNascimento: r.DataNascimento,
		Telefone:       r.Telefone,
	}
}

// ToInput converte a requisição de atualização para o input do serviço
func (r *AtualizarUsuarioRequest) ToInput() services.AtualizarUsuarioInput {
	return services.AtualizarUsuarioInput{
		Nome:           r.Nome,
		Email:          r.Email,
		DataNascimento: r.DataNascimento,
		Telefone:       r.Telefone,
		Ativo:          r.Ativo,
	}
}

// ToUsuarioResponse converte uma entidade Usuario para UsuarioResponse
func ToUsuarioResponse(usuario *entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:             usuario.ID,
		Nome:           usuario.Nome,
		Email:          usuario.Email.String(),
		DataNascimento: usuario.DataNascimento,
		Telefone:       usuario.Telefone,
		Ativo:          usuario.Ativo,
		DataCriacao:    usuario.DataCriacao,
	}
}

// ToUsuarioResponses converte uma lista de entidades Usuario
func ToUsuarioResponses(usuarios []*entities.Usuario) []UsuarioResponse {
	responses := make([]UsuarioResponse, len(usuarios))
	for i, usuario := range usuarios {
		responses[i] = ToUsuarioResponse(usuario)
	}
	return responses
}
