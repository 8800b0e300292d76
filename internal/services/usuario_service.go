package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/cadastrodev/usuarios-backend/internal/domain/entities"
	"github.com/cadastrodev/usuarios-backend/internal/domain/errors"
	"github.com/cadastrodev/usuarios-backend/internal/domain/ports"
	"github.com/cadastrodev/usuarios-backend/internal/domain/repositories"
	"github.com/cadastrodev/usuarios-backend/internal/domain/valueobjects"
)

// UsuarioService contém a lógica de negócio para usuários: normalização
// de email, garantia de unicidade e coordenação da persistência.
//
// A checagem de unicidade antes do insert não é atômica frente a criações
// concorrentes com o mesmo email; a garantia final é o índice único da
// coluna email, cuja violação o repositório devolve como
// errors.ErrEmailJaCadastrado.
type UsuarioService struct {
	repo   repositories.UsuarioRepository
	uow    ports.UnitOfWork
	logger ports.Logger
	agora  func() time.Time
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	repo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		repo:   repo,
		uow:    uow,
		logger: logger,
		agora:  func() time.Time { return time.Now().UTC() },
	}
}

// CriarUsuarioInput representa os dados para criar um usuário
type CriarUsuarioInput struct {
	Nome           string
	Email          string
	Senha          string
	DataNascimento time.Time
	Telefone       *string
}

// AtualizarUsuarioInput representa os dados para atualizar um usuário.
// Não há campo de senha: a operação de atualização nunca a altera.
type AtualizarUsuarioInput struct {
	Nome           string
	Email          string
	DataNascimento time.Time
	Telefone       *string
	Ativo          bool
}

// Listar devolve todos os usuários, na ordem definida pelo repositório
func (s *UsuarioService) Listar(ctx context.Context) ([]*entities.Usuario, error) {
	return s.repo.ListAll(ctx)
}

// Obter busca um usuário por ID. Id inexistente devolve (nil, nil),
// nunca erro.
func (s *UsuarioService) Obter(ctx context.Context, id int) (*entities.Usuario, error) {
	return s.repo.GetByID(ctx, id)
}

// Criar registra um novo usuário ativo. O email é normalizado antes da
// checagem de unicidade; email já cadastrado devolve ErrEmailJaCadastrado.
func (s *UsuarioService) Criar(ctx context.Context, input CriarUsuarioInput) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existe, err := s.repo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, errors.ErrEmailJaCadastrado
	}

	usuario := entities.NovoUsuario(input.Nome, email, input.Senha, input.DataNascimento, input.Telefone, s.agora())

	if err := s.persistir(ctx, func(txCtx context.Context) error {
		return s.repo.Add(txCtx, usuario)
	}); err != nil {
		return nil, err
	}

	s.logger.Info("usuario criado", "id", usuario.ID, "email", email.String())
	return usuario, nil
}

// Atualizar sobrescreve os dados cadastrais de um usuário existente.
// Um usuário pode manter o próprio email; email de outro usuário devolve
// ErrEmailJaCadastrado. Id inexistente devolve ErrUsuarioNaoEncontrado.
func (s *UsuarioService) Atualizar(ctx context.Context, id int, input AtualizarUsuarioInput) (*entities.Usuario, error) {
	usuario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrUsuarioNaoEncontrado
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	comEmail, err := s.repo.GetByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if comEmail != nil && comEmail.ID != id {
		return nil, errors.ErrEmailJaCadastrado
	}

	usuario.Atualizar(input.Nome, email, input.DataNascimento, input.Telefone, input.Ativo, s.agora())

	if err := s.persistir(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, usuario)
	}); err != nil {
		return nil, err
	}

	s.logger.Info("usuario atualizado", "id", usuario.ID)
	return usuario, nil
}

// Remover desativa um usuário (soft delete): o registro permanece na base
// com ativo=false e data de atualização registrada. Devolve false quando o
// id não existe; chamadas repetidas continuam devolvendo true.
func (s *UsuarioService) Remover(ctx context.Context, id int) (bool, error) {
	usuario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if usuario == nil {
		return false, nil
	}

	usuario.Desativar(s.agora())

	if err := s.persistir(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, usuario)
	}); err != nil {
		return false, err
	}

	s.logger.Info("usuario desativado", "id", usuario.ID)
	return true, nil
}

// EmailJaCadastrado verifica se um email, após normalização, já pertence
// a algum usuário. Operação de leitura pura.
func (s *UsuarioService) EmailJaCadastrado(ctx context.Context, email string) (bool, error) {
	normalizado := strings.ToLower(strings.TrimSpace(email))
	return s.repo.ExistsByEmail(ctx, normalizado)
}

// persistir executa uma mutação dentro de uma unidade de trabalho própria
// da chamada e a finaliza com Commit. Qualquer falha desfaz o que estava
// pendente; nada é tentado de novo.
func (s *UsuarioService) persistir(ctx context.Context, fn func(context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return errors.NovoErroPersistencia("begin", err)
	}

	if err := fn(txCtx); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if _, err := s.repo.Commit(txCtx); err != nil {
		_ = s.uow.Rollback(txCtx)
		// Erros de negócio e falhas já classificadas passam adiante;
		// qualquer outra coisa vira falha de persistência.
		if stderrors.Is(err, errors.ErrEmailJaCadastrado) || errors.EhErroPersistencia(err) {
			return err
		}
		return errors.NovoErroPersistencia("commit", err)
	}

	return nil
}
