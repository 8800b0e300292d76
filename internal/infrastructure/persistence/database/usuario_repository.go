package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cadastrodev/usuarios-backend/internal/domain/entities"
	domainerrors "github.com/cadastrodev/usuarios-backend/internal/domain/errors"
	"github.com/cadastrodev/usuarios-backend/internal/domain/repositories"
	"github.com/cadastrodev/usuarios-backend/internal/domain/valueobjects"
)

// UsuarioRepository implementa repositories.UsuarioRepository sobre GORM.
// As mutações executam dentro da transação carregada no contexto pela
// UnitOfWork, então só se tornam visíveis no Commit.
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) ListAll(ctx context.Context) ([]*entities.Usuario, error) {
	var models []*UsuarioModel

	if err := r.getDB(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, domainerrors.NovoErroPersistencia("list", err)
	}

	return r.toEntities(models)
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int) (*entities.Usuario, error) {
	var model UsuarioModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainerrors.NovoErroPersistencia("get_by_id", err)
	}

	return r.toEntity(&model)
}

func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var model UsuarioModel

	email = strings.ToLower(email)
	if err := r.getDB(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domainerrors.NovoErroPersistencia("get_by_email", err)
	}

	return r.toEntity(&model)
}

func (r *UsuarioRepository) Add(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	res := r.getDB(ctx).Create(model)
	if res.Error != nil {
		return r.translateWriteError("add", res.Error)
	}

	usuario.ID = model.ID
	r.contarLinhas(ctx, res.RowsAffected)
	return nil
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	res := r.getDB(ctx).Save(model)
	if res.Error != nil {
		return r.translateWriteError("update", res.Error)
	}

	r.contarLinhas(ctx, res.RowsAffected)
	return nil
}

func (r *UsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var total int64

	email = strings.ToLower(email)
	if err := r.getDB(ctx).Model(&UsuarioModel{}).Where("email = ?", email).Count(&total).Error; err != nil {
		return false, domainerrors.NovoErroPersistencia("exists_by_email", err)
	}

	return total > 0, nil
}

// Commit finaliza a transação corrente e devolve o total de linhas
// afetadas pelas operações pendentes. Cancelamento do contexto antes
// deste ponto desfaz tudo; depois que o commit é emitido ele não é
// interrompido.
func (r *UsuarioRepository) Commit(ctx context.Context) (int64, error) {
	st, ok := ctx.Value(txKey).(*txState)
	if !ok {
		return 0, nil
	}

	if err := ctx.Err(); err != nil {
		st.tx.Rollback()
		return 0, err
	}

	if err := st.tx.Commit().Error; err != nil {
		return 0, r.translateWriteError("commit", err)
	}

	return st.linhas, nil
}

// getDB extrai a transação do contexto quando há uma unidade de
// trabalho aberta; fora dela usa a conexão base.
func (r *UsuarioRepository) getDB(ctx context.Context) *gorm.DB {
	if st, ok := ctx.Value(txKey).(*txState); ok {
		return st.tx
	}
	return r.db.WithContext(ctx)
}

func (r *UsuarioRepository) contarLinhas(ctx context.Context, linhas int64) {
	if st, ok := ctx.Value(txKey).(*txState); ok {
		st.linhas += linhas
	}
}

// translateWriteError converte violação do índice único de email no erro
// de negócio; o resto vira falha de persistência. É por aqui que um
// insert duplicado concorrente, que passou pela pré-checagem do serviço,
// ainda termina em ErrEmailJaCadastrado.
func (r *UsuarioRepository) translateWriteError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrEmailJaCadastrado
	}
	return domainerrors.NovoErroPersistencia(op, err)
}

// Conversores
func (r *UsuarioRepository) toModel(usuario *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		ID:              usuario.ID,
		Nome:            usuario.Nome,
		Email:           usuario.Email.String(),
		Senha:           usuario.Senha,
		DataNascimento:  usuario.DataNascimento,
		Telefone:        usuario.Telefone,
		Ativo:           usuario.Ativo,
		DataCriacao:     usuario.DataCriacao,
		DataAtualizacao: usuario.DataAtualizacao,
	}
}

func (r *UsuarioRepository) toEntity(model *UsuarioModel) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Usuario{
		ID:              model.ID,
		Nome:            model.Nome,
		Email:           email,
		Senha:           model.Senha,
		DataNascimento:  model.DataNascimento,
		Telefone:        model.Telefone,
		Ativo:           model.Ativo,
		DataCriacao:     model.DataCriacao,
		DataAtualizacao: model.DataAtualizacao,
	}, nil
}

func (r *UsuarioRepository) toEntities(models []*UsuarioModel) ([]*entities.Usuario, error) {
	usuarios := make([]*entities.Usuario, 0, len(models))

	for _, model := range models {
		usuario, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, usuario)
	}

	return usuarios, nil
}
