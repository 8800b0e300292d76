package repositories

import (
	"context"

	"github.com/cadastrodev/usuarios-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários.
//
// Add e Update registram a operação na unidade de trabalho corrente;
// nada é finalizado até Commit, que devolve o total de linhas afetadas.
// GetByEmail e ExistsByEmail recebem o email já normalizado (minúsculas).
// Buscas sem resultado devolvem nil, nunca erro.
type UsuarioRepository interface {
	ListAll(ctx context.Context) ([]*entities.Usuario, error)
	GetByID(ctx context.Context, id int) (*entities.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	Add(ctx context.Context, usuario *entities.Usuario) error
	Update(ctx context.Context, usuario *entities.Usuario) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Commit(ctx context.Context) (int64, error)
}
