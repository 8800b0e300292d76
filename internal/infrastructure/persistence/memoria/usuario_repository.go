// Package memoria implementa o repositório de usuários em memória,
// com a mesma semântica de unidade de trabalho do banco real: Add e
// Update ficam pendentes até Commit. É o dublê usado nos testes das
// camadas de serviço e transporte.
package memoria

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cadastrodev/usuarios-backend/internal/domain/entities"
	"github.com/cadastrodev/usuarios-backend/internal/domain/errors"
	"github.com/cadastrodev/usuarios-backend/internal/domain/ports"
	"github.com/cadastrodev/usuarios-backend/internal/domain/repositories"
)

type pendente struct {
	usuario entities.Usuario
	nova    bool
}

// UsuarioRepository guarda os registros num mapa protegido por mutex.
// ErroForcado, quando definido, faz o próximo Commit falhar com ele —
// útil para exercitar o caminho de falha de persistência nos testes.
type UsuarioRepository struct {
	mu          sync.Mutex
	seq         int
	registros   map[int]entities.Usuario
	pendentes   []pendente
	ErroForcado error
}

// NewUsuarioRepository cria um repositório em memória vazio
func NewUsuarioRepository() *UsuarioRepository {
	return &UsuarioRepository{registros: make(map[int]entities.Usuario)}
}

var _ repositories.UsuarioRepository = (*UsuarioRepository)(nil)

func (r *UsuarioRepository) ListAll(ctx context.Context) ([]*entities.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.registros))
	for id := range r.registros {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	usuarios := make([]*entities.Usuario, 0, len(ids))
	for _, id := range ids {
		u := r.registros[id]
		usuarios = append(usuarios, &u)
	}
	return usuarios, nil
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int) (*entities.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.registros[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range r.registros {
		if u.Email.String() == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UsuarioRepository) Add(ctx context.Context, usuario *entities.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// O id é atribuído no Add (como um autoincrement faria) para que o
	// chamador já o tenha disponível depois do Commit.
	r.seq++
	usuario.ID = r.seq
	r.pendentes = append(r.pendentes, pendente{usuario: *usuario, nova: true})
	return nil
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pendentes = append(r.pendentes, pendente{usuario: *usuario})
	return nil
}

func (r *UsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	usuario, err := r.GetByEmail(ctx, email)
	return usuario != nil, err
}

func (r *UsuarioRepository) Commit(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		r.pendentes = nil
		return 0, err
	}
	if r.ErroForcado != nil {
		err := r.ErroForcado
		r.pendentes = nil
		return 0, err
	}

	// Réplica do índice único: um insert com email já existente é
	// rejeitado na finalização, como o banco faria.
	var linhas int64
	for _, p := range r.pendentes {
		if p.nova {
			for _, existente := range r.registros {
				if existente.Email.String() == p.usuario.Email.String() {
					r.pendentes = nil
					return 0, errors.ErrEmailJaCadastrado
				}
			}
		}
		r.registros[p.usuario.ID] = p.usuario
		linhas++
	}
	r.pendentes = nil
	return linhas, nil
}

// Descartar abandona as operações pendentes sem aplicá-las
func (r *UsuarioRepository) Descartar() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pendentes = nil
}

// Total devolve quantos registros estão efetivados
func (r *UsuarioRepository) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.registros)
}

// UnitOfWork é a contrapartida em memória da unidade de trabalho: o
// estado pendente vive no próprio repositório, então Begin e Commit não
// têm o que carregar e Rollback descarta os pendentes.
type UnitOfWork struct {
	repo *UsuarioRepository
}

// NewUnitOfWork cria a unidade de trabalho ligada a um repositório em memória
func NewUnitOfWork(repo *UsuarioRepository) ports.UnitOfWork {
	return &UnitOfWork{repo: repo}
}

func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	_, err := u.repo.Commit(ctx)
	return err
}

func (u *UnitOfWork) Rollback(ctx context.Context) error {
	u.repo.Descartar()
	return nil
}

func (u *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		u.repo.Descartar()
		return err
	}
	_, err := u.repo.Commit(ctx)
	return err
}
