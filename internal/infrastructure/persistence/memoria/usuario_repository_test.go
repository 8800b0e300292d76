package memoria

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastrodev/usuarios-backend/internal/domain/entities"
	"github.com/cadastrodev/usuarios-backend/internal/domain/errors"
	"github.com/cadastrodev/usuarios-backend/internal/domain/valueobjects"
)

func novoUsuarioTeste(t *testing.T, email string) *entities.Usuario {
	t.Helper()

	vo, err := valueobjects.NewEmail(email)
	require.NoError(t, err)

	nascimento := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	agora := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return entities.NovoUsuario("Maria Silva", vo, "segredo123", nascimento, nil, agora)
}

func TestUsuarioRepository_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("add fica invisível até o commit", func(t *testing.T) {
		repo := NewUsuarioRepository()
		usuario := novoUsuarioTeste(t, "maria@exemplo.com")

		require.NoError(t, repo.Add(ctx, usuario))
		assert.Equal(t, 1, usuario.ID)

		visivel, err := repo.GetByID(ctx, usuario.ID)
		require.NoError(t, err)
		assert.Nil(t, visivel)

		linhas, err := repo.Commit(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), linhas)

		visivel, err = repo.GetByID(ctx, usuario.ID)
		require.NoError(t, err)
		require.NotNil(t, visivel)
		assert.Equal(t, "maria@exemplo.com", visivel.Email.String())
	})

	t.Run("conta uma linha por operação pendente", func(t *testing.T) {
		repo := NewUsuarioRepository()

		primeiro := novoUsuarioTeste(t, "um@exemplo.com")
		segundo := novoUsuarioTeste(t, "dois@exemplo.com")
		require.NoError(t, repo.Add(ctx, primeiro))
		require.NoError(t, repo.Add(ctx, segundo))

		linhas, err := repo.Commit(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), linhas)
		assert.Equal(t, 2, repo.Total())
	})

	t.Run("rejeita insert com email já efetivado", func(t *testing.T) {
		repo := NewUsuarioRepository()

		require.NoError(t, repo.Add(ctx, novoUsuarioTeste(t, "maria@exemplo.com")))
		_, err := repo.Commit(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Add(ctx, novoUsuarioTeste(t, "maria@exemplo.com")))
		_, err = repo.Commit(ctx)
		require.ErrorIs(t, err, errors.ErrEmailJaCadastrado)
		assert.Equal(t, 1, repo.Total())
	})

	t.Run("contexto cancelado descarta os pendentes", func(t *testing.T) {
		repo := NewUsuarioRepository()
		require.NoError(t, repo.Add(ctx, novoUsuarioTeste(t, "maria@exemplo.com")))

		cancelado, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.Commit(cancelado)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, repo.Total())

		// Os pendentes foram descartados: um novo commit não os ressuscita
		linhas, err := repo.Commit(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), linhas)
	})

	t.Run("commit sem pendentes devolve zero linhas", func(t *testing.T) {
		repo := NewUsuarioRepository()

		linhas, err := repo.Commit(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), linhas)
	})
}

func TestUsuarioRepository_Descartar(t *testing.T) {
	ctx := context.Background()

	repo := NewUsuarioRepository()
	require.NoError(t, repo.Add(ctx, novoUsuarioTeste(t, "maria@exemplo.com")))
	repo.Descartar()

	linhas, err := repo.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), linhas)
	assert.Equal(t, 0, repo.Total())
}

func TestUsuarioRepository_Consultas(t *testing.T) {
	ctx := context.Background()

	repo := NewUsuarioRepository()
	for _, email := range []string{"b@exemplo.com", "a@exemplo.com", "c@exemplo.com"} {
		require.NoError(t, repo.Add(ctx, novoUsuarioTeste(t, email)))
	}
	_, err := repo.Commit(ctx)
	require.NoError(t, err)

	t.Run("lista na ordem dos ids", func(t *testing.T) {
		usuarios, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, usuarios, 3)
		assert.Equal(t, "b@exemplo.com", usuarios[0].Email.String())
		assert.Equal(t, "a@exemplo.com", usuarios[1].Email.String())
		assert.Equal(t, "c@exemplo.com", usuarios[2].Email.String())
	})

	t.Run("busca por email normalizado", func(t *testing.T) {
		usuario, err := repo.GetByEmail(ctx, "A@EXEMPLO.COM")
		require.NoError(t, err)
		require.NotNil(t, usuario)
		assert.Equal(t, "a@exemplo.com", usuario.Email.String())
	})

	t.Run("existência por email", func(t *testing.T) {
		existe, err := repo.ExistsByEmail(ctx, "c@exemplo.com")
		require.NoError(t, err)
		assert.True(t, existe)

		existe, err = repo.ExistsByEmail(ctx, "z@exemplo.com")
		require.NoError(t, err)
		assert.False(t, existe)
	})

	t.Run("devoluções são cópias independentes", func(t *testing.T) {
		usuario, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, usuario)

		usuario.Nome = "Alterado Fora"

		relido, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", relido.Nome)
	})
}
