package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/cadastrodev/usuarios-backend/internal/domain/ports"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// txState carrega a transação corrente e o acumulado de linhas afetadas,
// que o repositório devolve no Commit.
type txState struct {
	tx     *gorm.DB
	linhas int64
}

// UnitOfWork implementa ports.UnitOfWork sobre transações GORM
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

func (uow *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, tx.Error
	}
	return context.WithValue(ctx, txKey, &txState{tx: tx}), nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	st, ok := ctx.Value(txKey).(*txState)
	if !ok {
		return nil
	}
	return st.tx.Commit().Error
}

func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	st, ok := ctx.Value(txKey).(*txState)
	if !ok {
		return nil
	}
	return st.tx.Rollback().Error
}

func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}

	return uow.Commit(txCtx)
}
