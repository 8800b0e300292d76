package ports

import "context"

// UnitOfWork delimita o escopo transacional de uma chamada de serviço.
// Begin devolve um contexto que carrega a transação; as operações do
// repositório executadas com esse contexto ficam pendentes até o Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
