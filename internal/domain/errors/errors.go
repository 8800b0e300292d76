package errors

import "errors"

// Erros de negócio
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUsuarioNaoEncontrado = errors.New("error.usuario_nao_encontrado")
	ErrEmailJaCadastrado    = errors.New("error.email_ja_cadastrado")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
)

// ErroPersistencia representa uma falha inesperada da camada de
// armazenamento. O serviço nunca tenta de novo; o detalhe interno
// não vaza para a borda HTTP.
type ErroPersistencia struct {
	Op  string
	Err error
}

func (e *ErroPersistencia) Error() string {
	return "persistencia: " + e.Op + ": " + e.Err.Error()
}

func (e *ErroPersistencia) Unwrap() error {
	return e.Err
}

// NovoErroPersistencia embrulha um erro de armazenamento com a operação que falhou
func NovoErroPersistencia(op string, err error) error {
	return &ErroPersistencia{Op: op, Err: err}
}

// EhErroPersistencia verifica se o erro carrega uma falha de armazenamento
func EhErroPersistencia(err error) bool {
	var ep *ErroPersistencia
	return errors.As(err, &ep)
}
