package usecase

import "errors"

const (
	CodeInvalidCPF       = "INVALID_CPF"
	CodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeSigningError     = "SIGNING_ERROR"
)

// Mensagens devolvidas ao app; o front compara o texto, não mude.
const (
	MsgInvalidCPF       = "CPF inválido"
	MsgCustomerNotFound = "Cliente não encontrado"
	MsgInternalError    = "Erro interno do servidor"
)

// DomainError é um resultado esperado do fluxo (entrada ruim, cliente inexistente).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// TechnicalError é falha de infraestrutura; a causa só vai para o log.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var techErr *TechnicalError
	return errors.As(err, &techErr)
}
