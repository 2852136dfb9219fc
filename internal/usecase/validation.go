package usecase

import (
	"fmt"

	"github.com/xavierca1/ligue-auth/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateAuthenticateCustomerInput devolve o CPF normalizado e os erros
// encontrados. Só o tamanho é conferido; dígito verificador não.
func ValidateAuthenticateCustomerInput(input AuthenticateCustomerInput) (string, []ValidationError) {
	var errors []ValidationError

	if input.CPF == nil || *input.CPF == "" {
		errors = append(errors, ValidationError{"cpf", "is required"})
		return "", errors
	}

	cleaned := entity.NormalizeCPF(*input.CPF)
	if !isValidCPF(cleaned) {
		errors = append(errors, ValidationError{"cpf", "must have 11 digits"})
	}

	return cleaned, errors
}

func isValidCPF(cleaned string) bool {
	return len(cleaned) == 11
}
