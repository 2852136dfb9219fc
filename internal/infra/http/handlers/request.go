package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-auth/internal/usecase"
)

var errNullBody = errors.New("body é null")

// decodeAuthenticateInput lê o body do login. Body vazio vale {}.
// JSON que não é objeto não tem cpf e cai no 400; null no topo é 500.
func decodeAuthenticateInput(body []byte) (usecase.AuthenticateCustomerInput, error) {
	var input usecase.AuthenticateCustomerInput
	if len(body) == 0 {
		return input, nil
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return input, fmt.Errorf("body inválido: %w", err)
	}

	switch p := payload.(type) {
	case nil:
		return input, errNullBody
	case map[string]any:
		return cpfInput(p["cpf"])
	default:
		return input, nil
	}
}

// cpfInput: ausente, null, false, 0 e "" contam como cpf não informado.
// String segue para a validação; qualquer outro tipo é erro interno.
func cpfInput(raw any) (usecase.AuthenticateCustomerInput, error) {
	var input usecase.AuthenticateCustomerInput

	switch v := raw.(type) {
	case nil:
		return input, nil
	case bool:
		if !v {
			return input, nil
		}
	case float64:
		if v == 0 {
			return input, nil
		}
	case string:
		input.CPF = &v
		return input, nil
	}

	return input, fmt.Errorf("cpf com tipo inesperado: %T", raw)
}
