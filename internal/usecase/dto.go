package usecase

import "github.com/xavierca1/ligue-auth/internal/entity"

// CPF fica nil quando o campo veio ausente ou com valor falsy (null, false, 0).
type AuthenticateCustomerInput struct {
	CPF *string `json:"cpf"`
}

type AuthenticateCustomerOutput struct {
	Token   string                 `json:"token"`
	Cliente entity.CustomerSummary `json:"cliente"`
}
