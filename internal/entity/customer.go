package entity

import (
	"context"
	"errors"
	"regexp"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var ErrCustomerNotFound = errors.New("customer not found")

var nonDigits = regexp.MustCompile(`\D`)

// Entidade: Customer (projeção de leitura da tabela clientes)
type Customer struct {
	ID   CustomerID `json:"id"`
	Name *string    `json:"nome"` // coluna aceita NULL
	CPF  string     `json:"cpfCnpj"`
}

type CustomerRepositoryInterface interface {
	FindByCPF(ctx context.Context, cpf string) (*Customer, error)
}

// NormalizeCPF remove pontuação e qualquer outro caractere que não seja dígito.
func NormalizeCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// Summary é o que devolvemos ao front junto com o token.
func (c *Customer) Summary() CustomerSummary {
	return CustomerSummary{ID: c.ID, Name: c.Name}
}

type CustomerSummary struct {
	ID   CustomerID `json:"id"`
	Name *string    `json:"nome"`
}
