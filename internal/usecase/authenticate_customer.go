package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-auth/internal/entity"
	"github.com/xavierca1/ligue-auth/internal/infra/queue"
)

func NewAuthenticateCustomerUseCase(
	repo entity.CustomerRepositoryInterface,
	signer TokenSigner,
	queue QueueProducerInterface,
	origin string,
) *AuthenticateCustomerUseCase {
	return &AuthenticateCustomerUseCase{
		Repo:   repo,
		Signer: signer,
		Queue:  queue,
		Origin: origin,
	}
}

// Execute: valida → busca no banco → assina. DomainError para 400/404,
// TechnicalError para o resto.
func (uc *AuthenticateCustomerUseCase) Execute(ctx context.Context, input AuthenticateCustomerInput) (*AuthenticateCustomerOutput, error) {
	cpf, validationErrors := ValidateAuthenticateCustomerInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeInvalidCPF,
			Message: MsgInvalidCPF,
		}
	}

	customer, err := uc.Repo.FindByCPF(ctx, cpf)
	if errors.Is(err, entity.ErrCustomerNotFound) {
		return nil, &DomainError{
			Code:    CodeCustomerNotFound,
			Message: MsgCustomerNotFound,
		}
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "falha ao buscar cliente",
			Err:     err,
		}
	}

	signed, err := uc.Signer.Sign(customer)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeSigningError,
			Message: "falha ao assinar token",
			Err:     err,
		}
	}

	if uc.Queue != nil {
		event := queue.LoginEvent{
			EventID:    uuid.NewString(),
			CustomerID: customer.ID.String(),
			Name:       customer.Name,
			CPF:        customer.CPF,
			IssuedAt:   signed.IssuedAt,
			ExpiresAt:  signed.ExpiresAt,
			Origin:     uc.Origin,
		}
		// Login já foi concedido; fila fora do ar não derruba a resposta.
		if err := uc.Queue.PublishLogin(ctx, event); err != nil {
			log.Warn().Err(err).Str("customer_id", event.CustomerID).Msg("login concedido, mas falha ao publicar evento")
		}
	}

	return &AuthenticateCustomerOutput{
		Token:   signed.Token,
		Cliente: customer.Summary(),
	}, nil
}
