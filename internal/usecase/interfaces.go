package usecase

import (
	"context"

	"github.com/xavierca1/ligue-auth/internal/entity"
	"github.com/xavierca1/ligue-auth/internal/infra/auth"
	"github.com/xavierca1/ligue-auth/internal/infra/queue"
)

type TokenSigner interface {
	Sign(c *entity.Customer) (*auth.SignedToken, error)
}

type QueueProducerInterface interface {
	PublishLogin(ctx context.Context, event queue.LoginEvent) error
}

type AuthenticateCustomerUseCase struct {
	Repo   entity.CustomerRepositoryInterface
	Signer TokenSigner
	Queue  QueueProducerInterface
	Origin string
}
