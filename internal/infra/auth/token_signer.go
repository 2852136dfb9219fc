package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xavierca1/ligue-auth/internal/entity"
)

// TokenTTL é fixo: a sessão do cliente vale 24h a partir da emissão.
const TokenTTL = 24 * time.Hour

var ErrMissingSecret = errors.New("jwt secret not configured")

// CustomerClaims é o payload do token de sessão.
type CustomerClaims struct {
	ID   entity.CustomerID `json:"id"`
	CPF  string            `json:"cpf"`
	Nome *string           `json:"nome"`
	jwt.RegisteredClaims
}

type SignedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type JWTSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Sign gera um HS256 com {id, cpf, nome, iat, exp}. A verificação fica
// com quem consome o token.
func (s *JWTSigner) Sign(c *entity.Customer) (*SignedToken, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := CustomerClaims{
		ID:   c.ID,
		CPF:  c.CPF,
		Nome: c.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("erro ao assinar token: %w", err)
	}

	return &SignedToken{
		Token:     token,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
