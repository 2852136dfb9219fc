package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-auth/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-auth/internal/usecase"
)

type Authenticator interface {
	Authenticate(ctx context.Context, body []byte) handlers.Response
}

// Handler adapta o evento do API Gateway para o mesmo fluxo do HTTP.
type Handler struct {
	Auth Authenticator
}

func NewHandler(auth Authenticator) *Handler {
	return &Handler{Auth: auth}
}

// Handle nunca devolve error: o Lambda sempre responde um envelope válido.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Info().Interface("event", event).Msg("event recebido")

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			log.Error().Err(err).Msg("body base64 inválido")
			return internalError(), nil
		}
		body = decoded
	}

	resp := h.Auth.Authenticate(ctx, body)

	payload, err := json.Marshal(resp.Body)
	if err != nil {
		log.Error().Err(err).Msg("falha ao serializar resposta")
		return internalError(), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}, nil
}

func internalError() events.APIGatewayProxyResponse {
	payload, _ := json.Marshal(handlers.ErrorResponse{Error: usecase.MsgInternalError})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}
