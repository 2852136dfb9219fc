package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-auth/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-auth/internal/usecase"
)

const maxBodyBytes = 1 << 20

type Authenticator interface {
	Execute(ctx context.Context, input usecase.AuthenticateCustomerInput) (*usecase.AuthenticateCustomerOutput, error)
}

type AuthHandler struct {
	AuthenticateUC Authenticator
}

func NewAuthHandler(uc Authenticator) *AuthHandler {
	return &AuthHandler{AuthenticateUC: uc}
}

// Handle atende POST /auth/cpf.
func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	log.Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", chimw.GetReqID(r.Context())).
		Interface("headers", r.Header).
		Str("body", string(body)).
		Msg("requisição recebida")

	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("body excede o limite")
		} else {
			log.Error().Err(err).Msg("erro ao ler body")
		}
		middleware.RecordLogin(middleware.LoginError)
		resp := internalErrorResponse()
		writeJSON(w, resp.StatusCode, resp.Body)
		return
	}

	resp := h.Authenticate(r.Context(), body)
	writeJSON(w, resp.StatusCode, resp.Body)
}

// Authenticate é a fronteira do fluxo: nenhuma falha escapa daqui, tudo
// vira 400, 404 ou o 500 genérico.
func (h *AuthHandler) Authenticate(ctx context.Context, body []byte) (resp Response) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Bytes("stack", debug.Stack()).Msg("erro interno")
			middleware.RecordLogin(middleware.LoginError)
			resp = internalErrorResponse()
		}
	}()

	input, err := decodeAuthenticateInput(body)
	if err != nil {
		return h.fail(err)
	}

	output, err := h.AuthenticateUC.Execute(ctx, input)
	if err != nil {
		return h.fail(err)
	}

	middleware.RecordLogin(middleware.LoginSuccess)
	return Response{StatusCode: http.StatusOK, Body: output}
}

func (h *AuthHandler) fail(err error) Response {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeInvalidCPF:
			middleware.RecordLogin(middleware.LoginInvalidCPF)
			return errorResponse(http.StatusBadRequest, domainErr.Message)
		case usecase.CodeCustomerNotFound:
			middleware.RecordLogin(middleware.LoginNotFound)
			return errorResponse(http.StatusNotFound, domainErr.Message)
		}
	}

	log.Error().Err(err).Msg("erro interno")
	middleware.RecordLogin(middleware.LoginError)
	return internalErrorResponse()
}
