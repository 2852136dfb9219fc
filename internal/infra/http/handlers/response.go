package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-auth/internal/usecase"
)

// Response é o envelope independente de transporte (HTTP ou Lambda).
type Response struct {
	StatusCode int
	Body       any
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(status int, message string) Response {
	return Response{StatusCode: status, Body: ErrorResponse{Error: message}}
}

func internalErrorResponse() Response {
	return errorResponse(http.StatusInternalServerError, usecase.MsgInternalError)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("falha ao escrever resposta")
	}
}
