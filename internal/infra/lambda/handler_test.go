package lambda

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-auth/internal/entity"
	"github.com/xavierca1/ligue-auth/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-auth/internal/usecase"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, body []byte) handlers.Response {
	args := m.Called(ctx, body)
	return args.Get(0).(handlers.Response)
}

func TestHandleSuccessEnvelope(t *testing.T) {
	nome := "Maria"
	auth := new(MockAuthenticator)
	auth.On("Authenticate", mock.Anything, []byte(`{"cpf":"12345678901"}`)).Return(handlers.Response{
		StatusCode: http.StatusOK,
		Body: &usecase.AuthenticateCustomerOutput{
			Token:   "signed.jwt.token",
			Cliente: entity.CustomerSummary{ID: entity.NumericCustomerID(42), Name: &nome},
		},
	})

	resp, err := NewHandler(auth).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"cpf":"12345678901"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"token":"signed.jwt.token","cliente":{"id":42,"nome":"Maria"}}`, resp.Body)
	auth.AssertExpectations(t)
}

func TestHandleDecodesBase64Body(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Authenticate", mock.Anything, []byte(`{"cpf":"123"}`)).Return(handlers.Response{
		StatusCode: http.StatusBadRequest,
		Body:       handlers.ErrorResponse{Error: usecase.MsgInvalidCPF},
	})

	resp, err := NewHandler(auth).Handle(context.Background(), events.APIGatewayProxyRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"cpf":"123"}`)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"CPF inválido"}`, resp.Body)
}

func TestHandleInvalidBase64(t *testing.T) {
	auth := new(MockAuthenticator)

	resp, err := NewHandler(auth).Handle(context.Background(), events.APIGatewayProxyRequest{
		Body:            "%%%not-base64",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"error":"Erro interno do servidor"}`, resp.Body)
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}
