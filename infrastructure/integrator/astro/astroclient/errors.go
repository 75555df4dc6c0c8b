package astroclient

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// APIError carrega uma resposta não-2xx da API da Astro. O corpo é preservado
// na íntegra; Message é o campo `message` ou `error` do corpo, quando houver,
// para ser exibido ao vendedor sem reformulação.
type APIError struct {
	Status int
	Body   []byte
	// Message é extraída do corpo; vazia quando o corpo não traz mensagem.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("astro respondeu %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("astro respondeu %d", e.Status)
}

// IsUnauthorized indica que a sessão foi recusada pelo servidor.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// errorBody é o envelope de erro usado pela API da Astro.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// newAPIError monta o APIError extraindo a mensagem do corpo, se possível.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: body}

	var parsed errorBody
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		} else if parsed.Err != "" {
			apiErr.Message = parsed.Err
		}
	}

	return apiErr
}

// AsAPIError desembrulha um *APIError de uma cadeia de erros.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
