package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pelo console ao navegador
const (
	// Erros de sessão (AUTH)
	ErrUnauthenticated = "AUTH_001" // Sem token na ativação da view protegida
	ErrSessionExpired  = "AUTH_002" // A API remota respondeu 401 durante uma chamada
	ErrLoginFailed     = "AUTH_003" // Credenciais recusadas pela API remota

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidStatus       = "VAL_003" // Status fora do conjunto aceito

	// Erros de mutação local (MUT)
	ErrNotFound         = "MUT_001" // Entidade alvo ausente da coleção local
	ErrMutationInFlight = "MUT_002" // Já existe uma mutação pendente para a entidade

	// Erros de servidor/upstream (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do console
	ErrUpstream       = "SRV_002" // A API remota respondeu com erro
	ErrCommunication  = "SRV_003" // Falha de transporte ao falar com a API remota
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrUnauthenticated:     http.StatusUnauthorized,
	ErrSessionExpired:      http.StatusUnauthorized,
	ErrLoginFailed:         http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidStatus:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMutationInFlight:    http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrUpstream:            http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
