package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
	"github.com/vfg2006/seller-console/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sessionExpiredMessage orienta o recarregamento manual. Não há redirect
// automático para não descartar o que o vendedor estiver editando.
const sessionExpiredMessage = "Sua sessão expirou. Recarregue a página para continuar."

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("handler: falha ao codificar a resposta")
	}
}

// writeUpstreamError traduz falhas de chamadas à API da Astro na mensagem
// exibida ao vendedor: 401 vira o aviso de sessão expirada; mensagem vinda do
// servidor é repassada sem reformulação; qualquer outra falha usa a mensagem
// genérica da operação. O token já foi limpo pelo interceptor quando o status
// é 401.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, genericMessage string) {
	writeUpstreamErrorWithDetails(w, r, err, genericMessage, nil)
}

// writeUpstreamErrorWithDetails aceita detalhes extras no corpo de erro, como
// o snapshot restaurado após um rollback.
func writeUpstreamErrorWithDetails(w http.ResponseWriter, r *http.Request, err error, genericMessage string, details map[string]any) {
	logger := log.ForContext(r.Context()).WithError(err)

	apiErr, ok := astroclient.AsAPIError(err)
	if !ok {
		// Falha de transporte: a chamada nem chegou a uma resposta HTTP.
		logger.Error("handler: falha de comunicação com a API")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, genericMessage, details)
		return
	}

	if apiErr.IsUnauthorized() {
		logger.Warn("handler: sessão expirada durante a chamada")
		apiErrors.WriteError(w, apiErrors.ErrSessionExpired, sessionExpiredMessage, map[string]any{
			"reload": true,
		})
		return
	}

	logger.WithField("status", apiErr.Status).Error("handler: a API respondeu com erro")
	if apiErr.Message != "" {
		apiErrors.WriteError(w, apiErrors.ErrUpstream, apiErr.Message, details)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrUpstream, genericMessage, details)
}
