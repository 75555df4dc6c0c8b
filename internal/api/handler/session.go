package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro"
	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/internal/domain"
	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
	"github.com/vfg2006/seller-console/pkg/log"
)

// Login repassa as credenciais ao endpoint de login da Astro e guarda o
// token devolvido. Nenhuma validação local além de campos obrigatórios: a
// autoridade sobre as credenciais é do servidor.
func Login(api astro.SellerAPI, store session.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var credentials domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
			return
		}

		token, err := api.Login(r.Context(), credentials)
		if err != nil {
			if apiErr, ok := astroclient.AsAPIError(err); ok && apiErr.IsUnauthorized() {
				logger.WithField("email", credentials.Email).Warn("session: credenciais recusadas")
				apiErrors.WriteError(w, apiErrors.ErrLoginFailed, "Credenciais inválidas", nil)
				return
			}
			writeUpstreamError(w, r, err, "Falha ao realizar o login. Tente novamente.")
			return
		}

		if err := store.Set(token); err != nil {
			logger.WithError(err).Error("session: falha ao persistir o token")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao guardar a sessão", nil)
			return
		}

		logger.Info("session: login realizado")
		writeJSON(w, http.StatusOK, domain.SessionInfo{Authenticated: true})
	})
}

// Logout limpa o token local. O servidor não é notificado.
func Logout(store session.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("session: falha ao limpar a sessão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao encerrar a sessão", nil)
			return
		}
		writeJSON(w, http.StatusOK, domain.SessionInfo{Authenticated: false})
	})
}

// GetSession informa ao navegador se existe sessão, sem nunca expor o token.
func GetSession(store session.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := store.Get()
		writeJSON(w, http.StatusOK, domain.SessionInfo{Authenticated: ok})
	})
}
