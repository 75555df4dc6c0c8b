package handler

import (
	"net/http"

	"github.com/vfg2006/seller-console/internal/usecases/insighting"
	"github.com/vfg2006/seller-console/pkg/log"
)

// GetDashboard busca o resumo do painel, recalculado no servidor a cada
// ativação da view.
func GetDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.Summary(r.Context())
		if err != nil {
			writeUpstreamError(w, r, err, "Falha ao carregar o painel. Tente novamente.")
			return
		}

		if summary.Stale {
			logger.Warn("dashboard: servindo snapshot desatualizado")
		}
		writeJSON(w, http.StatusOK, summary)
	})
}
