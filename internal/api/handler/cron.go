package handler

import (
	"net/http"

	"github.com/vfg2006/seller-console/internal/scheduler"
	"github.com/vfg2006/seller-console/pkg/apiErrors"
	"github.com/vfg2006/seller-console/pkg/log"
)

// CronJobStatus expõe o estado do agendador de sincronização do painel.
func CronJobStatus(syncService *scheduler.DashboardSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador não disponível", nil)
			return
		}
		writeJSON(w, http.StatusOK, syncService.Status())
	})
}

// RunCronJob dispara manualmente a sincronização do snapshot do painel.
func RunCronJob(syncService *scheduler.DashboardSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador não disponível", nil)
			return
		}

		log.ForContext(r.Context()).Info("cron: sincronização manual do painel solicitada")

		if err := syncService.RunNow(r.Context()); err != nil {
			writeUpstreamError(w, r, err, "Falha ao sincronizar o snapshot do painel")
			return
		}

		writeJSON(w, http.StatusOK, syncService.Status())
	})
}
