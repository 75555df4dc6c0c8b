package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/internal/config"
	"github.com/vfg2006/seller-console/internal/usecases/insighting"
)

// DashboardSyncService agenda a atualização periódica do snapshot do painel,
// mantendo-o aquecido para quando a API remota estiver fora do ar.
type DashboardSyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.DashboardSync
	insights  insighting.Insighter

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardSyncService(insights insighting.Insighter, appConfig *config.Config) *DashboardSyncService {
	return &DashboardSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       appConfig.DashboardSync,
		insights:  insights,
	}
}

// Start registra o job e inicia o agendador em background. Desabilitado por
// configuração, apenas loga e retorna.
func (s *DashboardSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("scheduler: sincronização do painel desabilitada")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		if err := s.RunNow(ctx); err != nil {
			logrus.WithError(err).Error("scheduler: falha na sincronização do painel")
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.cfg.CronSchedule).Info("scheduler: sincronização do painel iniciada")
	return nil
}

// Stop encerra o agendador.
func (s *DashboardSyncService) Stop() {
	s.scheduler.Stop()
}

// RunNow executa uma sincronização imediata, pulando caso outra ainda esteja
// em andamento.
func (s *DashboardSyncService) RunNow(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("scheduler: sincronização do painel já em andamento, pulando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	return s.insights.RefreshSnapshot(ctx)
}

// Status expõe o estado do agendador para o endpoint de diagnóstico.
func (s *DashboardSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.cfg.Enabled,
		"cron":                   s.cfg.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
