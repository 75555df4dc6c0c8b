package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro"
	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/internal/domain"
)

// Summary é o modelo de view do painel. Stale indica que o valor veio do
// último snapshot bom porque a API remota não respondeu.
type Summary struct {
	*domain.DashboardSummary
	Stale       bool      `json:"stale"`
	RefreshedAt time.Time `json:"refreshedAt"`
}

// Insighter é o controlador da view do painel.
type Insighter interface {
	Summary(ctx context.Context) (*Summary, error)
	RefreshSnapshot(ctx context.Context) error
}

type Service struct {
	api astro.SellerAPI

	mu          sync.RWMutex
	snapshot    *domain.DashboardSummary
	refreshedAt time.Time
}

func NewService(api astro.SellerAPI) *Service {
	return &Service{api: api}
}

// Summary busca o resumo recalculado no servidor a cada ativação da view.
// Com a API fora do ar e um snapshot aquecido, serve o snapshot marcado como
// stale; um 401 sempre propaga, porque a sessão precisa ser tratada.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	fresh, err := s.api.Dashboard(ctx)
	if err == nil {
		s.store(fresh)
		return &Summary{DashboardSummary: fresh, RefreshedAt: time.Now()}, nil
	}

	if apiErr, ok := astroclient.AsAPIError(err); ok && apiErr.IsUnauthorized() {
		return nil, err
	}

	snapshot, refreshedAt, ok := s.Snapshot()
	if !ok {
		return nil, err
	}

	logrus.WithError(err).Warn("insighting: API indisponível, servindo snapshot do painel")
	return &Summary{DashboardSummary: snapshot, Stale: true, RefreshedAt: refreshedAt}, nil
}

// RefreshSnapshot aquece o snapshot em background. Usado pelo agendador.
func (s *Service) RefreshSnapshot(ctx context.Context) error {
	fresh, err := s.api.Dashboard(ctx)
	if err != nil {
		return err
	}
	s.store(fresh)
	return nil
}

// Snapshot devolve o último resumo bom conhecido.
func (s *Service) Snapshot() (*domain.DashboardSummary, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.refreshedAt, s.snapshot != nil
}

func (s *Service) store(summary *domain.DashboardSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = summary
	s.refreshedAt = time.Now()
}
