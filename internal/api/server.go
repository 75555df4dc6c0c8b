package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro"
	"github.com/vfg2006/seller-console/internal/api/handler"
	"github.com/vfg2006/seller-console/internal/api/handler/router"
	"github.com/vfg2006/seller-console/internal/config"
	"github.com/vfg2006/seller-console/internal/scheduler"
	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/internal/usecases/cataloging"
	"github.com/vfg2006/seller-console/internal/usecases/insighting"
	"github.com/vfg2006/seller-console/internal/usecases/ordering"
	"github.com/vfg2006/seller-console/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	api astro.SellerAPI,
	store session.Store,
	insightService insighting.Insighter,
	orderService ordering.OrderService,
	productService cataloging.ProductService,
	dashboardSyncService *scheduler.DashboardSyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Session(api, store)...),
		router.WithRoutes(handler.Dashboard(insightService, store)...),
		router.WithRoutes(handler.Orders(orderService, store)...),
		router.WithRoutes(handler.Products(productService, store)...),
		router.WithRoutes(handler.CronJobs(dashboardSyncService, store)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
