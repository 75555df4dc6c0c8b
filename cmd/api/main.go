package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro"
	"github.com/vfg2006/seller-console/infrastructure/integrator/astro/astroclient"
	"github.com/vfg2006/seller-console/internal/api"
	"github.com/vfg2006/seller-console/internal/config"
	"github.com/vfg2006/seller-console/internal/scheduler"
	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/internal/uploads"
	"github.com/vfg2006/seller-console/internal/usecases/cataloging"
	"github.com/vfg2006/seller-console/internal/usecases/insighting"
	"github.com/vfg2006/seller-console/internal/usecases/ordering"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := sessionStore(cfg.Session)

	astroClient := astroclient.NewClient(cfg.Astro.BaseURL, store)
	sellerAPI := astro.New(astroClient)

	staging, err := uploads.NewStaging(cfg.Uploads.StagingDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o diretório de staging de imagens")
	}

	insightService := insighting.NewService(sellerAPI)
	orderService := ordering.NewService(sellerAPI)
	productService := cataloging.NewService(sellerAPI, staging)

	dashboardSyncService := scheduler.NewDashboardSyncService(insightService, cfg)
	if err := dashboardSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do painel")
	}
	defer dashboardSyncService.Stop()

	server, err := api.New(
		cfg,
		sellerAPI,
		store,
		insightService,
		orderService,
		productService,
		dashboardSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sessionStore cria o armazenamento da sessão. Sem caminho configurado, a
// sessão vive apenas em memória e morre com o processo.
func sessionStore(sessionConfig config.Session) session.Store {
	if sessionConfig.StorePath == "" {
		logrus.Info("Sessão sem persistência em disco")
		return session.NewMemoryStore()
	}

	store, err := session.NewFileStore(sessionConfig.StorePath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o armazenamento de sessão")
	}

	logrus.WithField("path", sessionConfig.StorePath).Info("Sessão persistida em disco")
	return store
}
