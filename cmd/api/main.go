package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/srihariharan14/auto-sales-dashboard/infrastructure/classifier"
	"github.com/srihariharan14/auto-sales-dashboard/infrastructure/dataset"
	"github.com/srihariharan14/auto-sales-dashboard/internal/api"
	"github.com/srihariharan14/auto-sales-dashboard/internal/config"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/classifying"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/dashboarding"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dataset e artefato de modelo são carregados antes do servidor abrir a
	// porta: qualquer falha aqui encerra o processo.
	store, err := dataset.NewStore(cfg.Data.SalesPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	model, err := classifier.Load(cfg.Data.ModelPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o artefato de modelo")
	}

	dashboardService := dashboarding.NewService(store, cfg.Dashboard.Title)
	classifierService := classifying.NewService(model)

	server, err := api.New(cfg, dashboardService, classifierService)
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
