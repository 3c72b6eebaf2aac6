package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/database"
	"github.com/vfg2006/liquor-sales-analytics/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-analytics/internal/config"
	"github.com/vfg2006/liquor-sales-analytics/internal/pipeline"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/aggregating"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/cleaning"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/exporting"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/loading"
	"github.com/vfg2006/liquor-sales-analytics/internal/usecases/quality"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	salesRecordRepo := repository.NewSalesRecordRepository(conn)
	aggregationRepo := repository.NewAggregationRepository(conn)

	loader := loading.NewService(salesRecordRepo, cfg.Input.InsertBatchSize)
	checker := quality.NewService(salesRecordRepo)
	cleaner := cleaning.NewService(salesRecordRepo)
	aggregator := aggregating.NewService(cfg.Aggregator, aggregationRepo)
	exporter := exporting.NewService(cfg.Output.Dir)

	runner := pipeline.NewRunner(cfg, loader, checker, cleaner, aggregator, exporter)

	if _, err := runner.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Execução do pipeline falhou")
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn cria a conexão com o banco de dados configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida")
	return conn
}
