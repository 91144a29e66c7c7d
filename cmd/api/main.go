package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/database/postgres"
	"github.com/cortesdelisboa/barbershop-api/infrastructure/render"
	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/api"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/internal/scheduler"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/authenticating"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/earning"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/inventorying"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/reporting"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/servicing"
	"github.com/cortesdelisboa/barbershop-api/pkg/notify"
	"github.com/sirupsen/logrus"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	barberRepo := repository.NewBarberRepository(pgConn)
	serviceRecordRepo := repository.NewServiceRecordRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, barberRepo, cfg)

	inventoryService := inventorying.NewService(productRepo)
	reportService := reporting.NewService(productRepo, barberRepo, render.NewPDFRenderer(), cfg)
	earningsService := earning.NewService(serviceRecordRepo, cfg)
	serviceRegistry := servicing.NewService(serviceRecordRepo, barberRepo, cfg)

	notifier := notify.FromConfig(cfg.Mail)

	// Inicializa o agendador de verificação de estoque baixo
	lowStockSyncService := scheduler.NewLowStockSyncService(productRepo, notifier, cfg)

	if err := lowStockSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de estoque baixo")
	} else {
		logrus.Info("Agendador de verificação de estoque baixo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		inventoryService,
		reportService,
		earningsService,
		serviceRegistry,
		barberRepo,
		authenticator,
		lowStockSyncService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
