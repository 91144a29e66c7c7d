package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/api/handler"
	"github.com/cortesdelisboa/barbershop-api/internal/api/handler/router"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/internal/scheduler"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/authenticating"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/earning"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/inventorying"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/reporting"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/servicing"
	"github.com/cortesdelisboa/barbershop-api/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	inventoryService inventorying.InventoryService,
	reportService reporting.ReportService,
	earningsService earning.EarningsService,
	serviceRegistry servicing.ServiceRegistry,
	barberRepo repository.BarberRepository,
	authenticator authenticating.Authenticator,
	lowStockSyncService *scheduler.LowStockSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		LowStockSyncService: lowStockSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Products(inventoryService)...),
		router.WithRoutes(handler.Barbers(barberRepo)...),
		router.WithRoutes(handler.Services(serviceRegistry)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.Earnings(earningsService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
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
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
