package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/pkg/notify"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// LowStockSyncConfig representa a configuração do agendador de alerta de estoque
type LowStockSyncConfig struct {
	CronSchedule string
	Threshold    int
	SyncEnabled  bool
}

// LowStockSyncService agenda a varredura diária de produtos abaixo do limite
// de reposição e notifica a gerência pelo canal configurado.
type LowStockSyncService struct {
	scheduler           *gocron.Scheduler
	config              LowStockSyncConfig
	productRepo         repository.ProductRepository
	notifier            notify.Notifier
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewLowStockSyncService(
	productRepo repository.ProductRepository,
	notifier notify.Notifier,
	appConfig *config.Config,
) *LowStockSyncService {
	syncConfig := LowStockSyncConfig{
		CronSchedule: appConfig.LowStockSync.CronSchedule,
		Threshold:    appConfig.Business.LowStockThreshold,
		SyncEnabled:  appConfig.LowStockSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"threshold":     syncConfig.Threshold,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de alerta de estoque baixo carregada")

	return &LowStockSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		productRepo: productRepo,
		notifier:    notifier,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *LowStockSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Alerta de estoque baixo desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de alerta de estoque baixo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar alerta de estoque baixo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de alerta de estoque baixo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a varredura imediatamente. Execuções concorrentes são ignoradas.
func (s *LowStockSyncService) RunNow() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Varredura de estoque baixo já em execução, ignorando")
		return
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

	products, err := s.productRepo.ListProductsBelowStock(s.config.Threshold)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos abaixo do limite de reposição")
		if nErr := s.notifier.Notify(notify.SeverityError, "Alerta de estoque",
			"Falha ao verificar o estoque de produtos"); nErr != nil {
			logrus.WithError(nErr).Error("Erro ao enviar notificação de falha")
		}
		return
	}

	if len(products) == 0 {
		logrus.WithField("threshold", s.config.Threshold).Info("Nenhum produto abaixo do limite de reposição")
		return
	}

	lines := make([]string, 0, len(products))
	for _, product := range products {
		lines = append(lines, fmt.Sprintf("- %s: %d unidades", product.Name, product.Stock))
	}

	message := fmt.Sprintf(
		"%d produto(s) abaixo do limite de reposição (%d unidades):\n%s",
		len(products), s.config.Threshold, strings.Join(lines, "\n"),
	)

	if err := s.notifier.Notify(notify.SeverityNormal, "Produtos precisando reposição", message); err != nil {
		logrus.WithError(err).Error("Erro ao enviar notificação de estoque baixo")
		return
	}

	logrus.WithField("products", len(products)).Info("Alerta de estoque baixo enviado")
}

// Status retorna o estado atual do agendador
func (s *LowStockSyncService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]interface{}{
		"enabled":          s.config.SyncEnabled,
		"cron_schedule":    s.config.CronSchedule,
		"running":          s.syncRunning,
		"last_started_at":  s.lastSyncStartedAt,
		"last_finished_at": s.lastSyncCompletedAt,
	}
}
