package scheduler

import (
	"fmt"
	"testing"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository/mocks"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/pkg/notify"
	notifymocks "github.com/cortesdelisboa/barbershop-api/pkg/notify/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSyncTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Business.LowStockThreshold = 10
	cfg.LowStockSync.CronSchedule = "0 8 * * *"
	cfg.LowStockSync.Enabled = true
	return cfg
}

// TestLowStockSync_RunNow testa os diferentes cenários de execução da varredura
func TestLowStockSync_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name  string
		setup func(productRepo *mocks.MockProductRepository, notifier *notifymocks.MockNotifier)
	}{
		{
			name: "Produtos abaixo do limite - envia notificação com a lista",
			setup: func(productRepo *mocks.MockProductRepository, notifier *notifymocks.MockNotifier) {
				productRepo.EXPECT().ListProductsBelowStock(10).Return([]*domain.Product{
					{ID: "PROD001", Name: "Cera Matte", Stock: 8},
					{ID: "PROD002", Name: "Loção Pós-Barba", Stock: 3},
				}, nil)

				notifier.EXPECT().
					Notify(notify.SeverityNormal, "Produtos precisando reposição", gomock.Any()).
					DoAndReturn(func(severity notify.Severity, title, message string) error {
						assert.Contains(t, message, "2 produto(s) abaixo do limite de reposição")
						assert.Contains(t, message, "- Cera Matte: 8 unidades")
						assert.Contains(t, message, "- Loção Pós-Barba: 3 unidades")
						return nil
					})
			},
		},
		{
			name: "Nenhum produto abaixo do limite - não notifica",
			setup: func(productRepo *mocks.MockProductRepository, notifier *notifymocks.MockNotifier) {
				productRepo.EXPECT().ListProductsBelowStock(10).Return([]*domain.Product{}, nil)
			},
		},
		{
			name: "Falha na consulta - notifica erro",
			setup: func(productRepo *mocks.MockProductRepository, notifier *notifymocks.MockNotifier) {
				productRepo.EXPECT().ListProductsBelowStock(10).Return(nil, fmt.Errorf("erro de conexão"))
				notifier.EXPECT().
					Notify(notify.SeverityError, "Alerta de estoque", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Falha no envio da notificação não derruba a varredura",
			setup: func(productRepo *mocks.MockProductRepository, notifier *notifymocks.MockNotifier) {
				productRepo.EXPECT().ListProductsBelowStock(10).Return([]*domain.Product{
					{ID: "PROD001", Name: "Cera Matte", Stock: 8},
				}, nil)
				notifier.EXPECT().
					Notify(notify.SeverityNormal, gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("smtp indisponível"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			notifier := notifymocks.NewMockNotifier(ctrl)
			tt.setup(productRepo, notifier)

			service := NewLowStockSyncService(productRepo, notifier, newSyncTestConfig())
			service.RunNow()

			status := service.Status()
			assert.Equal(t, false, status["running"])
		})
	}
}

// TestLowStockSync_Status verifica o estado exposto para o endpoint de cron
func TestLowStockSync_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	notifier := notifymocks.NewMockNotifier(ctrl)

	service := NewLowStockSyncService(productRepo, notifier, newSyncTestConfig())

	status := service.Status()
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 8 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["running"])
}
