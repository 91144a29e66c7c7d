package servicing

import (
	"fmt"
	"testing"
	"time"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository/mocks"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Business.CommissionRate = 0.20
	return cfg
}

func TestRegisterService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	barber := &domain.Barber{ID: "BARB001", Name: "João Ferreira"}

	tests := []struct {
		name     string
		record   *domain.ServiceRecord
		setup    func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository)
		validate func(t *testing.T, created *domain.ServiceRecord, err error)
	}{
		{
			name:   "Serviço válido acumula comissão de 20% no saldo do barbeiro",
			record: &domain.ServiceRecord{BarberID: "BARB001", Name: "Corte", Price: 50.0},
			setup: func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository) {
				barberRepo.EXPECT().GetBarberByID("BARB001").Return(barber, nil)
				recordRepo.EXPECT().
					CreateServiceRecordWithAccrual(gomock.Any(), 10.0).
					DoAndReturn(func(r *domain.ServiceRecord, _ float64) (*domain.ServiceRecord, error) {
						r.ID = "SVC001"
						return r, nil
					})
			},
			validate: func(t *testing.T, created *domain.ServiceRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "SVC001", created.ID)
				// Timestamp ausente é preenchido com o instante atual
				assert.False(t, created.Timestamp.IsZero())
			},
		},
		{
			name: "Timestamp informado é preservado",
			record: &domain.ServiceRecord{
				BarberID:  "BARB001",
				Name:      "Barba",
				Price:     30.0,
				Timestamp: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),
			},
			setup: func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository) {
				barberRepo.EXPECT().GetBarberByID("BARB001").Return(barber, nil)
				recordRepo.EXPECT().
					CreateServiceRecordWithAccrual(gomock.Any(), 6.0).
					DoAndReturn(func(r *domain.ServiceRecord, _ float64) (*domain.ServiceRecord, error) { return r, nil })
			},
			validate: func(t *testing.T, created *domain.ServiceRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), created.Timestamp)
			},
		},
		{
			name:   "Barbeiro ausente",
			record: &domain.ServiceRecord{Name: "Corte", Price: 50.0},
			setup:  func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository) {},
			validate: func(t *testing.T, created *domain.ServiceRecord, err error) {
				assert.ErrorIs(t, err, ErrMissingBarberID)
			},
		},
		{
			name:   "Nome do serviço em branco",
			record: &domain.ServiceRecord{BarberID: "BARB001", Name: "  ", Price: 50.0},
			setup:  func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository) {},
			validate: func(t *testing.T, created *domain.ServiceRecord, err error) {
				assert.ErrorIs(t, err, ErrMissingName)
			},
		},
		{
			name:   "Preço negativo",
			record: &domain.ServiceRecord{BarberID: "BARB001", Name: "Corte", Price: -10.0},
			setup:  func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository) {},
			validate: func(t *testing.T, created *domain.ServiceRecord, err error) {
				assert.ErrorIs(t, err, ErrNegativePrice)
			},
		},
		{
			name:   "Barbeiro inexistente",
			record: &domain.ServiceRecord{BarberID: "BARB999", Name: "Corte", Price: 50.0},
			setup: func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository) {
				barberRepo.EXPECT().GetBarberByID("BARB999").Return(nil, nil)
			},
			validate: func(t *testing.T, created *domain.ServiceRecord, err error) {
				assert.ErrorIs(t, err, ErrBarberNotFound)
			},
		},
		{
			// Registro e acúmulo são atômicos: uma falha no acúmulo desfaz a
			// transação inteira e nenhum serviço órfão fica persistido
			name:   "Falha ao acumular comissão desfaz o registro",
			record: &domain.ServiceRecord{BarberID: "BARB001", Name: "Corte", Price: 50.0},
			setup: func(recordRepo *mocks.MockServiceRecordRepository, barberRepo *mocks.MockBarberRepository) {
				barberRepo.EXPECT().GetBarberByID("BARB001").Return(barber, nil)
				recordRepo.EXPECT().
					CreateServiceRecordWithAccrual(gomock.Any(), 10.0).
					Return(nil, fmt.Errorf("erro ao acumular comissão do barbeiro: erro de conexão"))
			},
			validate: func(t *testing.T, created *domain.ServiceRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, created)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recordRepo := mocks.NewMockServiceRecordRepository(ctrl)
			barberRepo := mocks.NewMockBarberRepository(ctrl)
			tt.setup(recordRepo, barberRepo)

			service := NewService(recordRepo, barberRepo, newTestConfig())
			created, err := service.RegisterService(tt.record)
			tt.validate(t, created, err)
		})
	}
}

func TestListServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordRepo := mocks.NewMockServiceRecordRepository(ctrl)
	barberRepo := mocks.NewMockBarberRepository(ctrl)

	records := []*domain.ServiceRecord{
		{ID: "SVC001", BarberID: "BARB001", Name: "Corte", Price: 50.0},
	}
	recordRepo.EXPECT().ListServiceRecords("BARB001").Return(records, nil)

	service := NewService(recordRepo, barberRepo, newTestConfig())

	result, err := service.ListServices("BARB001")
	assert.NoError(t, err)
	assert.Equal(t, records, result)
}
