package servicing

import (
	"strings"
	"time"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/pkg/utils"
)

type ServiceRegistry interface {
	RegisterService(record *domain.ServiceRecord) (*domain.ServiceRecord, error)
	ListServices(barberID string) ([]*domain.ServiceRecord, error)
}

type Service struct {
	recordRepo repository.ServiceRecordRepository
	barberRepo repository.BarberRepository
	cfg        *config.Config
}

func NewService(
	recordRepo repository.ServiceRecordRepository,
	barberRepo repository.BarberRepository,
	cfg *config.Config,
) ServiceRegistry {
	return &Service{
		recordRepo: recordRepo,
		barberRepo: barberRepo,
		cfg:        cfg,
	}
}

// RegisterService persiste um serviço concluído e acumula a comissão no saldo
// pendente do barbeiro. O registro é imutável depois de criado.
func (s *Service) RegisterService(record *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	record.Name = strings.TrimSpace(record.Name)

	if record.BarberID == "" {
		return nil, ErrMissingBarberID
	}
	if record.Name == "" {
		return nil, ErrMissingName
	}
	if record.Price < 0 {
		return nil, ErrNegativePrice
	}

	barber, err := s.barberRepo.GetBarberByID(record.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, ErrBarberNotFound
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	// Registro e acúmulo de comissão acontecem na mesma transação; uma
	// falha não deixa serviço persistido sem saldo correspondente
	commission := utils.RoundWithTwoDecimalPlace(record.Price * s.cfg.Business.CommissionRate)
	record, err = s.recordRepo.CreateServiceRecordWithAccrual(record, commission)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *Service) ListServices(barberID string) ([]*domain.ServiceRecord, error) {
	return s.recordRepo.ListServiceRecords(barberID)
}
