package earning

import (
	"errors"
	"time"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
)

var ErrMissingBarberID = errors.New("identificador do barbeiro é obrigatório")

type EarningsService interface {
	GetEarnings(barberID string) (*domain.EarningsSummary, error)
}

type Service struct {
	recordRepo repository.ServiceRecordRepository
	cfg        *config.Config
}

func NewService(recordRepo repository.ServiceRecordRepository, cfg *config.Config) EarningsService {
	return &Service{
		recordRepo: recordRepo,
		cfg:        cfg,
	}
}

// GetEarnings calcula o resumo de ganhos do barbeiro contra o instante atual.
// O barbeiro vem explicitamente das claims do chamador, nunca de estado global.
func (s *Service) GetEarnings(barberID string) (*domain.EarningsSummary, error) {
	if barberID == "" {
		return nil, ErrMissingBarberID
	}

	records, err := s.recordRepo.ListServiceRecords(barberID)
	if err != nil {
		return nil, err
	}

	return Summarize(records, time.Now(), s.cfg.Business.CommissionRate), nil
}
