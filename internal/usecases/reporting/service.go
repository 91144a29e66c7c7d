package reporting

import (
	"fmt"
	"time"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/config"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type ReportService interface {
	GetSummary() (*domain.ReportSummary, error)
	ExportReport() ([]byte, string, error)
}

type Service struct {
	productRepo repository.ProductRepository
	barberRepo  repository.BarberRepository
	renderer    DocumentRenderer
	cfg         *config.Config
}

func NewService(
	productRepo repository.ProductRepository,
	barberRepo repository.BarberRepository,
	renderer DocumentRenderer,
	cfg *config.Config,
) ReportService {
	return &Service{
		productRepo: productRepo,
		barberRepo:  barberRepo,
		renderer:    renderer,
		cfg:         cfg,
	}
}

// GetSummary recalcula o resumo sob demanda a partir das coleções atuais
func (s *Service) GetSummary() (*domain.ReportSummary, error) {
	products, barbers, err := s.loadCollections()
	if err != nil {
		return nil, err
	}

	return Aggregate(products, barbers, s.cfg.Business.LowStockThreshold), nil
}

// ExportReport gera o documento do relatório e devolve os bytes com o nome
// de arquivo sugerido. O chamador decide o destino; aqui não há I/O de arquivo.
func (s *Service) ExportReport() ([]byte, string, error) {
	products, barbers, err := s.loadCollections()
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	report := &domain.Report{
		GeneratedAt: now,
		Products:    products,
		Barbers:     barbers,
		Summary:     Aggregate(products, barbers, s.cfg.Business.LowStockThreshold),
	}

	document, err := s.renderer.RenderReport(report)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao renderizar o relatório: %w", err)
	}

	filename := fmt.Sprintf("relatorio-barbearia-%s.pdf", now.Format("2006-01-02"))

	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"barbers":  len(barbers),
		"products": len(products),
	}).Info("Relatório gerado com sucesso")

	return document, filename, nil
}

func (s *Service) loadCollections() ([]*domain.Product, []*domain.Barber, error) {
	products, err := s.productRepo.ListProducts()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}

	barbers, err := s.barberRepo.ListBarbers()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar barbeiros: %w", err)
	}

	return products, barbers, nil
}
