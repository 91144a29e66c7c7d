package render

import (
	"bytes"
	"fmt"

	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/go-pdf/fpdf"
)

// PDFRenderer implementa reporting.DocumentRenderer e produz o relatório da
// barbearia com layout fixo: título, tabela de barbeiros, tabela de produtos
// e bloco de resumo. Valores monetários com duas casas e prefixo de moeda.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

const (
	rowHeight    = 8.0
	tableWidth   = 190.0
	currencyFmt  = "€%.2f"
	reportsTitle = "Relatório da Barbearia"
)

func (r *PDFRenderer) RenderReport(report *domain.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Data de criação fixada no momento de geração do relatório, para que a
	// mesma entrada produza sempre os mesmos bytes
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.SetModificationDate(report.GeneratedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(tableWidth, 12, tr(reportsTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(tableWidth, 6, tr(fmt.Sprintf("Gerado em %s", report.GeneratedAt.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	r.renderBarbersTable(pdf, tr, report.Barbers)
	r.renderProductsTable(pdf, tr, report.Products)
	r.renderSummary(pdf, tr, report.Summary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar o PDF do relatório: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderBarbersTable(pdf *fpdf.Fpdf, tr func(string) string, barbers []*domain.Barber) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(tableWidth, 10, tr("Barbeiros"), "", 1, "L", false, 0, "")

	widths := []float64{70, 40, 40, 40}
	r.tableHeader(pdf, tr, widths, []string{"Nome", "Serviços", "Avaliação", "Saldo"})

	pdf.SetFont("Helvetica", "", 10)
	for _, barber := range barbers {
		pdf.CellFormat(widths[0], rowHeight, tr(barber.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%d", barber.Services), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], rowHeight, fmt.Sprintf("%.1f", barber.Rating), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], rowHeight, tr(fmt.Sprintf(currencyFmt, barber.Balance)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func (r *PDFRenderer) renderProductsTable(pdf *fpdf.Fpdf, tr func(string) string, products []*domain.Product) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(tableWidth, 10, tr("Produtos"), "", 1, "L", false, 0, "")

	widths := []float64{100, 45, 45}
	r.tableHeader(pdf, tr, widths, []string{"Produto", "Estoque", "Preço"})

	pdf.SetFont("Helvetica", "", 10)
	for _, product := range products {
		pdf.CellFormat(widths[0], rowHeight, tr(product.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%d", product.Stock), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], rowHeight, tr(fmt.Sprintf(currencyFmt, product.BasePrice)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func (r *PDFRenderer) renderSummary(pdf *fpdf.Fpdf, tr func(string) string, summary *domain.ReportSummary) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(tableWidth, 9, tr("Resumo:"), "", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Total de Barbeiros: %d", summary.TotalBarbers),
		fmt.Sprintf("Total em Comissões: "+currencyFmt, summary.TotalBalance),
		fmt.Sprintf("Total de Produtos em Estoque: %d", summary.TotalStock),
	}
	for _, line := range lines {
		pdf.CellFormat(tableWidth, 8, tr(line), "", 1, "L", true, 0, "")
	}
}

func (r *PDFRenderer) tableHeader(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, titles []string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 10)
	for i, title := range titles {
		last := 0
		if i == len(titles)-1 {
			last = 1
		}
		pdf.CellFormat(widths[i], rowHeight, tr(title), "1", last, "L", true, 0, "")
	}
}
