package earning

import (
	"time"

	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/pkg/utils"
)

// Summarize particiona os serviços de um barbeiro nos baldes "hoje" e "esta
// semana" (domingo a agora, inclusive) e acumula ganhos e contagem diária.
// Função pura: mesma entrada e mesmo "now" produzem sempre o mesmo resultado.
//
// Regras:
//   - balde diário: mesma data de calendário de now, ignorando o horário
//   - balde semanal: timestamp em [início da semana, now], inclusive
//   - serviços futuros em relação a now ficam fora dos dois baldes
//   - os valores de comissão são apenas para exibição (commissionRate sobre o total)
func Summarize(records []*domain.ServiceRecord, now time.Time, commissionRate float64) *domain.EarningsSummary {
	summary := &domain.EarningsSummary{}

	startOfWeek := utils.StartOfWeek(now)

	for _, record := range records {
		ts := record.Timestamp

		if utils.SameDay(ts, now) && !ts.After(now) {
			summary.DailyEarnings += record.Price
			summary.DailyServices++
		}

		if !ts.Before(startOfWeek) && !ts.After(now) {
			summary.WeeklyEarnings += record.Price
		}
	}

	summary.DailyCommission = utils.RoundWithTwoDecimalPlace(summary.DailyEarnings * commissionRate)
	summary.WeeklyCommission = utils.RoundWithTwoDecimalPlace(summary.WeeklyEarnings * commissionRate)

	return summary
}
