package domain

// EarningsSummary é o resumo de ganhos de um barbeiro calculado contra o
// instante "agora" da chamada. Derivado, nunca persistido.
type EarningsSummary struct {
	DailyEarnings    float64 `json:"daily_earnings"`
	WeeklyEarnings   float64 `json:"weekly_earnings"`
	DailyServices    int     `json:"daily_services"`
	DailyCommission  float64 `json:"daily_commission"`
	WeeklyCommission float64 `json:"weekly_commission"`
}
