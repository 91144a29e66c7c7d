package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// BeginningOfDay retorna a meia-noite do dia de t, na localização de t
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfWeek retorna a meia-noite do domingo mais recente em ou antes de t.
// A semana da barbearia começa no domingo.
func StartOfWeek(t time.Time) time.Time {
	return BeginningOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

// SameDay compara apenas o dia do calendário (ano, mês e dia), ignorando o horário
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
