package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Quarta-feira volta para o domingo anterior",
			input:    time.Date(2025, 6, 11, 18, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Domingo é o próprio início da semana",
			input:    time.Date(2025, 6, 8, 15, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sábado volta seis dias",
			input:    time.Date(2025, 6, 14, 1, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Semana atravessando a virada do mês",
			input:    time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartOfWeek(tt.input))
		})
	}
}

func TestBeginningOfDay(t *testing.T) {
	input := time.Date(2025, 6, 11, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), BeginningOfDay(input))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 11, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, 6, 11, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
