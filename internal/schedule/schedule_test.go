package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay("00:00"))
	assert.Equal(t, 510, MinutesOfDay("08:30"))
	assert.Equal(t, 1439, MinutesOfDay("23:59"))
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"intervalos separados", 480, 540, 600, 660, false},
		{"contenido dentro del otro", 480, 720, 540, 600, true},
		{"solapamiento parcial", 480, 600, 540, 660, true},
		{"borde compartido no solapa", 480, 540, 540, 600, false},
		{"idénticos", 480, 540, 480, 540, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
			// la relación es simétrica
			assert.Equal(t, tt.want, RangesOverlap(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestRangesOverlapHalfOpen(t *testing.T) {
	// [08:00,09:00) y [09:00,10:00) no comparten ningún instante
	assert.False(t, RangesOverlap(480, 540, 540, 600))
	assert.False(t, RangesOverlap(540, 600, 480, 540))
}

func TestGenerateSlots(t *testing.T) {
	assert.Equal(t, []string{"08:00", "08:30"}, GenerateSlots("08:00", "09:00"))
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, GenerateSlots("09:00", "12:00"))
}

func TestGenerateSlotsPartialExcluded(t *testing.T) {
	// un turno que no cabe completo antes del fin queda afuera
	assert.Empty(t, GenerateSlots("08:00", "08:20"))
	assert.Equal(t, []string{"08:00"}, GenerateSlots("08:00", "08:50"))
}

func TestGenerateSlotsEmptyRange(t *testing.T) {
	assert.Empty(t, GenerateSlots("08:00", "08:00"))
	assert.Empty(t, GenerateSlots("09:00", "08:00"))
}

func TestFitsWithin(t *testing.T) {
	assert.True(t, FitsWithin("08:00", "08:00", "10:00"))
	assert.True(t, FitsWithin("09:30", "08:00", "10:00"))
	// el turno terminaría después del cierre
	assert.False(t, FitsWithin("09:45", "08:00", "10:00"))
	assert.False(t, FitsWithin("07:30", "08:00", "10:00"))
	// horas no alineadas a turnos de 30 también se aceptan si caben
	assert.True(t, FitsWithin("08:15", "08:00", "10:00"))
}

func TestNormalizeWeekdays(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, NormalizeWeekdays([]int{5, 3, 1, 3, 5}))
	assert.Equal(t, []int{0, 6}, NormalizeWeekdays([]int{6, 0, 7, -1, 6}))
	assert.Empty(t, NormalizeWeekdays(nil))
}

func TestShareWeekday(t *testing.T) {
	assert.True(t, ShareWeekday([]int{1, 3}, []int{3, 5}))
	assert.False(t, ShareWeekday([]int{1, 3}, []int{2, 4}))
	assert.False(t, ShareWeekday(nil, []int{0}))
}

func TestWeekday(t *testing.T) {
	// 2025-11-17 es lunes, 2025-11-18 es martes
	wd, err := Weekday("2025-11-17")
	assert.NoError(t, err)
	assert.Equal(t, 1, wd)

	wd, err = Weekday("2025-11-18")
	assert.NoError(t, err)
	assert.Equal(t, 2, wd)

	wd, err = Weekday("2025-11-16")
	assert.NoError(t, err)
	assert.Equal(t, 0, wd)

	_, err = Weekday("17/11/2025")
	assert.Error(t, err)
}
