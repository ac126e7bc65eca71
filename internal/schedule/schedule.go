package schedule

import (
	"fmt"
	"sort"
	"time"
)

// SlotMinutes es la duración fija de un turno de atención.
const SlotMinutes = 30

// MinutesOfDay convierte una hora "HH:MM" en minutos desde la medianoche.
// El formato se valida en la capa de transporte; aquí se asume bien formado.
func MinutesOfDay(t string) int {
	var h, m int
	fmt.Sscanf(t, "%d:%d", &h, &m)
	return h*60 + m
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// RangesOverlap compara dos intervalos [inicio,fin) en minutos y devuelve
// true si comparten algún instante.
func RangesOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && end1 > start2
}

// GenerateSlots expande un rango "HH:MM"-"HH:MM" en turnos de 30 minutos.
// El último turno debe caber completo antes del fin del rango.
func GenerateSlots(start, end string) []string {
	startMin := MinutesOfDay(start)
	endMin := MinutesOfDay(end)

	slots := []string{}
	for m := startMin; m+SlotMinutes <= endMin; m += SlotMinutes {
		slots = append(slots, minutesToClock(m))
	}

	return slots
}

// FitsWithin indica si un turno que empieza en t cabe completo dentro
// del rango [start,end). No exige que t coincida con un límite de turno
// generado, solo que el intervalo completo quede cubierto.
func FitsWithin(t, start, end string) bool {
	tm := MinutesOfDay(t)
	return tm >= MinutesOfDay(start) && tm+SlotMinutes <= MinutesOfDay(end)
}

// NormalizeWeekdays elimina duplicados y ordena ascendente los días de la
// semana (0=domingo..6=sábado). Valores fuera de rango se descartan.
func NormalizeWeekdays(days []int) []int {
	seen := make(map[int]bool)
	normalized := []int{}
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		normalized = append(normalized, d)
	}
	sort.Ints(normalized)
	return normalized
}

// ShareWeekday devuelve true si ambos conjuntos comparten al menos un día.
func ShareWeekday(a, b []int) bool {
	set := make(map[int]bool, len(a))
	for _, d := range a {
		set[d] = true
	}
	for _, d := range b {
		if set[d] {
			return true
		}
	}
	return false
}

// Weekday devuelve el día de la semana (0=domingo) de una fecha "YYYY-MM-DD".
func Weekday(date string) (int, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("formato de fecha inválido: %w", err)
	}
	return int(d.Weekday()), nil
}
