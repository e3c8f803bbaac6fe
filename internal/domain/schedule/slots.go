package schedule

import (
	"fmt"
	"time"
)

// Grade fixa de atendimento: domingo fechado, sábado com janela curta,
// dias úteis com janela cheia. Um slot por hora inteira, pulando o almoço.
const (
	WeekdayOpenHour   = 9
	WeekdayCloseHour  = 19
	SaturdayOpenHour  = 9
	SaturdayCloseHour = 14
	LunchHour         = 12
)

// DaySlots gera a grade de horários candidatos ("HH:MM") para uma data.
// Domingo retorna vazio.
func DaySlots(date time.Time) []string {
	open, close := openingWindow(date.Weekday())

	slots := make([]string, 0, close-open)
	for h := open; h < close; h++ {
		if h == LunchHour {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

func openingWindow(wd time.Weekday) (open, close int) {
	switch wd {
	case time.Sunday:
		return 0, 0
	case time.Saturday:
		return SaturdayOpenHour, SaturdayCloseHour
	default:
		return WeekdayOpenHour, WeekdayCloseHour
	}
}

// FilterBooked remove da grade os slots cujo "HH:MM" coincide exatamente
// com o início de uma reserva confirmada. Um slot só é bloqueado por
// coincidência exata de horário, nunca por sobreposição parcial de um
// serviço mais longo. Os inícios são normalizados para loc antes da
// comparação; o fuso que o driver anexou à leitura não importa.
func FilterBooked(slots []string, reservedStarts []time.Time, loc *time.Location) []string {
	if len(reservedStarts) == 0 {
		return slots
	}

	taken := make(map[string]struct{}, len(reservedStarts))
	for _, t := range reservedStarts {
		taken[t.In(loc).Format("15:04")] = struct{}{}
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}
