package schedule

import (
	"time"

	"github.com/navalha-studio/booking-api/internal/httperr"
)

// ===============================
// Recurrence
// ===============================

const (
	RepeatNone   = "nao"
	RepeatDaily  = "diario"
	RepeatWeekly = "semanal"
)

// ExpansionCeilingDays limita a materialização de regras recorrentes a um
// ano a partir da data inicial. O campo repetir_ate da regra não é
// consultado aqui.
const ExpansionCeilingDays = 365

type Rule struct {
	BarberID uint

	Start time.Time
	End   time.Time

	Type   string
	Reason string
	AllDay bool

	Repeat      string
	RepeatUntil *time.Time
}

type Occurrence struct {
	Start time.Time
	End   time.Time
}

func ValidateRule(r Rule) error {
	switch r.Repeat {
	case RepeatNone, RepeatDaily, RepeatWeekly:
	default:
		return httperr.ErrBusiness("invalid_repeat")
	}

	if !r.End.After(r.Start) {
		return httperr.ErrBusiness("invalid_interval")
	}

	return nil
}

// Expand materializa a regra em ocorrências concretas. Regras sem
// repetição viram exatamente uma ocorrência; regras diárias e semanais
// avançam 1 ou 7 dias por passo, carregando o horário do dia da regra,
// até o teto de um ano.
func Expand(r Rule) []Occurrence {
	switch r.Repeat {
	case RepeatDaily:
		return expand(r, 1)
	case RepeatWeekly:
		return expand(r, 7)
	default:
		return []Occurrence{{Start: r.Start, End: r.End}}
	}
}

func expand(r Rule, stepDays int) []Occurrence {
	out := make([]Occurrence, 0, ExpansionCeilingDays/stepDays+1)

	for day := 0; day < ExpansionCeilingDays; day += stepDays {
		d := r.Start.AddDate(0, 0, day)

		start := time.Date(
			d.Year(), d.Month(), d.Day(),
			r.Start.Hour(), r.Start.Minute(), r.Start.Second(), 0,
			r.Start.Location(),
		)
		end := time.Date(
			d.Year(), d.Month(), d.Day(),
			r.End.Hour(), r.End.Minute(), r.End.Second(), 0,
			r.End.Location(),
		)

		out = append(out, Occurrence{Start: start, End: end})
	}

	return out
}
