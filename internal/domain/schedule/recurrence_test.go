package schedule

import (
	"testing"
	"time"

	"github.com/navalha-studio/booking-api/internal/httperr"
)

func newRule(repeat string) Rule {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	return Rule{
		BarberID: 1,
		Start:    time.Date(2026, 8, 31, 9, 0, 0, 0, loc), // segunda-feira
		End:      time.Date(2026, 8, 31, 10, 0, 0, 0, loc),
		Type:     "pausa",
		Repeat:   repeat,
	}
}

func TestExpandNoRepeat(t *testing.T) {
	occ := Expand(newRule(RepeatNone))
	if len(occ) != 1 {
		t.Fatalf("regra única gerou %d ocorrências, esperado 1", len(occ))
	}
	if !occ[0].Start.Equal(newRule(RepeatNone).Start) {
		t.Fatalf("ocorrência única com início %v", occ[0].Start)
	}
}

func TestExpandDaily(t *testing.T) {
	occ := Expand(newRule(RepeatDaily))
	if len(occ) != 365 {
		t.Fatalf("regra diária gerou %d ocorrências, esperado 365", len(occ))
	}
}

func TestExpandWeekly(t *testing.T) {
	occ := Expand(newRule(RepeatWeekly))
	if len(occ) != 53 {
		t.Fatalf("regra semanal gerou %d ocorrências, esperado 53", len(occ))
	}

	for i, o := range occ {
		if o.Start.Weekday() != time.Monday {
			t.Fatalf("ocorrência %d caiu em %s, esperado segunda", i, o.Start.Weekday())
		}
		if o.Start.Hour() != 9 || o.End.Hour() != 10 {
			t.Fatalf("ocorrência %d perdeu o horário do dia: %v-%v", i, o.Start, o.End)
		}
	}

	last := occ[len(occ)-1]
	if got := int(last.Start.Sub(occ[0].Start).Hours() / 24); got != 364 {
		t.Fatalf("última ocorrência a %d dias do início, esperado 364", got)
	}
}

func TestExpandIgnoresRepeatUntil(t *testing.T) {
	rule := newRule(RepeatWeekly)
	until := rule.Start.AddDate(0, 1, 0)
	rule.RepeatUntil = &until

	occ := Expand(rule)
	if len(occ) != 53 {
		t.Fatalf("repetir_ate alterou a expansão: %d ocorrências, esperado 53", len(occ))
	}
}

func TestValidateRuleRejectsUnknownRepeat(t *testing.T) {
	rule := newRule("mensal")
	err := ValidateRule(rule)
	if !httperr.IsBusiness(err, "invalid_repeat") {
		t.Fatalf("repeat desconhecido deveria falhar com invalid_repeat, veio %v", err)
	}
}

func TestValidateRuleRejectsInvertedInterval(t *testing.T) {
	rule := newRule(RepeatNone)
	rule.End = rule.Start.Add(-time.Hour)
	err := ValidateRule(rule)
	if !httperr.IsBusiness(err, "invalid_interval") {
		t.Fatalf("intervalo invertido deveria falhar com invalid_interval, veio %v", err)
	}
}
