package schedule

import (
	"reflect"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("data inválida %q: %v", s, err)
	}
	return d
}

func TestDaySlotsWeekday(t *testing.T) {
	// 2026-09-02 é quarta-feira.
	slots := DaySlots(mustDate(t, "2026-09-02"))

	want := []string{
		"09:00", "10:00", "11:00",
		"13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("grade de dia útil = %v, esperado %v", slots, want)
	}
}

func TestDaySlotsSaturday(t *testing.T) {
	// 2026-09-05 é sábado.
	slots := DaySlots(mustDate(t, "2026-09-05"))

	want := []string{"09:00", "10:00", "11:00", "13:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("grade de sábado = %v, esperado %v", slots, want)
	}
}

func TestDaySlotsSundayEmpty(t *testing.T) {
	// 2026-09-06 é domingo.
	slots := DaySlots(mustDate(t, "2026-09-06"))
	if len(slots) != 0 {
		t.Fatalf("domingo deveria ser vazio, veio %v", slots)
	}
}

func TestDaySlotsNeverIncludeLunch(t *testing.T) {
	for day := 0; day < 7; day++ {
		date := mustDate(t, "2026-08-31").AddDate(0, 0, day)
		for _, s := range DaySlots(date) {
			if s == "12:00" {
				t.Fatalf("%s: slot de almoço presente na grade", date.Weekday())
			}
		}
	}
}

func TestFilterBookedExactMatchOnly(t *testing.T) {
	slots := []string{"09:00", "10:00", "11:00"}

	loc := time.UTC
	reserved := []time.Time{
		// 09:30 não coincide com nenhum slot: não bloqueia 09:00 nem 10:00.
		time.Date(2026, 9, 2, 9, 30, 0, 0, loc),
		time.Date(2026, 9, 2, 10, 0, 0, 0, loc),
	}

	got := FilterBooked(slots, reserved, loc)
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterBooked = %v, esperado %v", got, want)
	}
}

// O mesmo instante deve bloquear o mesmo slot independente do fuso em
// que o driver devolveu a leitura.
func TestFilterBookedNormalizesLocation(t *testing.T) {
	shopLoc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	slots := []string{"09:00", "10:00"}

	// 09:00 em São Paulo lida como 12:00Z pelo driver.
	inShopTZ := time.Date(2026, 9, 2, 9, 0, 0, 0, shopLoc)
	inUTC := inShopTZ.UTC()
	if !inUTC.Equal(inShopTZ) {
		t.Fatalf("instantes divergem")
	}

	gotShop := FilterBooked(slots, []time.Time{inShopTZ}, shopLoc)
	gotUTC := FilterBooked(slots, []time.Time{inUTC}, shopLoc)

	want := []string{"10:00"}
	if !reflect.DeepEqual(gotShop, want) {
		t.Fatalf("início no fuso da barbearia: %v, esperado %v", gotShop, want)
	}
	if !reflect.DeepEqual(gotUTC, want) {
		t.Fatalf("início em UTC: %v, esperado %v", gotUTC, want)
	}
}

func TestFilterBookedNoReservations(t *testing.T) {
	slots := []string{"09:00", "10:00"}
	got := FilterBooked(slots, nil, time.UTC)
	if !reflect.DeepEqual(got, slots) {
		t.Fatalf("sem reservas a grade deveria ficar intacta, veio %v", got)
	}
}
