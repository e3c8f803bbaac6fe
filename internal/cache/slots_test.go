package cache

import (
	"context"
	"testing"
	"time"
)

// Endereço vazio desliga o cache: o construtor devolve nil e todos os
// métodos viram no-op, sem guarda extra no chamador.
func TestSlotCacheDisabledWithoutAddr(t *testing.T) {
	c := NewSlotCache("", time.Minute)
	if c != nil {
		t.Fatalf("cache deveria ser nil sem endereço")
	}

	ctx := context.Background()
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	if slots, ok := c.Get(ctx, 1, date); ok || slots != nil {
		t.Fatalf("Get em cache desligado devolveu %v, %v", slots, ok)
	}

	// Não pode entrar em pânico.
	c.Set(ctx, 1, date, []string{"09:00"})
	c.Invalidate(ctx, 1, date)
}
