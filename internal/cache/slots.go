package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCache guarda grades de horários disponíveis já calculadas.
// Um ponteiro nil desliga o cache por completo.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(addr string, ttl time.Duration) *SlotCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, slot cache disabled: %v", err)
		return nil
	}

	return &SlotCache{rdb: rdb, ttl: ttl}
}

func slotKey(barberID uint, date time.Time) string {
	return fmt.Sprintf("slots:%d:%s", barberID, date.Format("2006-01-02"))
}

func (c *SlotCache) Get(ctx context.Context, barberID uint, date time.Time) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barberID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, barberID uint, date time.Time, slots []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(barberID, date), raw, c.ttl).Err(); err != nil {
		log.Printf("slot cache set failed: %v", err)
	}
}

// Invalidate derruba a grade de um barbeiro em um dia após uma escrita
// que muda a disponibilidade (reserva ou bloqueio).
func (c *SlotCache) Invalidate(ctx context.Context, barberID uint, date time.Time) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotKey(barberID, date)).Err(); err != nil {
		log.Printf("slot cache invalidate failed: %v", err)
	}
}
