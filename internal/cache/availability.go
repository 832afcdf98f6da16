package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
)

// AvailabilityCache é uma camada de leitura opcional na frente do resolver:
// TTL curto e invalidação explícita em toda escrita. A correção continua no
// repositório - perder o cache nunca pode corromper uma reserva.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func key(barberID, date string) string {
	return fmt.Sprintf("availability:%s:%s", barberID, date)
}

// Get retorna (slots, true) em hit; (nil, false) em miss ou erro de redis -
// erro de cache degrada para resolução direta, nunca para falha.
func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID string,
	date string,
) ([]domain.SlotView, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, key(barberID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.SlotView
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID string,
	date string,
	slots []domain.SlotView,
) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key(barberID, date), data, c.ttl)
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	barberID string,
	date string,
) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Del(ctx, key(barberID, date))
}

// InvalidateBarber derruba todas as datas em cache de um barbeiro - usado
// quando a agenda muda, já que toda data fica potencialmente errada.
func (c *AvailabilityCache) InvalidateBarber(
	ctx context.Context,
	barberID string,
) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%s:*", barberID)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
