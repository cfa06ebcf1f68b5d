package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

const availabilityTTL = 60 * time.Second

// Availability guarda respostas de disponibilidade por recurso e data.
// Sem Redis configurado o cache fica desligado e tudo segue direto ao banco.
type Availability struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewAvailability(rdb *redis.Client, log *zap.Logger) *Availability {
	return &Availability{rdb: rdb, log: log}
}

func SalonKey(salonID uint, date string) string {
	return fmt.Sprintf("avail:%d:salon:%s", salonID, date)
}

func ArtistKey(salonID uint, artistID uint, date string) string {
	return fmt.Sprintf("avail:%d:artist:%d:%s", salonID, artistID, date)
}

func (c *Availability) Get(ctx context.Context, key string) ([]schedule.Slot, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("availability cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *Availability) Set(ctx context.Context, key string, slots []schedule.Slot) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, availabilityTTL).Err(); err != nil {
		c.log.Debug("availability cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateSalon derruba todas as entradas do salão, inclusive as visões por
// profissional — um bloqueio do salão inteiro muda a agenda de todo mundo.
func (c *Availability) InvalidateSalon(ctx context.Context, salonID uint) {
	if c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("avail:%d:*", salonID)
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		c.log.Debug("availability cache scan failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}

	if len(keys) > 0 {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			c.log.Debug("availability cache invalidation failed", zap.Error(err))
		}
	}
}
