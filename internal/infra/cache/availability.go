package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/logger"
)

const availabilityTTL = 60 * time.Second

// Availability guarda respostas de disponibilidade no Redis por pouco tempo.
// Um hash por (tenant, data), um campo por serviço; qualquer escrita de
// agenda do tenant derruba a chave inteira. Receiver nil = cache desligado.
type Availability struct {
	rdb *redis.Client
}

func NewAvailability(redisURL string) (*Availability, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Availability{rdb: rdb}, nil
}

func key(tenantID, date string) string {
	return fmt.Sprintf("avail:%s:%s", tenantID, date)
}

func (c *Availability) Get(
	ctx context.Context,
	tenantID string,
	serviceID string,
	date string,
) ([]domain.Slot, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.HGet(ctx, key(tenantID, date), serviceID).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(
	ctx context.Context,
	tenantID string,
	serviceID string,
	date string,
	slots []domain.Slot,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	k := key(tenantID, date)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, k, serviceID, raw)
	pipe.Expire(ctx, k, availabilityTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.L().Warn("availability cache set failed",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
	}
}

// Invalidate derruba o dia inteiro do tenant após qualquer escrita de agenda.
func (c *Availability) Invalidate(ctx context.Context, tenantID string, date string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(tenantID, date)).Err(); err != nil {
		logger.L().Warn("availability cache invalidation failed",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
	}
}
