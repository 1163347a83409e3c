package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
)

// NewRedisClient devolve nil quando redis não está configurado; o
// cache vira no-op e tudo segue direto para o banco.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

// DoctorCache guarda o lookup médicos-por-especialização, que a UI
// consulta a cada mudança parcial do formulário.
type DoctorCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDoctorCache(rdb *redis.Client) *DoctorCache {
	return &DoctorCache{
		rdb: rdb,
		ttl: 10 * time.Minute,
	}
}

func (c *DoctorCache) key(specializationID uint) string {
	return fmt.Sprintf("doctors:spec:%d", specializationID)
}

func (c *DoctorCache) Get(
	ctx context.Context,
	specializationID uint,
) ([]dto.DoctorOptionDTO, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(specializationID)).Bytes()
	if err != nil {
		return nil, false
	}

	var opts []dto.DoctorOptionDTO
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, false
	}
	return opts, true
}

func (c *DoctorCache) Set(
	ctx context.Context,
	specializationID uint,
	opts []dto.DoctorOptionDTO,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(opts)
	if err != nil {
		return
	}

	// erro de cache nunca quebra a API
	_ = c.rdb.Set(ctx, c.key(specializationID), raw, c.ttl).Err()
}

func (c *DoctorCache) Invalidate(
	ctx context.Context,
	specializationID uint,
) {

	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.key(specializationID)).Err()
}
