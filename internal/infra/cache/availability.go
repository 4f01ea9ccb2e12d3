package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookora/venue-booking-service/internal/domain"
)

// AvailabilityRepository источник конфигурации доступности (postgres репозиторий)
type AvailabilityRepository interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AvailabilityCache read-through кэш конфигурации доступности поверх redis.
// Конфигурация заведения меняется редко, а читается на каждый запрос слотов,
// поэтому кэшируется целиком с TTL. При любой ошибке redis кэш прозрачно
// пропускается и запрос идет в репозиторий.
type AvailabilityCache struct {
	repo   AvailabilityRepository
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// NewAvailabilityCache создает кэш доступности поверх репозитория
func NewAvailabilityCache(repo AvailabilityRepository, client *redis.Client, ttl time.Duration, log Logger) *AvailabilityCache {
	return &AvailabilityCache{
		repo:   repo,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// GetByVenue возвращает конфигурацию из кэша или из репозитория с записью в кэш
func (c *AvailabilityCache) GetByVenue(ctx context.Context, venueID int64) (*domain.BusinessAvailability, error) {
	key := c.key(venueID)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached domain.BusinessAvailability
		if unmarshalErr := json.Unmarshal(payload, &cached); unmarshalErr == nil {
			return &cached, nil
		}
		// Битая запись в кэше - удаляем и идем в репозиторий
		c.log.Warn("AvailabilityCache: corrupted cache entry for venue=%d, evicting", venueID)
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn("AvailabilityCache: redis get failed for venue=%d: %v", venueID, err)
	}

	availability, err := c.repo.GetByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(availability); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.log.Warn("AvailabilityCache: redis set failed for venue=%d: %v", venueID, setErr)
		}
	}

	return availability, nil
}

// Invalidate сбрасывает кэш заведения. Вызывается после обновления конфигурации.
func (c *AvailabilityCache) Invalidate(ctx context.Context, venueID int64) {
	if err := c.client.Del(ctx, c.key(venueID)).Err(); err != nil {
		c.log.Warn("AvailabilityCache: failed to invalidate venue=%d: %v", venueID, err)
	}
}

func (c *AvailabilityCache) key(venueID int64) string {
	return fmt.Sprintf("venue:availability:%d", venueID)
}
