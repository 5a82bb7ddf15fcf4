package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
)

// CartRepository is the side store for unsubmitted booking intents.
// One JSON document per username, expiring after the configured TTL.
type CartRepository interface {
	Get(ctx context.Context, username string) ([]entity.CartItem, error)
	Save(ctx context.Context, username string, items []entity.CartItem) error
	Clear(ctx context.Context, username string) error
}

type cartRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewCartRepository(rdb *redis.Client, ttl time.Duration, log *zap.Logger) CartRepository {
	return &cartRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "cart")),
	}
}

func cartKey(username string) string {
	return "cart:" + username
}

func (r *cartRepository) Get(ctx context.Context, username string) ([]entity.CartItem, error) {
	raw, err := r.rdb.Get(ctx, cartKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get cart",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("get cart for %s: %w", username, err)
	}

	var items []entity.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.log.Error("Failed to decode cart",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("decode cart for %s: %w", username, err)
	}

	return items, nil
}

func (r *cartRepository) Save(ctx context.Context, username string, items []entity.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart for %s: %w", username, err)
	}

	if err := r.rdb.Set(ctx, cartKey(username), raw, r.ttl).Err(); err != nil {
		r.log.Error("Failed to save cart",
			zap.Error(err),
			zap.String("username", username),
		)
		return fmt.Errorf("save cart for %s: %w", username, err)
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, username string) error {
	if err := r.rdb.Del(ctx, cartKey(username)).Err(); err != nil {
		r.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.String("username", username),
		)
		return fmt.Errorf("clear cart for %s: %w", username, err)
	}

	return nil
}
