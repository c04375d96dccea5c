package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pizza-pos/internal/models"

	"github.com/go-redis/redis/v8"
)

const (
	catalogKey = "catalog:products"
	catalogTTL = 5 * time.Minute
)

// Client caches the catalog list in Redis. A catalog mutation invalidates the
// cached list, so the next read always comes from the active source.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetCatalog returns the cached product list; ok is false on a miss
func (c *Client) GetCatalog(ctx context.Context) ([]models.Product, bool, error) {
	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("catalog cache read failed: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode failed: %w", err)
	}
	return products, true, nil
}

// SetCatalog stores the product list
func (c *Client) SetCatalog(ctx context.Context, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog cache encode failed: %w", err)
	}
	return c.rdb.Set(ctx, catalogKey, raw, catalogTTL).Err()
}

// InvalidateCatalog drops the cached list after a catalog mutation
func (c *Client) InvalidateCatalog(ctx context.Context) error {
	return c.rdb.Del(ctx, catalogKey).Err()
}
