package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ctx = context.Background()

// ErrMiss возвращается при отсутствии ключа в кэше.
var ErrMiss = errors.New("cache miss")

// Cache — тонкая обертка над Redis для хранения JSON-значений с TTL.
// Кэш необязателен: при недоступном Redis приложение работает без него.
type Cache struct {
	client *redis.Client
}

// New подключается к Redis и проверяет соединение. Возвращает ошибку,
// если Redis недоступен — решение работать без кэша принимает вызывающий.
func New(host, port string, log *zap.Logger) (*Cache, error) {
	addr := fmt.Sprintf("%s:%s", host, port)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error("redis_connection_failed",
			zap.Error(err),
			zap.String("addr", addr),
		)
		return nil, err
	}

	log.Info("redis_connected", zap.String("addr", addr))
	return &Cache{client: client}, nil
}

// Set сериализует значение в JSON и сохраняет его с заданным TTL.
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get читает значение из Redis и десериализует в dest.
func (c *Cache) Get(key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrMiss
	} else if err != nil {
		return fmt.Errorf("cache get failed: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("cache unmarshal failed: %w", err)
	}
	return nil
}

// Delete удаляет ключ.
func (c *Cache) Delete(key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close закрывает соединение с Redis.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
