// Package redis provides a journal backend storing recent submission
// outcomes in a capped Redis list.
package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/ajiwo/crptgate/journal"
)

// DefaultKey is the Redis list the journal writes to.
const DefaultKey = "crptgate:journal"

// DefaultMaxEntries caps the list length.
const DefaultMaxEntries = 10000

// Config configures the Redis journal backend.
type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int

	// Key is the list key to write to. Empty selects DefaultKey.
	Key string

	// MaxEntries caps the retained list length. Zero selects
	// DefaultMaxEntries.
	MaxEntries int64
}

// Backend writes entries with LPUSH and trims the list to its cap, so the
// newest entries are always at the head.
type Backend struct {
	client     *redis.Client
	key        string
	maxEntries int64
}

// GetClient exposes the underlying client, mainly for tests.
func (r *Backend) GetClient() *redis.Client {
	return r.client
}

// New initializes a Redis journal backend with the given configuration.
func New(config Config) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, NewConnectionFailedError(config.Addr, err)
	}

	key := config.Key
	if key == "" {
		key = DefaultKey
	}
	maxEntries := config.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Backend{client: client, key: key, maxEntries: maxEntries}, nil
}

func (r *Backend) Record(ctx context.Context, entry journal.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return NewEncodeFailedError(entry.DocID, err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, data)
	pipe.LTrim(ctx, r.key, 0, r.maxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return NewRecordFailedError(r.key, err)
	}
	return nil
}

func (r *Backend) Close() error {
	if err := r.client.Close(); err != nil {
		return NewCloseFailedError(err)
	}
	return nil
}
