package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-mechanics/internal/redis"
)

const catalogKeyPrefix = "catalog:"

type redisStore struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog store.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Store keeping each catalog as one JSON array under catalog:{kind}
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisStore{client: cfg.Client}, nil
}

func (s *redisStore) GetParts(ctx context.Context, input GetPartsInput) (*GetPartsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	key := catalogKeyPrefix + input.Kind.String()
	result, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s catalog not loaded", input.Kind)
		}
		return nil, errors.Wrapf(err, "failed to get %s catalog", input.Kind)
	}

	var parts []mechanics.PartDefinition
	if err := json.Unmarshal([]byte(result), &parts); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s catalog", input.Kind)
	}

	slog.DebugContext(ctx, "loaded catalog from redis",
		"kind", input.Kind,
		"count", len(parts))

	return &GetPartsOutput{Parts: parts}, nil
}

func (s *redisStore) PutParts(ctx context.Context, input PutPartsInput) (*PutPartsOutput, error) {
	prepared, err := prepareParts(input.Kind, input.Parts)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(prepared)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s catalog", input.Kind)
	}

	if err := s.client.Set(ctx, catalogKeyPrefix+input.Kind.String(), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s catalog", input.Kind)
	}

	slog.InfoContext(ctx, "stored catalog in redis",
		"kind", input.Kind,
		"count", len(prepared))

	return &PutPartsOutput{Count: len(prepared)}, nil
}
