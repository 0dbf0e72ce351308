package builds

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-mechanics/internal/redis"
)

const (
	buildKeyPrefix   = "build:"
	ownerIndexPrefix = "build:owner:"

	// Error messages
	errBuildNil     = "build cannot be nil"
	errBuildIDEmpty = "build ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis build repository.
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

// NewRedis creates a new Redis-backed build repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func validateBuild(build *mechanics.Build) error {
	if build == nil {
		return errors.InvalidArgument(errBuildNil)
	}
	if build.ID == "" {
		return errors.InvalidArgument(errBuildIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateBuild(input.Build); err != nil {
		return nil, err
	}

	key := buildKeyPrefix + input.Build.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("build with ID %s already exists", input.Build.ID)
	}

	data, err := json.Marshal(input.Build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Build.OwnerID != "" {
		pipe.SAdd(ctx, ownerIndexPrefix+input.Build.OwnerID, input.Build.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create build")
	}

	return &CreateOutput{Build: input.Build}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	build, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Build: build}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*mechanics.Build, error) {
	result, err := r.client.Get(ctx, buildKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("build with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get build")
	}

	var build mechanics.Build
	if err := json.Unmarshal([]byte(result), &build); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build")
	}
	return &build, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateBuild(input.Build); err != nil {
		return nil, err
	}

	existing, err := r.load(ctx, input.Build.ID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, buildKeyPrefix+input.Build.ID, data, 0)

	// Move the build between owner indexes if the owner changed
	if existing.OwnerID != input.Build.OwnerID {
		if existing.OwnerID != "" {
			pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, input.Build.ID)
		}
		if input.Build.OwnerID != "" {
			pipe.SAdd(ctx, ownerIndexPrefix+input.Build.OwnerID, input.Build.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update build")
	}

	return &UpdateOutput{Build: input.Build}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	existing, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, buildKeyPrefix+input.ID)
	if existing.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete build")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	slog.DebugContext(ctx, "listing builds by owner index",
		"owner_id", input.OwnerID,
		"kind", input.Kind,
		"index_key", indexKey)

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get build IDs from Redis",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get builds from index %s", indexKey)
	}

	builds := make([]*mechanics.Build, 0, len(ids))
	for _, id := range ids {
		build, err := r.load(ctx, id)
		if err != nil {
			// Stale index entry; clean it up and move on
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "build not found, cleaning up index",
					"build_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get build %s", id)
		}

		if input.Kind != "" && build.Kind != input.Kind {
			continue
		}
		builds = append(builds, build)
	}

	// SMEMBERS order is unspecified
	sort.Slice(builds, func(i, j int) bool {
		if !builds[i].CreatedAt.Equal(builds[j].CreatedAt) {
			return builds[i].CreatedAt.Before(builds[j].CreatedAt)
		}
		return builds[i].ID < builds[j].ID
	})

	slog.DebugContext(ctx, "listed builds by owner",
		"owner_id", input.OwnerID,
		"count", len(builds))

	return &ListByOwnerOutput{Builds: builds}, nil
}
