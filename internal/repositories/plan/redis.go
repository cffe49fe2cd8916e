package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	planKeyPrefix  = "plan:"
	currentPlanKey = "current_plan"

	// DefaultPlanRetention is how long a superseded plan stays readable
	DefaultPlanRetention = 24 * time.Hour
)

// Config holds configuration for the Redis plan repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// PlanRetention is how long a plan stays readable after it stops being current.
	// Zero means DefaultPlanRetention.
	PlanRetention time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	retention time.Duration
}

// NewRedis creates a new Redis-backed plan repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.PlanRetention < 0 {
		return nil, errors.New("plan retention cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	retention := cfg.PlanRetention
	if retention == 0 {
		retention = DefaultPlanRetention
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		retention: retention,
	}, nil
}

func planKey(id string) string {
	return fmt.Sprintf("%s%s", planKeyPrefix, id)
}

// maxSaveAttempts bounds retries when another generation moves the current
// pointer between WATCH and EXEC
const maxSaveAttempts = 10

// SavePlan writes the plan and moves the current pointer in one MULTI/EXEC. The
// pointer is watched so the plan it replaced always gets its retention TTL, even
// when generations race.
func (r *redisRepository) SavePlan(ctx context.Context, input *SavePlanInput) error {
	if input == nil || input.Plan == nil {
		return errors.New("input and plan cannot be nil")
	}

	if input.Plan.ID == "" {
		return errors.New("plan ID cannot be empty")
	}

	planJSON, err := json.Marshal(input.Plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	swap := func(tx *redis.Tx) error {
		previousID, err := tx.Get(ctx, currentPlanKey).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get current plan ID: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, planKey(input.Plan.ID), planJSON, 0)
			pipe.Set(ctx, currentPlanKey, input.Plan.ID, 0)

			// Readers that fetched the old pointer can still load the old plan
			if previousID != "" && previousID != input.Plan.ID {
				pipe.Expire(ctx, planKey(previousID), r.retention)
			}
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		err := r.client.Watch(ctx, swap, currentPlanKey)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return fmt.Errorf("failed to save plan: %w", err)
		}
	}

	return fmt.Errorf("failed to save plan: current plan changed %d times during the swap", maxSaveAttempts)
}

// GetCurrentPlan follows the current pointer and loads that plan
func (r *redisRepository) GetCurrentPlan(ctx context.Context, input *GetCurrentPlanInput) (*models.SessionPlan, error) {
	id, err := r.currentID(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := r.GetPlan(ctx, &GetPlanInput{PlanID: id})
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			// pointer outlived its plan
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	return plan, nil
}

// GetPlan retrieves a plan by ID from Redis
func (r *redisRepository) GetPlan(ctx context.Context, input *GetPlanInput) (*models.SessionPlan, error) {
	if input == nil || input.PlanID == "" {
		return nil, errors.New("input and plan ID cannot be empty")
	}

	planJSON, err := r.client.Get(ctx, planKey(input.PlanID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	var plan models.SessionPlan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}

	return &plan, nil
}

// ClearCurrentPlan drops the current pointer and lets the plan expire
func (r *redisRepository) ClearCurrentPlan(ctx context.Context, input *ClearCurrentPlanInput) error {
	id, err := r.currentID(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, currentPlanKey)
	pipe.Expire(ctx, planKey(id), r.retention)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear current plan: %w", err)
	}

	return nil
}

func (r *redisRepository) currentID(ctx context.Context) (string, error) {
	id, err := r.client.Get(ctx, currentPlanKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNoActiveSession
		}
		return "", fmt.Errorf("failed to get current plan: %w", err)
	}

	return id, nil
}
