package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/speedmeet/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"
	rosterKey            = "participants"     // sorted set of IDs scored by registration sequence
	rosterSeqKey         = "participants:seq" // last registration sequence handed out
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func participantKey(id string) string {
	return fmt.Sprintf("%s%s", participantKeyPrefix, id)
}

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	return r.save(ctx, []*models.Participant{input.Participant})
}

// SaveParticipants persists a batch in one transaction; new participants join the
// roster in slice order
func (r *redisRepository) SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Participants) == 0 {
		return nil
	}

	return r.save(ctx, input.Participants)
}

func (r *redisRepository) save(ctx context.Context, participants []*models.Participant) error {
	blobs := make([][]byte, 0, len(participants))
	for _, p := range participants {
		if p == nil || p.ID == "" {
			return errors.New("participant ID cannot be empty")
		}

		participantJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal participant %s: %w", p.ID, err)
		}
		blobs = append(blobs, participantJSON)
	}

	// Reserve one sequence number per participant. Scores stay small integers so
	// float64 keeps them exact, unlike nanosecond timestamps.
	last, err := r.client.IncrBy(ctx, rosterSeqKey, int64(len(participants))).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve roster positions: %w", err)
	}
	first := last - int64(len(participants)) + 1

	pipe := r.client.TxPipeline()
	for i, p := range participants {
		pipe.Set(ctx, participantKey(p.ID), blobs[i], 0)
		// NX keeps the original registration position when a participant is updated
		pipe.ZAddNX(ctx, rosterKey, redis.Z{
			Score:  float64(first + int64(i)),
			Member: p.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participants: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantJSON, err := r.client.Get(ctx, participantKey(input.ParticipantID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// ListParticipants retrieves the roster in registration order
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil {
		input = &ListParticipantsInput{}
	}

	ids, err := r.client.ZRange(ctx, rosterKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	if len(ids) == 0 {
		return &ListParticipantsOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	// Fetch every participant in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.Get(ctx, participantKey(id)))
	}

	// redis.Nil from a single GET is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(ids))
	for i, cmd := range cmds {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Participant was deleted between reading the roster and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", ids[i], err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", ids[i], err)
		}

		if input.ActiveOnly && !p.Active {
			continue
		}

		participants = append(participants, &p)
	}

	return &ListParticipantsOutput{
		Participants: participants,
	}, nil
}

// DeleteParticipant removes a participant from Redis
func (r *redisRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, participantKey(input.ParticipantID))
	pipe.ZRem(ctx, rosterKey, input.ParticipantID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	if del.Val() == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// ClearParticipants removes every participant from Redis
func (r *redisRepository) ClearParticipants(ctx context.Context, input *ClearParticipantsInput) error {
	ids, err := r.client.ZRange(ctx, rosterKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get roster: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, participantKey(id))
	}
	pipe.Del(ctx, rosterKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}

	return nil
}
