package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobright-api/pkg/models"
)

const keyPrefix = "jobright"

// RedisStore keeps saved jobs in a hash per user with a list recording save
// order, and resumes as JSON strings with a TTL
type RedisStore struct {
	client    *redis.Client
	resumeTTL time.Duration
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client, resumeTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, resumeTTL: resumeTTL}
}

func savedKey(userID string) string      { return keyPrefix + ":saved:" + userID }
func savedOrderKey(userID string) string { return keyPrefix + ":saved:" + userID + ":order" }
func resumeKey(userID string) string     { return keyPrefix + ":resume:" + userID }

// maxTxRetries bounds optimistic retries when a watched key changes mid-transaction
const maxTxRetries = 5

// SaveJob writes the hash entry and the order list in one MULTI/EXEC so a
// failure never leaves a job that is saved but missing from the list
func (s *RedisStore) SaveJob(ctx context.Context, userID string, job models.Job) (models.SavedJob, bool, error) {
	saved := models.SavedJob{Job: job, SavedAt: time.Now().UTC()}
	payload, err := json.Marshal(saved)
	if err != nil {
		return models.SavedJob{}, false, fmt.Errorf("failed to encode saved job: %w", err)
	}

	key, orderKey := savedKey(userID), savedOrderKey(userID)
	var existing []byte

	err = s.watch(ctx, func(tx *redis.Tx) error {
		existing = nil
		raw, err := tx.HGet(ctx, key, job.ID).Bytes()
		if err == nil {
			existing = raw
			return nil
		}
		if !errors.Is(err, redis.Nil) {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, job.ID, payload)
			pipe.RPush(ctx, orderKey, job.ID)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return models.SavedJob{}, false, fmt.Errorf("failed to save job: %w", err)
	}

	if existing != nil {
		var prev models.SavedJob
		if err := json.Unmarshal(existing, &prev); err != nil {
			return models.SavedJob{}, false, fmt.Errorf("failed to decode saved job: %w", err)
		}
		return prev, false, nil
	}
	return saved, true, nil
}

func (s *RedisStore) RemoveJob(ctx context.Context, userID, jobID string) error {
	key, orderKey := savedKey(userID), savedOrderKey(userID)
	var found bool

	err := s.watch(ctx, func(tx *redis.Tx) error {
		var err error
		if found, err = tx.HExists(ctx, key, jobID).Result(); err != nil || !found {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, key, jobID)
			pipe.LRem(ctx, orderKey, 0, jobID)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("failed to remove saved job: %w", err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// watch runs fn under WATCH on keys, retrying when another client touched them
func (s *RedisStore) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return redis.TxFailedErr
}

func (s *RedisStore) ListSavedJobs(ctx context.Context, userID string) ([]models.SavedJob, error) {
	out := make([]models.SavedJob, 0)

	ids, err := s.client.LRange(ctx, savedOrderKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	if len(ids) == 0 {
		return out, nil
	}

	values, err := s.client.HMGet(ctx, savedKey(userID), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load saved jobs: %w", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var saved models.SavedJob
		if err := json.Unmarshal([]byte(raw), &saved); err != nil {
			return nil, fmt.Errorf("failed to decode saved job: %w", err)
		}
		out = append(out, saved)
	}
	return out, nil
}

func (s *RedisStore) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	ok, err := s.client.HExists(ctx, savedKey(userID), jobID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check saved job: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) PutResume(ctx context.Context, userID string, resume *models.ParsedResume) error {
	payload, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	if err := s.client.Set(ctx, resumeKey(userID), payload, s.resumeTTL).Err(); err != nil {
		return fmt.Errorf("failed to store resume: %w", err)
	}
	return nil
}

func (s *RedisStore) GetResume(ctx context.Context, userID string) (*models.ParsedResume, error) {
	raw, err := s.client.Get(ctx, resumeKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	var resume models.ParsedResume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	return &resume, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
