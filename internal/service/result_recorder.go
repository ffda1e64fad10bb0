package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-runner/internal/cache"
	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
	"quiz-runner/internal/logger"
	"quiz-runner/internal/util"

	"go.uber.org/zap"
)

// ErrResultNotFound is returned when a recorded result is not in the cache.
var ErrResultNotFound = errors.New("quiz result not found in cache")

// ResultRecorder keeps a short history of finished quiz attempts.
type ResultRecorder interface {
	Record(ctx context.Context, result *dto.QuizResult) (string, error)
	Get(ctx context.Context, resultID string) (*dto.QuizResult, error)
}

type cacheResultRecorder struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultRecorder stores results in cache for ttl. A nil cache yields a no-op recorder.
func NewResultRecorder(c domain.Cache, ttl time.Duration) ResultRecorder {
	if c == nil {
		logger.Get().Info("Result recorder has no cache; finished quizzes will not be recorded")
		return noopResultRecorder{}
	}
	return &cacheResultRecorder{cache: c, ttl: ttl}
}

// ConnectResultRecorder checks that the cache answers before recording into it.
func ConnectResultRecorder(ctx context.Context, c domain.Cache, ttl time.Duration) (ResultRecorder, error) {
	if err := c.Ping(ctx); err != nil {
		return nil, domain.NewInternalError("result cache is not reachable", err)
	}
	return NewResultRecorder(c, ttl), nil
}

// Record assigns the result an ID when it has none and stores it.
func (r *cacheResultRecorder) Record(ctx context.Context, result *dto.QuizResult) (string, error) {
	if result == nil {
		return "", domain.NewInvalidInputError("cannot record nil result")
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now().UTC()
	}
	if result.ID == "" {
		result.ID = util.NewULIDAt(result.CompletedAt)
	}

	key := cache.ResultKey(result.ID)
	data, err := json.Marshal(result)
	if err != nil {
		return "", domain.NewInternalError("failed to marshal quiz result", err)
	}
	if err := r.cache.Set(ctx, key, string(data), r.ttl); err != nil {
		return "", domain.NewInternalError(fmt.Sprintf("failed to store quiz result under %s", key), err)
	}
	logger.Get().Debug("Recorded quiz result", zap.String("key", key), zap.Duration("ttl", r.ttl))
	return result.ID, nil
}

func (r *cacheResultRecorder) Get(ctx context.Context, resultID string) (*dto.QuizResult, error) {
	key := cache.ResultKey(resultID)
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrResultNotFound
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to read quiz result %s", key), err)
	}
	if data == "" {
		return nil, ErrResultNotFound
	}

	var result dto.QuizResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal quiz result %s", key), err)
	}
	return &result, nil
}

type noopResultRecorder struct{}

func (noopResultRecorder) Record(context.Context, *dto.QuizResult) (string, error) { return "", nil }

func (noopResultRecorder) Get(context.Context, string) (*dto.QuizResult, error) {
	return nil, ErrResultNotFound
}
