package service

import (
	"context"
	"time"

	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionSource ---
type MockQuestionSource struct {
	mock.Mock
}

func (m *MockQuestionSource) Load(ctx context.Context) ([]domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// --- MockCuePlayer ---
type MockCuePlayer struct {
	mock.Mock
}

func (m *MockCuePlayer) Play(ctx context.Context, cue domain.Cue) error {
	args := m.Called(ctx, cue)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockResultRecorder ---
type MockResultRecorder struct {
	mock.Mock
}

func (m *MockResultRecorder) Record(ctx context.Context, result *dto.QuizResult) (string, error) {
	args := m.Called(ctx, result)
	return args.String(0), args.Error(1)
}

func (m *MockResultRecorder) Get(ctx context.Context, resultID string) (*dto.QuizResult, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResult), args.Error(1)
}

// panickingCuePlayer simulates a feedback channel that blows up.
type panickingCuePlayer struct{}

func (panickingCuePlayer) Play(context.Context, domain.Cue) error { panic("audio device gone") }
