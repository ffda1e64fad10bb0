package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"quiz-runner/internal/config"
	"quiz-runner/internal/domain"
	"quiz-runner/internal/logger"
	"strings"

	"go.uber.org/zap"
)

// QuestionSource loads the question document. Implementations make exactly
// one attempt per call and never retry.
type QuestionSource interface {
	Load(ctx context.Context) ([]domain.Question, error)
}

// NewQuestionSource picks a source for the configured location: http(s) URLs
// are fetched, .txt files are parsed as numbered text, anything else is read
// as a JSON file.
func NewQuestionSource(cfg config.QuizConfig) QuestionSource {
	location := strings.TrimSpace(cfg.Source)
	lower := strings.ToLower(location)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewHTTPQuestionSource(location, cfg.FetchTimeout)
	case filepath.Ext(lower) == ".txt":
		return NewTextQuestionSource(location)
	default:
		return NewFileQuestionSource(location)
	}
}

// decodeQuestions parses the JSON question document.
func decodeQuestions(data []byte) ([]domain.Question, error) {
	var questions []domain.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode question document: %w", err)
	}
	warnMalformed(questions)
	return questions, nil
}

// warnMalformed logs questions that will render oddly. They are kept: a
// malformed question degrades silently instead of failing the load.
func warnMalformed(questions []domain.Question) {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			logger.Get().Warn("Question is malformed", zap.Int("position", i), zap.Error(err))
			continue
		}
		if _, ok := q.CorrectOption(); !ok {
			logger.Get().Warn("Question has no correct option", zap.Int("position", i), zap.String("question", q.Text))
		}
	}
}
