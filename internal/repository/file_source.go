package repository

import (
	"context"
	"fmt"
	"os"
	"quiz-runner/internal/domain"
)

// FileQuestionSource reads a JSON question document from disk.
type FileQuestionSource struct {
	path string
}

func NewFileQuestionSource(path string) *FileQuestionSource {
	return &FileQuestionSource{path: path}
}

func (s *FileQuestionSource) Load(ctx context.Context) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file %s: %w", s.path, err)
	}
	return decodeQuestions(data)
}
