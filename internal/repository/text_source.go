package repository

import (
	"context"
	"fmt"
	"os"
	"quiz-runner/internal/domain"
	"regexp"
	"strings"
)

var (
	// A new block starts at a line beginning with "N.".
	blockStart    = regexp.MustCompile(`^\d+\.`)
	questionLabel = regexp.MustCompile(`^\d+\.\s*`)
	correctMarker = regexp.MustCompile(`\*\s*$`)
	optionLabel   = regexp.MustCompile(`(?i)^[a-dα-δ]\.\s*`)
)

// TextQuestionSource reads the numbered plain-text format:
//
//	1. Question text
//	a. wrong option
//	b. right option *
type TextQuestionSource struct {
	path string
}

func NewTextQuestionSource(path string) *TextQuestionSource {
	return &TextQuestionSource{path: path}
}

func (s *TextQuestionSource) Load(ctx context.Context) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file %s: %w", s.path, err)
	}
	questions := ParseQuestions(string(data))
	warnMalformed(questions)
	return questions, nil
}

// ParseQuestions converts numbered text into questions. Options ending in "*"
// are correct; a leading "a." to "d." label (latin or greek) is dropped.
func ParseQuestions(text string) []domain.Question {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var blocks [][]string
	for i, line := range strings.Split(text, "\n") {
		if i == 0 || blockStart.MatchString(line) {
			blocks = append(blocks, nil)
		}
		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], line)
	}

	questions := make([]domain.Question, 0, len(blocks))
	for _, lines := range blocks {
		q := domain.Question{
			Text:    strings.TrimSpace(questionLabel.ReplaceAllString(strings.TrimSpace(lines[0]), "")),
			Options: []domain.Option{},
		}
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) == "" {
				continue
			}
			q.Options = append(q.Options, parseOption(line))
		}
		questions = append(questions, q)
	}
	return questions
}

func parseOption(line string) domain.Option {
	correct := correctMarker.MatchString(line)
	cleaned := strings.TrimSpace(correctMarker.ReplaceAllString(line, ""))
	cleaned = strings.TrimSpace(optionLabel.ReplaceAllString(cleaned, ""))
	return domain.Option{Text: cleaned, Correct: correct}
}
