package domain

import (
	"strings"
)

// Option is one selectable answer of a question.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is one quiz item. Exactly one option is expected to be correct;
// this is not enforced.
type Question struct {
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

// CorrectOption returns the first option flagged correct.
func (q Question) CorrectOption() (Option, bool) {
	for _, opt := range q.Options {
		if opt.Correct {
			return opt, true
		}
	}
	return Option{}, false
}

// CorrectText returns the trimmed text of the correct option, or "" when the
// question has none.
func (q Question) CorrectText() string {
	opt, ok := q.CorrectOption()
	if !ok {
		return ""
	}
	return strings.TrimSpace(opt.Text)
}

// Clone returns a copy whose option slice does not alias q's.
func (q Question) Clone() Question {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	return Question{Text: q.Text, Options: opts}
}

// Mistake captures an incorrect answer for the end-of-quiz review.
type Mistake struct {
	Question Question
	Selected string
}

// NewMistake snapshots q so later changes to the source slice do not leak in.
func NewMistake(q Question, selected string) Mistake {
	return Mistake{Question: q.Clone(), Selected: selected}
}

// Validate reports documents that cannot be shown at all. A missing correct
// option is tolerated.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) == 0 {
		return NewInvalidInputError("at least one option is required")
	}
	return nil
}
