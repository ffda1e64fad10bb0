package view

import (
	"fmt"
	"strings"
	"time"

	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
	"quiz-runner/internal/quiz"
)

// Status of the question source as seen by the page.
type Status int

const (
	StatusReady Status = iota
	StatusFailed
	StatusEmpty
	StatusLoading
)

const MessageLoading = "Loading questions..."

const (
	CompleteTitle = "🎉 Quiz complete!"
	ResultCorrect = "Correct!"
	ResultWrong   = "Wrong!"
)

// State is the input of Build. It is assembled by the interaction controller.
type State struct {
	Status      Status
	Snapshot    quiz.Snapshot
	Revealed    bool // the feedback delay after the last answer has elapsed
	AutoAdvance bool
	DarkMode    bool
	Transition  bool
	RefreshIn   time.Duration // time until the next pending transition, 0 if none
	ResultID    string
}

// Build maps state to the view model. It has no side effects.
func Build(s State) dto.QuizView {
	v := dto.QuizView{
		Options:      []dto.OptionView{},
		AutoAdvance:  s.AutoAdvance,
		DarkMode:     s.DarkMode,
		Transition:   s.Transition,
		RefreshAfter: s.RefreshIn,
		ScoreLabel:   scoreLabel(0),
		ShowQuiz:     true,
	}

	switch s.Status {
	case StatusFailed:
		v.Status = "failed"
		v.Message = domain.MessageLoadFailed
		v.Question = domain.MessageLoadFailed
		return v
	case StatusLoading:
		v.Status = "loading"
		v.Message = MessageLoading
		v.Question = MessageLoading
		return v
	case StatusEmpty:
		v.Status = "empty"
		v.Message = domain.MessageNoQuestions
		v.Question = domain.MessageNoQuestions
		return v
	}

	snap := s.Snapshot
	v.Total = snap.Total
	if snap.Phase == quiz.Complete {
		v.ResultID = s.ResultID
		return buildReview(v, snap)
	}

	v.Status = "ready"
	v.Number = snap.Index + 1
	v.Question = snap.Question.Text
	v.Progress = snap.Progress
	v.Score = displayedScore(snap, s.Revealed)
	v.ScoreLabel = scoreLabel(v.Score)
	v.Options = buildOptions(snap, s.Revealed)

	if snap.Phase == quiz.Answered && snap.Last != nil && s.Revealed {
		if snap.Last.Correct {
			v.Result = ResultCorrect
		} else {
			v.Result = ResultWrong
		}
		v.NextEnabled = !s.AutoAdvance
	}
	return v
}

// displayedScore hides a point gained by an answer whose verdict is not shown yet.
func displayedScore(snap quiz.Snapshot, revealed bool) int {
	if snap.Phase == quiz.Answered && !revealed && snap.Last != nil && snap.Last.Correct {
		return snap.Score - 1
	}
	return snap.Score
}

func buildOptions(snap quiz.Snapshot, revealed bool) []dto.OptionView {
	answered := snap.Phase == quiz.Answered && snap.Last != nil
	options := make([]dto.OptionView, len(snap.Options))
	for i, opt := range snap.Options {
		options[i] = dto.OptionView{Index: i, Text: opt.Text, Disabled: answered}
	}
	if !answered {
		return options
	}

	selected := snap.Last.Index
	if !revealed {
		options[selected].State = dto.OptionPulse
		return options
	}
	if snap.Last.Correct {
		options[selected].State = dto.OptionCorrect
		return options
	}

	options[selected].State = dto.OptionWrong
	// Highlight by text, not identity: options sharing the correct text all light up.
	correctText := snap.Question.CorrectText()
	if correctText == "" {
		return options
	}
	for i := range options {
		if i != selected && strings.TrimSpace(options[i].Text) == correctText {
			options[i].State = dto.OptionCorrect
		}
	}
	return options
}

func buildReview(v dto.QuizView, snap quiz.Snapshot) dto.QuizView {
	v.Status = "complete"
	v.Question = CompleteTitle
	v.Score = snap.Score
	v.ScoreLabel = scoreLabel(snap.Score)
	v.Progress = 100
	v.ShowQuiz = false
	v.ShowReview = true
	v.FinalScore = fmt.Sprintf("Final Score: %d/%d", snap.Score, snap.Total)
	v.MistakeCount = fmt.Sprintf("Incorrect answers: %d", len(snap.Mistakes))
	v.Review = ReviewEntries(snap.Mistakes)
	return v
}

// ReviewEntries lists one entry per mistake in the order they were made.
func ReviewEntries(mistakes []domain.Mistake) []dto.ReviewEntry {
	entries := make([]dto.ReviewEntry, 0, len(mistakes))
	for _, m := range mistakes {
		entry := dto.ReviewEntry{Question: m.Question.Text, YourAnswer: m.Selected}
		if opt, ok := m.Question.CorrectOption(); ok {
			entry.CorrectAnswer = opt.Text
		}
		entries = append(entries, entry)
	}
	return entries
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
