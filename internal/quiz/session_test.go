package quiz

import (
	"testing"

	"quiz-runner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{Text: "Capital of France?", Options: []domain.Option{
			{Text: "Paris", Correct: true}, {Text: "Rome"}, {Text: "Madrid"},
		}},
		{Text: "2 + 2?", Options: []domain.Option{
			{Text: "3"}, {Text: "4", Correct: true}, {Text: "5"},
		}},
		{Text: "Largest ocean?", Options: []domain.Option{
			{Text: "Atlantic"}, {Text: "Pacific", Correct: true}, {Text: "Indian"},
		}},
	}
}

func indexOf(opts []domain.Option, correct bool) int {
	for i, o := range opts {
		if o.Correct == correct {
			return i
		}
	}
	return -1
}

func TestNewSession_Empty(t *testing.T) {
	s, err := NewSession(nil, NewShuffler(1))
	assert.Nil(t, s)
	assert.Equal(t, domain.ErrNoQuestions, domain.CodeOf(err))
}

func TestSession_InitialState(t *testing.T) {
	s, err := NewSession(sampleQuestions(), NewShuffler(1))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, AwaitingAnswer, snap.Phase)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.Mistakes)
	assert.Equal(t, 3, snap.Total)
	assert.Equal(t, 0.0, snap.Progress)
	assert.ElementsMatch(t, snap.Question.Options, snap.Options)
}

func TestSession_SubmitGuard(t *testing.T) {
	s, err := NewSession(sampleQuestions(), NewShuffler(2))
	require.NoError(t, err)

	wrong := indexOf(s.Snapshot().Options, false)
	res, ok := s.Submit(wrong)
	require.True(t, ok)
	assert.False(t, res.Correct)
	assert.Equal(t, Answered, s.Phase())

	// A second submission for the same question changes nothing.
	_, ok = s.Submit(indexOf(s.Snapshot().Options, true))
	assert.False(t, ok)
	assert.Equal(t, 0, s.Score())
	assert.Len(t, s.Snapshot().Mistakes, 1)
}

func TestSession_SubmitOutOfRange(t *testing.T) {
	s, err := NewSession(sampleQuestions(), NewShuffler(2))
	require.NoError(t, err)

	_, ok := s.Submit(-1)
	assert.False(t, ok)
	_, ok = s.Submit(99)
	assert.False(t, ok)
	assert.Equal(t, AwaitingAnswer, s.Phase())
}

func TestSession_AdvanceRequiresAnswer(t *testing.T) {
	s, err := NewSession(sampleQuestions(), NewShuffler(3))
	require.NoError(t, err)

	assert.False(t, s.Advance())
	assert.Equal(t, 0, s.Index())
}

func TestSession_FullPassScenario(t *testing.T) {
	s, err := NewSession(sampleQuestions(), NewShuffler(4))
	require.NoError(t, err)

	var secondQuestion domain.Question
	var wrongText string

	for i := 0; i < 3; i++ {
		snap := s.Snapshot()
		assert.InDelta(t, float64(i)/3*100, snap.Progress, 1e-9)

		if i == 1 {
			secondQuestion = snap.Question
			idx := indexOf(snap.Options, false)
			wrongText = snap.Options[idx].Text
			_, ok := s.Submit(idx)
			require.True(t, ok)
		} else {
			_, ok := s.Submit(indexOf(snap.Options, true))
			require.True(t, ok)
		}
		assert.Equal(t, i+1, s.Score()+len(s.Snapshot().Mistakes))
		require.True(t, s.Advance())
	}

	snap := s.Snapshot()
	assert.Equal(t, Complete, snap.Phase)
	assert.Equal(t, 2, snap.Score)
	require.Len(t, snap.Mistakes, 1)
	assert.Equal(t, secondQuestion.Text, snap.Mistakes[0].Question.Text)
	assert.Equal(t, secondQuestion.CorrectText(), snap.Mistakes[0].Question.CorrectText())
	assert.Equal(t, wrongText, snap.Mistakes[0].Selected)

	// Complete is terminal.
	_, ok := s.Submit(0)
	assert.False(t, ok)
	assert.False(t, s.Advance())
	assert.Equal(t, 2, s.Score())
}

func TestSession_Restart(t *testing.T) {
	questions := make([]domain.Question, 12)
	for i := range questions {
		questions[i] = domain.Question{
			Text:    string(rune('A' + i)),
			Options: []domain.Option{{Text: "x", Correct: true}, {Text: "y"}},
		}
	}
	s, err := NewSession(questions, NewShuffler(5))
	require.NoError(t, err)

	_, ok := s.Submit(indexOf(s.Snapshot().Options, false))
	require.True(t, ok)
	require.True(t, s.Advance())

	before := make([]string, len(questions))
	for i, q := range questions {
		before[i] = q.Text
	}

	s.Restart()

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.Mistakes)
	assert.Equal(t, AwaitingAnswer, snap.Phase)
	assert.Nil(t, snap.Last)

	after := make([]string, len(questions))
	for i, q := range questions {
		after[i] = q.Text
	}
	assert.ElementsMatch(t, before, after)
	assert.NotEqual(t, before, after, "12 questions should not reshuffle into the same order")
}

func TestSession_ScoreBounds(t *testing.T) {
	s, err := NewSession(sampleQuestions(), NewShuffler(6))
	require.NoError(t, err)

	for s.Phase() != Complete {
		_, ok := s.Submit(0)
		require.True(t, ok)
		assert.GreaterOrEqual(t, s.Score(), 0)
		assert.LessOrEqual(t, s.Score(), s.Total())
		require.True(t, s.Advance())
	}
}

func TestSession_MalformedQuestion(t *testing.T) {
	questions := []domain.Question{{Text: "no answer", Options: []domain.Option{{Text: "a"}, {Text: "b"}}}}
	s, err := NewSession(questions, NewShuffler(7))
	require.NoError(t, err)

	res, ok := s.Submit(0)
	require.True(t, ok)
	assert.False(t, res.Correct)
	require.Len(t, s.Snapshot().Mistakes, 1)
	assert.Equal(t, "", s.Snapshot().Mistakes[0].Question.CorrectText())
}
