package quiz

import (
	"quiz-runner/internal/domain"
)

// Phase is the state of the current question.
type Phase int

const (
	AwaitingAnswer Phase = iota
	Answered
	Complete
)

func (p Phase) String() string {
	switch p {
	case AwaitingAnswer:
		return "awaiting_answer"
	case Answered:
		return "answered"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Resolution describes the outcome of a submitted answer.
type Resolution struct {
	Correct  bool
	Selected domain.Option
	Index    int // position of the selected option in the displayed order
}

// Session is the quiz state machine. It has no timers and performs no I/O;
// callers serialise access.
type Session struct {
	shuffler  *Shuffler
	questions []domain.Question
	index     int
	score     int
	mistakes  []domain.Mistake
	phase     Phase
	options   []domain.Option // displayed order of the current question's options
	last      *Resolution
}

// NewSession shuffles questions in place and presents the first one.
func NewSession(questions []domain.Question, shuffler *Shuffler) (*Session, error) {
	if len(questions) == 0 {
		return nil, domain.NewNoQuestionsError()
	}
	if shuffler == nil {
		shuffler = NewShuffler(0)
	}
	s := &Session{shuffler: shuffler, questions: questions}
	s.Restart()
	return s, nil
}

// Restart discards all progress, reshuffles the question order and presents question 1.
func (s *Session) Restart() {
	s.index = 0
	s.score = 0
	s.mistakes = nil
	s.shuffler.Questions(s.questions)
	s.present()
}

func (s *Session) present() {
	s.phase = AwaitingAnswer
	s.last = nil
	s.options = s.shuffler.Options(s.questions[s.index].Options)
}

// Submit resolves the current question with the displayed option at optionIndex.
// It reports false and leaves state untouched unless the session is awaiting an
// answer and the index is in range.
func (s *Session) Submit(optionIndex int) (Resolution, bool) {
	if s.phase != AwaitingAnswer {
		return Resolution{}, false
	}
	if optionIndex < 0 || optionIndex >= len(s.options) {
		return Resolution{}, false
	}

	selected := s.options[optionIndex]
	res := Resolution{Correct: selected.Correct, Selected: selected, Index: optionIndex}
	if selected.Correct {
		s.score++
	} else {
		s.mistakes = append(s.mistakes, domain.NewMistake(s.questions[s.index], selected.Text))
	}

	s.phase = Answered
	s.last = &res
	return res, true
}

// Advance moves past an answered question. It reports false unless the
// session is in the Answered phase.
func (s *Session) Advance() bool {
	if s.phase != Answered {
		return false
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.present()
		return true
	}
	s.phase = Complete
	return true
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Score() int   { return s.score }
func (s *Session) Index() int   { return s.index }
func (s *Session) Total() int   { return len(s.questions) }

// Progress is the share of questions already passed, in percent. It reflects
// the index before advancing and therefore never reaches 100 on its own.
func (s *Session) Progress() float64 {
	return float64(s.index) / float64(len(s.questions)) * 100
}

// Snapshot is a read-only copy of session state for rendering.
type Snapshot struct {
	Index    int
	Total    int
	Score    int
	Phase    Phase
	Question domain.Question
	Options  []domain.Option
	Mistakes []domain.Mistake
	Last     *Resolution
	Progress float64
}

// Snapshot copies the current state; the result shares nothing mutable with s.
func (s *Session) Snapshot() Snapshot {
	opts := make([]domain.Option, len(s.options))
	copy(opts, s.options)
	mistakes := make([]domain.Mistake, len(s.mistakes))
	copy(mistakes, s.mistakes)

	snap := Snapshot{
		Index:    s.index,
		Total:    len(s.questions),
		Score:    s.score,
		Phase:    s.phase,
		Question: s.questions[s.index].Clone(),
		Options:  opts,
		Mistakes: mistakes,
		Progress: s.Progress(),
	}
	if s.last != nil {
		last := *s.last
		snap.Last = &last
	}
	return snap
}
