package service

import (
	"context"
	"sync"
	"time"

	"quiz-runner/internal/config"
	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
	"quiz-runner/internal/logger"
	"quiz-runner/internal/quiz"
	"quiz-runner/internal/repository"
	"quiz-runner/internal/view"

	"go.uber.org/zap"
)

const recordTimeout = 5 * time.Second

// QuizService defines the interface for driving one quiz session
type QuizService interface {
	Init(ctx context.Context) error
	View() dto.QuizView
	Select(ctx context.Context, optionIndex int) (dto.QuizView, error)
	Next(ctx context.Context) (dto.QuizView, error)
	Restart(ctx context.Context) (dto.QuizView, error)
	ToggleTheme() dto.QuizView
	SetAutoAdvance(enabled bool) dto.QuizView
	GetResult(ctx context.Context, resultID string) (*dto.QuizResult, error)
	Close()
}

// Option customises a quizService.
type Option func(*quizService)

// WithClock replaces the runtime timers, used by tests.
func WithClock(clock quiz.Clock) Option {
	return func(s *quizService) { s.clock = clock }
}

// WithShuffler fixes the random source.
func WithShuffler(shuffler *quiz.Shuffler) Option {
	return func(s *quizService) { s.shuffler = shuffler }
}

// WithCuePlayers registers audio and haptic feedback sinks.
func WithCuePlayers(players ...domain.CuePlayer) Option {
	return func(s *quizService) { s.cues = append(s.cues, players...) }
}

// quizService implements QuizService. Every field below mu is guarded by it,
// timer callbacks included.
type quizService struct {
	source   repository.QuestionSource
	recorder ResultRecorder
	cfg      config.QuizConfig
	clock    quiz.Clock
	shuffler *quiz.Shuffler
	cues     []domain.CuePlayer
	records  sync.WaitGroup

	mu          sync.Mutex
	scheduler   *quiz.Scheduler
	initialized bool
	status      view.Status
	session     *quiz.Session
	generation  uint64
	revealed    bool
	autoAdvance bool
	darkMode    bool
	transition  bool
	resultID    string
}

// NewQuizService creates a new instance of quizService
func NewQuizService(source repository.QuestionSource, recorder ResultRecorder, cfg config.QuizConfig, opts ...Option) QuizService {
	if recorder == nil {
		recorder = noopResultRecorder{}
	}
	s := &quizService{
		source:      source,
		recorder:    recorder,
		cfg:         cfg,
		status:      view.StatusLoading,
		autoAdvance: cfg.AutoAdvance,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = quiz.RealClock()
	}
	if s.shuffler == nil {
		s.shuffler = quiz.NewShuffler(0)
	}
	s.scheduler = quiz.NewScheduler(s.clock, &s.mu)
	return s
}

// Init makes the single load attempt. A failed or empty load is terminal and
// is reported through the view; the error is returned for logging only.
func (s *quizService) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()

	loadCtx := ctx
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}
	questions, err := s.source.Load(loadCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = view.StatusFailed
		logger.Get().Error("Failed to load questions", zap.Error(err))
		return domain.NewLoadFailedError(err)
	}

	session, err := quiz.NewSession(questions, s.shuffler)
	if err != nil {
		s.status = view.StatusEmpty
		logger.Get().Warn("Question document is empty")
		return err
	}
	s.session = session
	s.status = view.StatusReady
	logger.Get().Info("Questions loaded", zap.Int("count", len(questions)))
	return nil
}

func (s *quizService) View() dto.QuizView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Select answers the current question. Requests made while an answer is
// already being resolved are ignored.
func (s *quizService) Select(ctx context.Context, optionIndex int) (dto.QuizView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.availableLocked(); err != nil {
		return s.viewLocked(), err
	}
	if s.session.Phase() != quiz.AwaitingAnswer || s.scheduler.Pending(quiz.TaskReveal) {
		return s.viewLocked(), nil
	}
	if optionIndex < 0 || optionIndex >= len(s.session.Snapshot().Options) {
		return s.viewLocked(), domain.NewInvalidInputError("option index out of range")
	}

	res, _ := s.session.Submit(optionIndex)
	s.revealed = false
	s.play(ctx, domain.CueTap)
	logger.Get().Debug("Answer submitted",
		zap.Int("question", s.session.Index()),
		zap.Int("option", optionIndex),
		zap.Bool("correct", res.Correct))

	// The verdict cue carries the values of the request that answered.
	cueCtx := context.WithoutCancel(ctx)
	s.scheduler.Schedule(quiz.TaskReveal, s.cfg.FeedbackDelay, func() {
		s.revealLocked(cueCtx, res.Correct)
	})
	return s.viewLocked(), nil
}

// revealLocked shows the verdict once the feedback delay has elapsed.
func (s *quizService) revealLocked(ctx context.Context, correct bool) {
	s.revealed = true
	if correct {
		s.play(ctx, domain.CueCorrect)
	} else {
		s.play(ctx, domain.CueWrong)
	}
	if s.autoAdvance {
		s.scheduleAutoAdvanceLocked()
	}
}

func (s *quizService) scheduleAutoAdvanceLocked() {
	s.scheduler.Schedule(quiz.TaskAutoAdvance, s.cfg.AutoAdvanceDelay, func() {
		s.advanceLocked()
	})
}

func (s *quizService) Next(ctx context.Context) (dto.QuizView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.availableLocked(); err != nil {
		return s.viewLocked(), err
	}
	if s.session.Phase() != quiz.Answered || !s.revealed {
		return s.viewLocked(), nil
	}
	s.advanceLocked()
	return s.viewLocked(), nil
}

func (s *quizService) advanceLocked() {
	s.scheduler.Cancel(quiz.TaskAutoAdvance)
	if !s.session.Advance() {
		return
	}
	s.revealed = false
	if s.session.Phase() == quiz.Complete {
		s.scheduler.CancelAll()
		s.recordLocked()
	}
}

// recordLocked stores the finished attempt in the background. The ID is
// attached to the view only if no restart happened in the meantime.
func (s *quizService) recordLocked() {
	snap := s.session.Snapshot()
	result := &dto.QuizResult{
		Score:       snap.Score,
		Total:       snap.Total,
		Mistakes:    view.ReviewEntries(snap.Mistakes),
		CompletedAt: s.clock.Now().UTC(),
	}
	generation := s.generation

	s.records.Add(1)
	go func() {
		defer s.records.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		id, err := s.recorder.Record(ctx, result)
		if err != nil {
			logger.Get().Warn("Failed to record quiz result", zap.Error(err))
			return
		}
		if id == "" {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation == generation {
			s.resultID = id
		}
		logger.Get().Info("Quiz finished",
			zap.String("resultID", id),
			zap.Int("score", result.Score),
			zap.Int("total", result.Total))
	}()
}

// Restart cancels every pending transition before touching the session.
func (s *quizService) Restart(ctx context.Context) (dto.QuizView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.availableLocked(); err != nil {
		return s.viewLocked(), err
	}
	s.scheduler.CancelAll()
	s.generation++
	s.session.Restart()
	s.revealed = false
	s.resultID = ""
	s.transition = true
	s.scheduler.Schedule(quiz.TaskRestart, s.cfg.RestartDelay, func() {
		s.transition = false
	})
	logger.Get().Debug("Quiz restarted", zap.Uint64("generation", s.generation))
	return s.viewLocked(), nil
}

// ToggleTheme flips dark mode. It works in every status and survives restarts.
func (s *quizService) ToggleTheme() dto.QuizView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = !s.darkMode
	return s.viewLocked()
}

// SetAutoAdvance switches auto-advance. Turning it off drops a pending
// auto-advance so Next becomes the only way forward again; turning it on
// while a verdict is showing starts the countdown.
func (s *quizService) SetAutoAdvance(enabled bool) dto.QuizView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoAdvance = enabled
	if !enabled {
		s.scheduler.Cancel(quiz.TaskAutoAdvance)
		return s.viewLocked()
	}
	if s.status == view.StatusReady && s.session.Phase() == quiz.Answered && s.revealed &&
		!s.scheduler.Pending(quiz.TaskAutoAdvance) {
		s.scheduleAutoAdvanceLocked()
	}
	return s.viewLocked()
}

func (s *quizService) GetResult(ctx context.Context, resultID string) (*dto.QuizResult, error) {
	if resultID == "" {
		return nil, domain.NewInvalidInputError("result id is required")
	}
	return s.recorder.Get(ctx, resultID)
}

func (s *quizService) availableLocked() error {
	switch s.status {
	case view.StatusReady:
		return nil
	case view.StatusFailed:
		return domain.NewQuizUnavailableError(domain.MessageLoadFailed)
	case view.StatusEmpty:
		return domain.NewQuizUnavailableError(domain.MessageNoQuestions)
	default:
		return domain.NewQuizUnavailableError(view.MessageLoading)
	}
}

func (s *quizService) viewLocked() dto.QuizView {
	state := view.State{
		Status:      s.status,
		AutoAdvance: s.autoAdvance,
		DarkMode:    s.darkMode,
		Transition:  s.transition,
		Revealed:    s.revealed,
		ResultID:    s.resultID,
	}
	if s.session != nil {
		state.Snapshot = s.session.Snapshot()
	}
	if left, ok := s.scheduler.NextDue(); ok {
		state.RefreshIn = left
	}
	return view.Build(state)
}

// play fans a cue out to every player. Feedback never affects quiz state, so
// errors and panics are logged and dropped.
func (s *quizService) play(ctx context.Context, cue domain.Cue) {
	for _, p := range s.cues {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Get().Warn("Cue player panicked", zap.String("cue", string(cue)), zap.Any("panic", r))
				}
			}()
			if err := p.Play(ctx, cue); err != nil {
				logger.Get().Warn("Failed to play cue", zap.String("cue", string(cue)), zap.Error(err))
			}
		}()
	}
}

// Close cancels pending transitions and waits for background result writes.
func (s *quizService) Close() {
	s.mu.Lock()
	s.scheduler.CancelAll()
	s.mu.Unlock()
	s.records.Wait()
}
