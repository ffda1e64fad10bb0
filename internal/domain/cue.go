package domain

import "context"

// Cue is a fire-and-forget signal emitted when the user interacts with the quiz.
type Cue string

const (
	CueTap     Cue = "tap"     // haptic pulse on selection
	CueCorrect Cue = "correct" // audio for a correct answer
	CueWrong   Cue = "wrong"   // audio for a wrong answer
)

// CuePlayer plays audio or haptic feedback. Failures must never affect quiz state;
// callers log and discard the returned error.
type CuePlayer interface {
	Play(ctx context.Context, cue Cue) error
}
