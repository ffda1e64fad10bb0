package dto

import "time"

// OptionState is the visual marking of an answer control.
type OptionState string

const (
	OptionIdle    OptionState = ""
	OptionPulse   OptionState = "pulse"
	OptionCorrect OptionState = "correct"
	OptionWrong   OptionState = "wrong"
)

// OptionView is one answer control.
// @Description Answer control
type OptionView struct {
	Index    int         `json:"index"`
	Text     string      `json:"text"`
	State    OptionState `json:"state,omitempty"`
	Disabled bool        `json:"disabled"`
}

// ReviewEntry is one line of the end-of-quiz review.
// @Description Review entry for a wrong answer
type ReviewEntry struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer,omitempty"` // empty when the question marks no option correct
	YourAnswer    string `json:"your_answer"`
}

// QuizView is everything needed to draw the page.
// @Description Rendered quiz state
type QuizView struct {
	Status       string        `json:"status"` // ready, complete, failed, empty
	Message      string        `json:"message,omitempty"`
	Question     string        `json:"question"`
	Options      []OptionView  `json:"options"`
	Result       string        `json:"result,omitempty"`
	ScoreLabel   string        `json:"score_label"`
	Score        int           `json:"score"`
	Total        int           `json:"total"`
	Number       int           `json:"number"`
	Progress     float64       `json:"progress"`
	NextEnabled  bool          `json:"next_enabled"`
	AutoAdvance  bool          `json:"auto_advance"`
	DarkMode     bool          `json:"dark_mode"`
	ShowQuiz     bool          `json:"show_quiz"`
	ShowReview   bool          `json:"show_review"`
	Transition   bool          `json:"transition"`
	FinalScore   string        `json:"final_score,omitempty"`
	MistakeCount string        `json:"mistake_count,omitempty"`
	Review       []ReviewEntry `json:"review,omitempty"`
	ResultID     string        `json:"result_id,omitempty"` // set once the finished attempt is recorded
	Cue          string        `json:"cue,omitempty"`
	RefreshAfter time.Duration `json:"refresh_after,omitempty" swaggertype:"integer"`
}

// AnswerRequest selects an option by its displayed position.
// @Description Request body for answering the current question
type AnswerRequest struct {
	Option *int `json:"option" form:"option"`
}

// AutoAdvanceRequest turns auto-advance on or off.
// @Description Request body for the auto-advance toggle
type AutoAdvanceRequest struct {
	Enabled bool `json:"enabled" form:"enabled"`
}

// QuizResult summarises a finished attempt.
type QuizResult struct {
	ID          string        `json:"id"`
	Score       int           `json:"score"`
	Total       int           `json:"total"`
	Mistakes    []ReviewEntry `json:"mistakes"`
	CompletedAt time.Time     `json:"completed_at"`
}
