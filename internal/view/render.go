package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"

	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
)

//go:embed templates/quiz.html
var templateFS embed.FS

// Sound assets served under /static.
const (
	CorrectSound = "/static/correct.mp3"
	WrongSound   = "/static/wrong.mp3"
)

// Renderer turns a QuizView into the HTML page.
type Renderer struct {
	page *template.Template
}

func NewRenderer() (*Renderer, error) {
	page, err := template.ParseFS(templateFS, "templates/quiz.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Renderer{page: page}, nil
}

type pageData struct {
	View           dto.QuizView
	AudioSrc       string
	Vibrate        bool
	RefreshMillis  int64
	RefreshSeconds int64
}

// Render executes the page template for v.
func (r *Renderer) Render(v dto.QuizView) ([]byte, error) {
	data := pageData{View: v}
	switch domain.Cue(v.Cue) {
	case domain.CueCorrect:
		data.AudioSrc = CorrectSound
	case domain.CueWrong:
		data.AudioSrc = WrongSound
	case domain.CueTap:
		data.Vibrate = true
	}
	if v.RefreshAfter > 0 {
		data.RefreshMillis = v.RefreshAfter.Milliseconds() + 1
		data.RefreshSeconds = int64(math.Ceil(v.RefreshAfter.Seconds()))
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}
