package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"quiz-runner/internal/config"
	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
	"quiz-runner/internal/handler"
	"quiz-runner/internal/logger"
	"quiz-runner/internal/middleware"
	"quiz-runner/internal/quiz"
	"quiz-runner/internal/service"
	"quiz-runner/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "test"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

type stubSource struct {
	questions []domain.Question
	err       error
}

func (s stubSource) Load(context.Context) ([]domain.Question, error) {
	return s.questions, s.err
}

var questions = []domain.Question{
	{Text: "Largest planet?", Options: []domain.Option{{Text: "Jupiter", Correct: true}, {Text: "Mars"}}},
	{Text: "Smallest planet?", Options: []domain.Option{{Text: "Mercury", Correct: true}, {Text: "Venus"}}},
}

type testEnv struct {
	app   *fiber.App
	clock *quiz.ManualClock
	svc   service.QuizService
}

func setup(t *testing.T, source stubSource) *testEnv {
	t.Helper()
	clock := quiz.NewManualClock()
	cues := view.NewPageCues()
	cfg := config.QuizConfig{
		FeedbackDelay:    300 * time.Millisecond,
		AutoAdvanceDelay: 10 * time.Second,
		RestartDelay:     400 * time.Millisecond,
	}
	svc := service.NewQuizService(source, nil, cfg, service.WithClock(clock), service.WithCuePlayers(cues))
	_ = svc.Init(context.Background())

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handler.NewPageHandler(svc, renderer, cues), handler.NewQuizHandler(svc))
	return &testEnv{app: app, clock: clock, svc: svc}
}

func (e *testEnv) do(t *testing.T, method, path, contentType, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decodeView(t *testing.T, resp *http.Response) dto.QuizView {
	t.Helper()
	defer resp.Body.Close()
	var v dto.QuizView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPage_Show(t *testing.T) {
	env := setup(t, stubSource{questions: questions})

	resp := env.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	html := readBody(t, resp)
	assert.Contains(t, html, "planet?")
	assert.Contains(t, html, `name="option"`)
	assert.Contains(t, html, "Score: 0")
}

func TestPage_AnswerFlow(t *testing.T) {
	env := setup(t, stubSource{questions: questions})

	resp := env.do(t, http.MethodPost, "/answer", fiber.MIMEApplicationForm, "option=0")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	html := readBody(t, env.do(t, http.MethodGet, "/", "", ""))
	assert.Contains(t, html, `class="answer pulse"`)
	assert.Contains(t, html, "navigator.vibrate")
	assert.Contains(t, html, "setTimeout")

	html = readBody(t, env.do(t, http.MethodGet, "/", "", ""))
	assert.NotContains(t, html, "navigator.vibrate", "a cue is delivered once")

	env.clock.Advance(300 * time.Millisecond)
	html = readBody(t, env.do(t, http.MethodGet, "/", "", ""))
	assert.Contains(t, html, "<audio autoplay")
	assert.NotContains(t, html, "setTimeout")

	resp = env.do(t, http.MethodPost, "/next", "", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 2, env.svc.View().Number)
}

func TestPage_ThemeAndAutoAdvance(t *testing.T) {
	env := setup(t, stubSource{questions: questions})

	resp := env.do(t, http.MethodPost, "/theme", "", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, env.svc.View().DarkMode)

	resp = env.do(t, http.MethodPost, "/auto-advance", fiber.MIMEApplicationForm, "enabled=true")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, env.svc.View().AutoAdvance)

	env.do(t, http.MethodPost, "/auto-advance", fiber.MIMEApplicationForm, "enabled=false")
	assert.False(t, env.svc.View().AutoAdvance)
}

func TestPage_UnavailableQuizRedirects(t *testing.T) {
	env := setup(t, stubSource{err: errors.New("network response was not ok: HTTP 500")})

	resp := env.do(t, http.MethodPost, "/restart", "", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	html := readBody(t, env.do(t, http.MethodGet, "/", "", ""))
	assert.Contains(t, html, "Failed to load questions.")
	assert.NotContains(t, html, `name="option"`)
}

func TestAPI_QuizFlow(t *testing.T) {
	env := setup(t, stubSource{questions: questions})

	v := decodeView(t, env.do(t, http.MethodGet, "/api/quiz", "", ""))
	assert.Equal(t, "ready", v.Status)
	assert.Equal(t, 1, v.Number)
	assert.Equal(t, 2, v.Total)

	v = decodeView(t, env.do(t, http.MethodPost, "/api/quiz/answer", fiber.MIMEApplicationJSON, `{"option":1}`))
	require.Len(t, v.Options, 2)
	assert.True(t, v.Options[0].Disabled)
	assert.Equal(t, dto.OptionPulse, v.Options[1].State)
	assert.Empty(t, v.Result)

	env.clock.Advance(300 * time.Millisecond)
	v = decodeView(t, env.do(t, http.MethodGet, "/api/quiz", "", ""))
	assert.NotEmpty(t, v.Result)
	assert.True(t, v.NextEnabled)

	v = decodeView(t, env.do(t, http.MethodPost, "/api/quiz/next", "", ""))
	assert.Equal(t, 2, v.Number)

	v = decodeView(t, env.do(t, http.MethodPost, "/api/quiz/restart", "", ""))
	assert.Equal(t, 1, v.Number)
	assert.Equal(t, 0, v.Score)
	assert.True(t, v.Transition)
}

func TestAPI_AnswerCuesStayOffThePage(t *testing.T) {
	env := setup(t, stubSource{questions: questions})

	resp := env.do(t, http.MethodPost, "/api/quiz/answer", fiber.MIMEApplicationJSON, `{"option":0}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	html := readBody(t, env.do(t, http.MethodGet, "/", "", ""))
	assert.NotContains(t, html, "navigator.vibrate")

	env.clock.Advance(300 * time.Millisecond)
	html = readBody(t, env.do(t, http.MethodGet, "/", "", ""))
	assert.NotContains(t, html, "<audio autoplay")
}

func TestAPI_Settings(t *testing.T) {
	env := setup(t, stubSource{questions: questions})

	v := decodeView(t, env.do(t, http.MethodPost, "/api/quiz/theme", "", ""))
	assert.True(t, v.DarkMode)

	v = decodeView(t, env.do(t, http.MethodPost, "/api/quiz/auto-advance", fiber.MIMEApplicationJSON, `{"enabled":true}`))
	assert.True(t, v.AutoAdvance)

	resp := env.do(t, http.MethodPost, "/api/quiz/auto-advance", fiber.MIMEApplicationJSON, `{"enabled":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Errors(t *testing.T) {
	tests := []struct {
		name       string
		source     stubSource
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"option out of range", stubSource{questions: questions}, http.MethodPost, "/api/quiz/answer", `{"option":9}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing option", stubSource{questions: questions}, http.MethodPost, "/api/quiz/answer", `{}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"load failed", stubSource{err: errors.New("boom")}, http.MethodPost, "/api/quiz/next", "", http.StatusConflict, "QUIZ_UNAVAILABLE"},
		{"no questions", stubSource{questions: []domain.Question{}}, http.MethodPost, "/api/quiz/answer", `{"option":0}`, http.StatusConflict, "QUIZ_UNAVAILABLE"},
		{"bad result id", stubSource{questions: questions}, http.MethodGet, "/api/quiz/results/nope", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown result", stubSource{questions: questions}, http.MethodGet, "/api/quiz/results/01HZ3V8F6R7K2M9N4P5Q6R7S8T", "", http.StatusNotFound, "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setup(t, tt.source)
			contentType := ""
			if tt.body != "" {
				contentType = fiber.MIMEApplicationJSON
			}
			resp := env.do(t, tt.method, tt.path, contentType, tt.body)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var body struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}
