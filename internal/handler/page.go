package handler

import (
	"strings"

	"quiz-runner/internal/domain"
	"quiz-runner/internal/middleware"
	"quiz-runner/internal/service"
	"quiz-runner/internal/view"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the server-rendered quiz page. Every form posts back and
// is redirected to the page, which reloads itself while a timer is pending.
type PageHandler struct {
	service  service.QuizService
	renderer *view.Renderer
	cues     *view.PageCues
}

func NewPageHandler(service service.QuizService, renderer *view.Renderer, cues *view.PageCues) *PageHandler {
	return &PageHandler{service: service, renderer: renderer, cues: cues}
}

// Show renders the page and hands it the pending cue.
func (h *PageHandler) Show(c *fiber.Ctx) error {
	v := h.service.View()
	if h.cues != nil {
		v.Cue = string(h.cues.Take())
	}
	body, err := h.renderer.Render(v)
	if err != nil {
		return domain.NewInternalError("failed to render quiz page", err)
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(body)
}

func (h *PageHandler) Answer(c *fiber.Ctx) error {
	option, _ := c.Locals(middleware.LocalsOption).(int)
	_, err := h.service.Select(view.WithPageRequest(c.UserContext()), option)
	return h.back(c, err)
}

func (h *PageHandler) Next(c *fiber.Ctx) error {
	_, err := h.service.Next(c.UserContext())
	return h.back(c, err)
}

func (h *PageHandler) Restart(c *fiber.Ctx) error {
	_, err := h.service.Restart(c.UserContext())
	return h.back(c, err)
}

func (h *PageHandler) ToggleTheme(c *fiber.Ctx) error {
	h.service.ToggleTheme()
	return h.back(c, nil)
}

// SetAutoAdvance reads the desired state from the "enabled" form field.
func (h *PageHandler) SetAutoAdvance(c *fiber.Ctx) error {
	h.service.SetAutoAdvance(checked(c.FormValue("enabled")))
	return h.back(c, nil)
}

// back redirects to the page. The page itself explains an unavailable quiz,
// so that error is not surfaced.
func (h *PageHandler) back(c *fiber.Ctx, err error) error {
	if err != nil && domain.CodeOf(err) != domain.ErrQuizUnavailable {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func checked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
