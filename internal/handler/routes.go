package handler

import (
	"quiz-runner/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the page routes at the root and the JSON API under /api.
func RegisterRoutes(app *fiber.App, page *PageHandler, quiz *QuizHandler) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/", page.Show)
	app.Post("/answer", vm.ValidateAnswer(), page.Answer)
	app.Post("/next", page.Next)
	app.Post("/restart", page.Restart)
	app.Post("/theme", page.ToggleTheme)
	app.Post("/auto-advance", page.SetAutoAdvance)

	api := app.Group("/api/quiz")
	api.Get("/", quiz.GetQuiz)
	api.Post("/answer", vm.ValidateAnswer(), quiz.Answer)
	api.Post("/next", quiz.Next)
	api.Post("/restart", quiz.Restart)
	api.Post("/theme", quiz.ToggleTheme)
	api.Post("/auto-advance", quiz.SetAutoAdvance)
	api.Get("/results/:id", vm.ValidateResultID(), quiz.GetResult)
}
