// Package docs registers the OpenAPI description of the quiz API with swag.
// Regenerate with: swag init -g cmd/quiz/main.go -o cmd/quiz/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/quiz": {
            "get": {
                "description": "Returns everything needed to draw the quiz: question, options, score, review",
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Get the current quiz state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizView"}}
                }
            }
        },
        "/quiz/answer": {
            "post": {
                "description": "Selects an option by its displayed position. The verdict is revealed after the feedback delay.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Answer the current question",
                "parameters": [
                    {
                        "description": "Answer Request",
                        "name": "answer",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AnswerRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/quiz/next": {
            "post": {
                "description": "Advances after the verdict is shown. Ignored before that.",
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Go to the next question",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/quiz/restart": {
            "post": {
                "description": "Resets score and mistakes and reshuffles the questions",
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Restart the quiz",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/quiz/theme": {
            "post": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Toggle dark mode",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizView"}}
                }
            }
        },
        "/quiz/auto-advance": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Turn auto-advance on or off",
                "parameters": [
                    {
                        "description": "Auto-advance Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AutoAdvanceRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}}
                }
            }
        },
        "/quiz/results/{id}": {
            "get": {
                "description": "Returns a finished attempt while it is still retained",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Get a recorded quiz result",
                "parameters": [
                    {"type": "string", "description": "Result ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.AnswerRequest": {
            "description": "Request body for answering the current question",
            "type": "object",
            "properties": {
                "option": {"type": "integer"}
            }
        },
        "dto.AutoAdvanceRequest": {
            "description": "Request body for the auto-advance toggle",
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"}
            }
        },
        "dto.OptionView": {
            "description": "Answer control",
            "type": "object",
            "properties": {
                "disabled": {"type": "boolean"},
                "index": {"type": "integer"},
                "state": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "dto.QuizResult": {
            "type": "object",
            "properties": {
                "completed_at": {"type": "string"},
                "id": {"type": "string"},
                "mistakes": {"type": "array", "items": {"$ref": "#/definitions/dto.ReviewEntry"}},
                "score": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "dto.QuizView": {
            "description": "Rendered quiz state",
            "type": "object",
            "properties": {
                "auto_advance": {"type": "boolean"},
                "cue": {"type": "string"},
                "dark_mode": {"type": "boolean"},
                "final_score": {"type": "string"},
                "message": {"type": "string"},
                "mistake_count": {"type": "string"},
                "next_enabled": {"type": "boolean"},
                "number": {"type": "integer"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/dto.OptionView"}},
                "progress": {"type": "number"},
                "question": {"type": "string"},
                "refresh_after": {"type": "integer"},
                "result": {"type": "string"},
                "result_id": {"type": "string"},
                "review": {"type": "array", "items": {"$ref": "#/definitions/dto.ReviewEntry"}},
                "score": {"type": "integer"},
                "score_label": {"type": "string"},
                "show_quiz": {"type": "boolean"},
                "show_review": {"type": "boolean"},
                "status": {"type": "string"},
                "total": {"type": "integer"},
                "transition": {"type": "boolean"}
            }
        },
        "dto.ReviewEntry": {
            "description": "Review entry for a wrong answer",
            "type": "object",
            "properties": {
                "correct_answer": {"type": "string"},
                "question": {"type": "string"},
                "your_answer": {"type": "string"}
            }
        },
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "middleware.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Quiz Runner API",
	Description:      "JSON interface of the multiple-choice quiz runner. The HTML page at / drives the same session.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
