package models

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single generated multiple-choice question as returned by the
// AI collaborator. The field names (pergunta/opcoes/resposta_correta) are the
// wire contract shared with the frontend. Array order is display order.
type Question struct {
	ID              *int     `json:"id,omitempty"` // only emitted by the guest URL template
	Pergunta        string   `json:"pergunta"`
	Opcoes          []string `json:"opcoes"`
	RespostaCorreta string   `json:"resposta_correta"`
}

// Quiz represents a persisted quiz owned by a user.
type Quiz struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	MaterialTitle string    `json:"material_title"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizQuestion is a persisted question belonging to a quiz. Ordem is the
// 1-based display position, assigned from the slice index at insert time.
type QuizQuestion struct {
	ID              uuid.UUID `json:"id"`
	QuizID          uuid.UUID `json:"quiz_id"`
	Pergunta        string    `json:"pergunta"`
	Opcoes          []string  `json:"opcoes"`
	RespostaCorreta string    `json:"resposta_correta"`
	Ordem           int32     `json:"ordem"`
}

// QuizDetail is a quiz together with its questions in ordem order.
type QuizDetail struct {
	Quiz
	Questions []QuizQuestion `json:"questions"`
}

// GenerateResponse is the success payload of the authenticated generate endpoint.
type GenerateResponse struct {
	QuizID uuid.UUID `json:"quizId"`
}

// UploadResponse is the success payload of the upload endpoint.
type UploadResponse struct {
	FilePath string `json:"file_path"`
}

// QuizListResponse represents the response for listing quizzes
type QuizListResponse struct {
	Quizzes []Quiz `json:"quizzes"`
	Total   int64  `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
