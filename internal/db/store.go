package db

import (
	"context"
	"fmt"
	"log"

	"docquiz/internal/models"

	"github.com/google/uuid"
)

// CreateQuizWithQuestions persists a quiz and its ordered questions in one
// transaction. A failed question insert rolls the quiz back, so no quiz row
// ever exists without its questions.
func (db *DB) CreateQuizWithQuestions(ctx context.Context, userID uuid.UUID, materialTitle string, questions []models.Question) (uuid.UUID, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := db.Queries.WithTx(tx)

	quiz, err := qtx.CreateQuiz(ctx, userID, materialTitle)
	if err != nil {
		return uuid.Nil, err
	}

	if err := qtx.InsertQuestions(ctx, quiz.ID, questions); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit quiz: %w", err)
	}

	log.Printf("INFO: Persisted quiz %s with %d questions for user %s", quiz.ID, len(questions), userID)
	return quiz.ID, nil
}

// Read and delete operations forward to the pooled queries.

func (db *DB) GetQuiz(ctx context.Context, quizID uuid.UUID) (models.Quiz, error) {
	return db.Queries.GetQuiz(ctx, quizID)
}

func (db *DB) GetQuizQuestions(ctx context.Context, quizID uuid.UUID) ([]models.QuizQuestion, error) {
	return db.Queries.GetQuizQuestions(ctx, quizID)
}

func (db *DB) ListQuizzesByUser(ctx context.Context, userID uuid.UUID) ([]models.Quiz, error) {
	return db.Queries.ListQuizzesByUser(ctx, userID)
}

func (db *DB) DeleteQuiz(ctx context.Context, quizID uuid.UUID, userID uuid.UUID) (int64, error) {
	return db.Queries.DeleteQuiz(ctx, quizID, userID)
}
