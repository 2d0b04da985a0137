package db

import (
	"context"
	"fmt"

	"docquiz/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx, so the same queries run
// inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Queries bundles the SQL statements of the quiz store.
type Queries struct {
	db DBTX
}

// New creates Queries over a pool or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns Queries bound to the given transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const createQuiz = `
INSERT INTO quizzes (user_id, material_title)
VALUES ($1, $2)
RETURNING id, user_id, material_title, created_at
`

// CreateQuiz inserts a quiz row for the user and returns it.
func (q *Queries) CreateQuiz(ctx context.Context, userID uuid.UUID, materialTitle string) (models.Quiz, error) {
	var quiz models.Quiz
	err := q.db.QueryRow(ctx, createQuiz, userID, materialTitle).
		Scan(&quiz.ID, &quiz.UserID, &quiz.MaterialTitle, &quiz.CreatedAt)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, nil
}

const insertQuestion = `
INSERT INTO questions (quiz_id, pergunta, opcoes, resposta_correta, ordem)
VALUES ($1, $2, $3, $4, $5)
`

// InsertQuestions bulk-inserts the questions of a quiz. Ordem is taken from
// the slice position, never from any id the model may have emitted.
func (q *Queries) InsertQuestions(ctx context.Context, quizID uuid.UUID, questions []models.Question) error {
	rows := BuildQuestionRows(quizID, questions)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(insertQuestion, row.QuizID, row.Pergunta, row.Opcoes, row.RespostaCorreta, row.Ordem)
	}

	results := q.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert questions: %w", err)
		}
	}
	return nil
}

// BuildQuestionRows maps parsed questions onto persistable rows, assigning
// ordem = 1..N from the input order.
func BuildQuestionRows(quizID uuid.UUID, questions []models.Question) []models.QuizQuestion {
	rows := make([]models.QuizQuestion, len(questions))
	for i, question := range questions {
		rows[i] = models.QuizQuestion{
			QuizID:          quizID,
			Pergunta:        question.Pergunta,
			Opcoes:          question.Opcoes,
			RespostaCorreta: question.RespostaCorreta,
			Ordem:           int32(i + 1),
		}
	}
	return rows
}

const getQuiz = `
SELECT id, user_id, material_title, created_at
FROM quizzes
WHERE id = $1
`

// GetQuiz fetches one quiz by id. Returns pgx.ErrNoRows when it does not exist.
func (q *Queries) GetQuiz(ctx context.Context, quizID uuid.UUID) (models.Quiz, error) {
	var quiz models.Quiz
	err := q.db.QueryRow(ctx, getQuiz, quizID).
		Scan(&quiz.ID, &quiz.UserID, &quiz.MaterialTitle, &quiz.CreatedAt)
	if err != nil {
		return models.Quiz{}, err
	}
	return quiz, nil
}

const getQuizQuestions = `
SELECT id, quiz_id, pergunta, opcoes, resposta_correta, ordem
FROM questions
WHERE quiz_id = $1
ORDER BY ordem
`

// GetQuizQuestions fetches a quiz's questions in display order.
func (q *Queries) GetQuizQuestions(ctx context.Context, quizID uuid.UUID) ([]models.QuizQuestion, error) {
	rows, err := q.db.Query(ctx, getQuizQuestions, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.QuizQuestion
	for rows.Next() {
		var question models.QuizQuestion
		if err := rows.Scan(&question.ID, &question.QuizID, &question.Pergunta,
			&question.Opcoes, &question.RespostaCorreta, &question.Ordem); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

const listQuizzesByUser = `
SELECT id, user_id, material_title, created_at
FROM quizzes
WHERE user_id = $1
ORDER BY created_at DESC
`

// ListQuizzesByUser returns the user's quizzes, newest first.
func (q *Queries) ListQuizzesByUser(ctx context.Context, userID uuid.UUID) ([]models.Quiz, error) {
	rows, err := q.db.Query(ctx, listQuizzesByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []models.Quiz
	for rows.Next() {
		var quiz models.Quiz
		if err := rows.Scan(&quiz.ID, &quiz.UserID, &quiz.MaterialTitle, &quiz.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

const deleteQuiz = `
DELETE FROM quizzes
WHERE id = $1 AND user_id = $2
`

// DeleteQuiz removes a quiz owned by the user; questions go with it via the
// FK cascade. Returns the number of quizzes deleted (0 or 1).
func (q *Queries) DeleteQuiz(ctx context.Context, quizID uuid.UUID, userID uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuiz, quizID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete quiz: %w", err)
	}
	return tag.RowsAffected(), nil
}
