package handlers

import (
	"context"
	"fmt"
	"io"
	"log"

	"docquiz/internal/db"
	"docquiz/internal/gemini"
	"docquiz/internal/models"
	"docquiz/internal/storage"
	"docquiz/internal/youtube"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuestionGenerator is the AI collaborator: text in, ordered questions out.
type QuestionGenerator interface {
	Generate(ctx context.Context, tpl gemini.Template, text string) ([]models.Question, error)
}

// TranscriptFetcher turns a video URL into flattened caption text plus the
// video title (may be empty).
type TranscriptFetcher interface {
	GetTranscript(ctx context.Context, url string) (string, string, error)
}

// ObjectStore stages material files and serves them back by key.
type ObjectStore interface {
	Upload(ctx context.Context, userID uuid.UUID, filename string, content io.Reader) (string, error)
	Download(ctx context.Context, objectKey string) ([]byte, error)
}

// QuizStore persists and reads quizzes and their ordered questions.
type QuizStore interface {
	CreateQuizWithQuestions(ctx context.Context, userID uuid.UUID, materialTitle string, questions []models.Question) (uuid.UUID, error)
	GetQuiz(ctx context.Context, quizID uuid.UUID) (models.Quiz, error)
	GetQuizQuestions(ctx context.Context, quizID uuid.UUID) ([]models.QuizQuestion, error)
	ListQuizzesByUser(ctx context.Context, userID uuid.UUID) ([]models.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID uuid.UUID, userID uuid.UUID) (int64, error)
}

// Handler contains the API handlers dependencies. Collaborators left nil
// (missing configuration) make the endpoints that need them answer 503.
type Handler struct {
	Gemini  QuestionGenerator
	Youtube TranscriptFetcher
	Storage ObjectStore
	Store   QuizStore
}

// NewHandler creates a new Handler. The concrete collaborators are checked
// for nil here so that a missing one stays a nil interface.
func NewHandler(geminiClient *gemini.Client, youtubeClient *youtube.Client, storageClient *storage.Client, database *db.DB) *Handler {
	h := &Handler{}
	if geminiClient != nil {
		h.Gemini = geminiClient
	}
	if youtubeClient != nil {
		h.Youtube = youtubeClient
	}
	if storageClient != nil {
		h.Storage = storageClient
	}
	if database != nil {
		h.Store = database
	}
	return h
}

// respondError logs a failure and aborts the request with a machine-readable
// {error} payload. Every pipeline failure funnels through here; no stage
// retries and no partial result is ever returned.
func (h *Handler) respondError(c *gin.Context, statusCode int, errorContext string, err error) {
	log.Printf("ERROR: %s: %v (path: %s)", errorContext, err, c.Request.URL.Path)
	c.AbortWithStatusJSON(statusCode, gin.H{"error": fmt.Sprintf("%s: %v", errorContext, err)})
}

// userIDFromContext reads the user id placed in the context by AuthRequired.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
