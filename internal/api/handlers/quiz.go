package handlers

import (
	"errors"
	"net/http"

	"docquiz/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HandleGetQuiz returns a quiz owned by the caller together with its
// questions in ordem order.
func (h *Handler) HandleGetQuiz(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		h.respondError(c, http.StatusUnauthorized, "User not authenticated", errors.New("user id missing from context"))
		return
	}
	if h.Store == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Persistence unavailable", errors.New("DATABASE_URL not configured"))
		return
	}

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid quiz ID", err)
		return
	}

	quiz, err := h.Store.GetQuiz(ctx, quizID)
	if errors.Is(err, pgx.ErrNoRows) {
		h.respondError(c, http.StatusNotFound, "Quiz not found", err)
		return
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to load quiz", err)
		return
	}

	// Quizzes are private to their owner; a foreign id reads as not found.
	if quiz.UserID != userID {
		h.respondError(c, http.StatusNotFound, "Quiz not found", errors.New("quiz belongs to another user"))
		return
	}

	questions, err := h.Store.GetQuizQuestions(ctx, quizID)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to load quiz questions", err)
		return
	}

	c.JSON(http.StatusOK, models.QuizDetail{Quiz: quiz, Questions: questions})
}

// HandleListUserQuizzes lists the caller's quizzes, newest first.
func (h *Handler) HandleListUserQuizzes(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		h.respondError(c, http.StatusUnauthorized, "User not authenticated", errors.New("user id missing from context"))
		return
	}
	if h.Store == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Persistence unavailable", errors.New("DATABASE_URL not configured"))
		return
	}

	quizzes, err := h.Store.ListQuizzesByUser(ctx, userID)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to list quizzes", err)
		return
	}

	c.JSON(http.StatusOK, models.QuizListResponse{
		Quizzes: quizzes,
		Total:   int64(len(quizzes)),
	})
}

// HandleDeleteQuiz deletes a quiz owned by the caller; its questions go with
// it via the FK cascade.
func (h *Handler) HandleDeleteQuiz(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		h.respondError(c, http.StatusUnauthorized, "User not authenticated", errors.New("user id missing from context"))
		return
	}
	if h.Store == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Persistence unavailable", errors.New("DATABASE_URL not configured"))
		return
	}

	quizID, err := uuid.Parse(c.Param("quizId"))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid quiz ID", err)
		return
	}

	deleted, err := h.Store.DeleteQuiz(ctx, quizID, userID)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to delete quiz", err)
		return
	}
	if deleted == 0 {
		h.respondError(c, http.StatusNotFound, "Quiz not found", errors.New("no quiz deleted"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted"})
}
