package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"docquiz/internal/extract"
	"docquiz/internal/gemini"
	"docquiz/internal/models"

	"github.com/gin-gonic/gin"
)

// GenerateURLRequest is the body of the guest URL entry point.
type GenerateURLRequest struct {
	URL string `json:"url"`
}

// GenerateRequest is the body of the authenticated entry point. Exactly one
// of FilePath (an object-storage key) and URL must be set.
type GenerateRequest struct {
	FilePath      string `json:"file_path"`
	URL           string `json:"url"`
	MaterialTitle string `json:"material_title"`
}

// HandleGenerateGuestFile generates a 5-question sample quiz from an
// uploaded document. Stateless: nothing is persisted.
func (h *Handler) HandleGenerateGuestFile(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Gemini == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Generation service unavailable", errors.New("GEMINI_API_KEY not configured"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	log.Printf("INFO: Guest file generation for %s (%d bytes)", fileHeader.Filename, len(data))

	text, err := h.extractText(c, data, fileHeader.Filename)
	if err != nil {
		return // extractText already responded
	}

	questions, err := h.Gemini.Generate(ctx, gemini.TemplateGuestFile, text)
	if err != nil {
		h.respondError(c, http.StatusBadGateway, "Failed to generate quiz", err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// HandleGenerateGuestURL generates a 5-question sample quiz from a video
// transcript. Stateless: nothing is persisted.
func (h *Handler) HandleGenerateGuestURL(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Gemini == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Generation service unavailable", errors.New("GEMINI_API_KEY not configured"))
		return
	}

	var req GenerateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		h.respondError(c, http.StatusBadRequest, "URL is required", errors.New("missing url field"))
		return
	}

	text, _, err := h.Youtube.GetTranscript(ctx, req.URL)
	if err != nil {
		h.respondError(c, http.StatusUnprocessableEntity, "Failed to extract transcript", err)
		return
	}
	if strings.TrimSpace(text) == "" {
		h.respondError(c, http.StatusBadRequest, "No text content found in transcript", errors.New("empty transcript"))
		return
	}

	questions, err := h.Gemini.Generate(ctx, gemini.TemplateGuestURL, text)
	if err != nil {
		h.respondError(c, http.StatusBadGateway, "Failed to generate quiz", err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// HandleGenerate runs the authenticated pipeline: material (stored file or
// video URL) to a persisted 7-question quiz. Responds with the new quiz id.
func (h *Handler) HandleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		h.respondError(c, http.StatusUnauthorized, "User not authenticated", errors.New("user id missing from context"))
		return
	}

	if h.Gemini == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Generation service unavailable", errors.New("GEMINI_API_KEY not configured"))
		return
	}
	if h.Store == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Persistence unavailable", errors.New("DATABASE_URL not configured"))
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if (req.FilePath == "") == (req.URL == "") {
		h.respondError(c, http.StatusBadRequest, "Provide exactly one of file_path or url", errors.New("bad material reference"))
		return
	}

	materialTitle := req.MaterialTitle
	var text string

	if req.FilePath != "" {
		if h.Storage == nil {
			h.respondError(c, http.StatusServiceUnavailable, "File storage unavailable", errors.New("R2 storage not configured"))
			return
		}

		data, err := h.Storage.Download(ctx, req.FilePath)
		if err != nil {
			h.respondError(c, http.StatusUnprocessableEntity, "Failed to download file", err)
			return
		}

		text, err = h.extractText(c, data, req.FilePath)
		if err != nil {
			return
		}
	} else {
		transcript, videoTitle, err := h.Youtube.GetTranscript(ctx, req.URL)
		if err != nil {
			h.respondError(c, http.StatusUnprocessableEntity, "Failed to extract transcript", err)
			return
		}
		text = transcript
		if materialTitle == "" {
			materialTitle = videoTitle
		}
		if materialTitle == "" {
			materialTitle = req.URL
		}
	}

	if strings.TrimSpace(text) == "" {
		h.respondError(c, http.StatusBadRequest, "No text content found in material", errors.New("empty extracted text"))
		return
	}
	if materialTitle == "" {
		materialTitle = "Quiz"
	}

	questions, err := h.Gemini.Generate(ctx, gemini.TemplateAuthenticated, text)
	if err != nil {
		h.respondError(c, http.StatusBadGateway, "Failed to generate quiz", err)
		return
	}

	quizID, err := h.Store.CreateQuizWithQuestions(ctx, userID, materialTitle, questions)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Failed to save quiz", err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateResponse{QuizID: quizID})
}

// extractText dispatches format extraction and maps its failures. On error
// the response has already been written and ("", err) is returned.
func (h *Handler) extractText(c *gin.Context, data []byte, filename string) (string, error) {
	text, err := extract.FromFile(data, filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			h.respondError(c, http.StatusBadRequest, "Unsupported file type", err)
		} else {
			h.respondError(c, http.StatusUnprocessableEntity, "Failed to extract text", err)
		}
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		err := errors.New("empty extracted text")
		h.respondError(c, http.StatusBadRequest, "No text content found in file", err)
		return "", err
	}
	return text, nil
}
