package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"docquiz/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ModelName is the Gemini model to use
const ModelName = "gemini-1.5-flash"

// ErrGenerationFailed covers transport and model errors from the Gemini call.
// A single failed attempt terminates the request; there is no retry.
var ErrGenerationFailed = errors.New("quiz generation failed")

// Client wraps the Gemini client
type Client struct {
	client *genai.Client
}

// NewClient creates a new Gemini client from GEMINI_API_KEY. It returns
// (nil, nil) when the key is not configured, so the server can come up with
// generation disabled; handlers answer 503 for a nil client.
func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("WARN: GEMINI_API_KEY not set. Quiz generation will be unavailable.")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client}, nil
}

// Close closes the Gemini client
func (c *Client) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

// Generate runs one synchronous generation call for the given template and
// body text and parses the response into an ordered question list.
func (c *Client) Generate(ctx context.Context, tpl Template, text string) ([]models.Question, error) {
	model := c.client.GenerativeModel(ModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(tpl.Instruction())},
	}

	prompt := BuildPrompt(text, tpl)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no content generated", ErrGenerationFailed)
	}

	raw := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw += string(text)
		}
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.Printf("ERROR: Failed to parse Gemini response: %v. Raw text: %s", err, raw)
		return nil, err
	}

	log.Printf("INFO: Generated %d questions (template %s)", len(questions), tpl)
	return questions, nil
}
