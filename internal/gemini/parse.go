package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"docquiz/internal/models"
)

// ErrMalformedResponse is returned when the model output is not a parseable,
// non-empty JSON array of well-formed questions.
var ErrMalformedResponse = errors.New("malformed AI response")

var (
	fenceJSONRe = regexp.MustCompile("```json\n?")
	fenceRe     = regexp.MustCompile("```\n?")
)

// StripFences removes every markdown code-fence artifact the model may have
// wrapped around its JSON output, then trims surrounding whitespace.
func StripFences(raw string) string {
	clean := fenceJSONRe.ReplaceAllString(raw, "")
	clean = fenceRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// ParseQuestions parses raw model output into an ordered question list.
// It fails if the cleaned text is not valid JSON, is not an array, is empty,
// or contains a question with an empty pergunta, fewer than two opcoes, or a
// resposta_correta that is not one of the opcoes.
func ParseQuestions(raw string) ([]models.Question, error) {
	clean := StripFences(raw)

	var questions []models.Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: response contained no questions", ErrMalformedResponse)
	}

	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrMalformedResponse, i+1, err)
		}
	}

	return questions, nil
}

func validateQuestion(q models.Question) error {
	if strings.TrimSpace(q.Pergunta) == "" {
		return errors.New("pergunta is empty")
	}
	if len(q.Opcoes) < 2 {
		return fmt.Errorf("expected at least 2 opcoes, got %d", len(q.Opcoes))
	}
	for _, o := range q.Opcoes {
		if o == q.RespostaCorreta {
			return nil
		}
	}
	return fmt.Errorf("resposta_correta %q is not among the opcoes", q.RespostaCorreta)
}
