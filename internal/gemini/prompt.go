package gemini

import "fmt"

// Template selects one of the fixed system instructions. The three variants
// differ only in the desired question count and in whether the JSON shape
// hint includes a per-question id.
type Template int

const (
	TemplateGuestFile Template = iota
	TemplateGuestURL
	TemplateAuthenticated
)

const (
	guestFileInstruction = `Você é um assistente educacional especialista em criar quizzes. Baseado no texto fornecido, gere 5 perguntas de múltipla escolha. Sua resposta deve ser APENAS um JSON válido, seguindo este formato exato: [ { "pergunta": "...", "opcoes": ["A", "B", "C", "D"], "resposta_correta": "A" } ] Não inclua ` + "```json" + ` ou qualquer outro texto antes ou depois do array JSON.`

	guestURLInstruction = `Você é um assistente educacional. Baseado no texto, gere 5 perguntas de múltipla escolha. Sua resposta deve ser APENAS um JSON válido, no formato: [ { "id": 1, "pergunta": "...", "opcoes": ["A", "B"], "resposta_correta": "A" }, { "id": 2, "pergunta": "..." } ] Não inclua ` + "```json" + ` ou qualquer outro texto.`

	authenticatedInstruction = `Você é um assistente educacional especialista em criar quizzes. Baseado no texto fornecido, gere 7 perguntas de múltipla escolha. Sua resposta deve ser APENAS um JSON válido, seguindo este formato exato: [ { "pergunta": "...", "opcoes": ["A", "B", "C", "D"], "resposta_correta": "A" } ] Não inclua ` + "```json" + ` ou qualquer outro texto antes ou depois do array JSON.`
)

// Character ceilings for the body text. Measured in characters, not tokens;
// the cut is a plain prefix with no sentence-boundary awareness.
const (
	guestURLCharLimit = 20000
	defaultCharLimit  = 30000
)

// Instruction returns the fixed system instruction for the template.
func (t Template) Instruction() string {
	switch t {
	case TemplateGuestURL:
		return guestURLInstruction
	case TemplateAuthenticated:
		return authenticatedInstruction
	default:
		return guestFileInstruction
	}
}

// QuestionCount returns the number of questions the template asks for.
func (t Template) QuestionCount() int {
	if t == TemplateAuthenticated {
		return 7
	}
	return 5
}

// CharLimit returns the body-text character ceiling for the template.
func (t Template) CharLimit() int {
	if t == TemplateGuestURL {
		return guestURLCharLimit
	}
	return defaultCharLimit
}

func (t Template) String() string {
	switch t {
	case TemplateGuestFile:
		return "guest-file"
	case TemplateGuestURL:
		return "guest-url"
	case TemplateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// BuildPrompt renders the user prompt for one generation call, truncating the
// body text to the template's character ceiling.
func BuildPrompt(text string, tpl Template) string {
	return fmt.Sprintf("Analise o seguinte texto e gere %d perguntas de múltipla escolha:\n\n%s",
		tpl.QuestionCount(), truncate(text, tpl.CharLimit()))
}

// truncate cuts s to at most limit characters without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
