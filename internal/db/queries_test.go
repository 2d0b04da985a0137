package db

import (
	"testing"

	"docquiz/internal/models"

	"github.com/google/uuid"
)

func TestBuildQuestionRows(t *testing.T) {
	quizID := uuid.New()

	t.Run("OrdemIsInputOrder", func(t *testing.T) {
		questions := []models.Question{
			{Pergunta: "P1", Opcoes: []string{"A", "B"}, RespostaCorreta: "A"},
			{Pergunta: "P2", Opcoes: []string{"C", "D"}, RespostaCorreta: "D"},
			{Pergunta: "P3", Opcoes: []string{"E", "F"}, RespostaCorreta: "E"},
		}

		rows := BuildQuestionRows(quizID, questions)
		if len(rows) != len(questions) {
			t.Fatalf("expected %d rows, got %d", len(questions), len(rows))
		}
		for i, row := range rows {
			if row.Ordem != int32(i+1) {
				t.Errorf("row %d: ordem = %d, want %d", i, row.Ordem, i+1)
			}
			if row.QuizID != quizID {
				t.Errorf("row %d: quiz_id = %s, want %s", i, row.QuizID, quizID)
			}
			if row.Pergunta != questions[i].Pergunta {
				t.Errorf("row %d: pergunta = %q, want %q", i, row.Pergunta, questions[i].Pergunta)
			}
		}
	})

	t.Run("ModelIDIsIgnored", func(t *testing.T) {
		// Whatever id the model emitted must not influence ordem.
		ninetynine := 99
		seven := 7
		questions := []models.Question{
			{ID: &ninetynine, Pergunta: "P1", Opcoes: []string{"A", "B"}, RespostaCorreta: "A"},
			{ID: &seven, Pergunta: "P2", Opcoes: []string{"C", "D"}, RespostaCorreta: "C"},
		}

		rows := BuildQuestionRows(quizID, questions)
		if rows[0].Ordem != 1 || rows[1].Ordem != 2 {
			t.Errorf("ordem must come from slice position, got %d, %d", rows[0].Ordem, rows[1].Ordem)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if rows := BuildQuestionRows(quizID, nil); len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}
