package console

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/hiragana-quiz/internal/domain/entities"
)

// renderQuestion prints the prompt and the numbered options.
func (h *Handler) renderQuestion(q *entities.Question) {
	h.println("")
	h.printf(msgQuestion+"\n", q.Romaji)
	for i, opt := range q.Options {
		h.printf(msgOption+"\n", i+1, opt)
	}
}

// renderAnswer prints the feedback for an answer. On a wrong answer the
// options are listed again with the correct one marked.
func (h *Handler) renderAnswer(q *entities.Question, qa *entities.QuizAnswer) {
	if qa.IsCorrect {
		h.println(msgCorrect)
		return
	}

	h.printf(msgWrong+"\n", qa.CorrectAnswer)
	for i, opt := range q.Options {
		format := msgOption
		if i == q.CorrectIndex {
			format = msgCorrectOption
		}
		h.printf(format+"\n", i+1, opt)
	}
}

func (h *Handler) renderScore(score int) {
	h.printf(msgScore+"\n", score, entities.QuestionsPerSession)
}

func (h *Handler) renderSummary(score int) {
	h.printf(msgQuizCompleted+"\n", score, entities.QuestionsPerSession)
}

func (h *Handler) print(s string) {
	h.write(s)
}

func (h *Handler) println(s string) {
	h.write(s + "\n")
}

func (h *Handler) printf(format string, args ...any) {
	h.write(fmt.Sprintf(format, args...))
}

func (h *Handler) write(s string) {
	if _, err := io.WriteString(h.out, s); err != nil {
		h.logger.Error("failed to write console output", zap.Error(err))
	}
}
