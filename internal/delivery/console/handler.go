// Package console runs the quiz as a line-based dialogue over a reader and a writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/hiragana-quiz/internal/domain/entities"
)

type QuizService interface {
	NextQuestion() (*entities.Question, error)
	AnswerQuestion(selectedIndex int) (*entities.QuizAnswer, error)
	Reset()
	Score() int
	Finished() bool
}

type Handler struct {
	in          *bufio.Reader
	out         io.Writer
	logger      *zap.Logger
	quizService QuizService

	pending chan readResult // read in flight, if any
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	quizService QuizService,
) *Handler {
	return &Handler{
		in:          bufio.NewReader(in),
		out:         out,
		logger:      logger,
		quizService: quizService,
	}
}

// Run plays quiz sessions until the user declines a restart or the input ends.
// Closed input and context cancellation are normal terminations and return nil.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("console handler started")
	defer h.logger.Info("console handler stopped")

	for {
		if err := h.playSession(ctx); err != nil {
			if isTermination(err) {
				h.logger.Debug("input ended during session", zap.Error(err))
				h.println("")
				h.println(msgFarewell)
				return nil
			}
			return err
		}

		h.renderSummary(h.quizService.Score())

		restart, err := h.promptRestart(ctx)
		if err != nil && !isTermination(err) {
			return err
		}
		if !restart {
			h.println(msgFarewell)
			return nil
		}

		h.quizService.Reset()
	}
}

// playSession asks questions until the current session is finished.
func (h *Handler) playSession(ctx context.Context) error {
	for !h.quizService.Finished() {
		q, err := h.quizService.NextQuestion()
		if err != nil {
			return fmt.Errorf("next question: %w", err)
		}

		h.renderQuestion(q)

		choice, err := h.readChoice(ctx, len(q.Options))
		if err != nil {
			return err
		}

		qa, err := h.quizService.AnswerQuestion(choice - 1)
		if err != nil {
			return fmt.Errorf("answer question: %w", err)
		}

		h.renderAnswer(q, qa)
		h.renderScore(h.quizService.Score())
	}

	return nil
}

// promptRestart asks whether to start over. Anything but "yes" declines.
func (h *Handler) promptRestart(ctx context.Context) (bool, error) {
	h.print(msgRestartPrompt)

	line, err := h.readLine(ctx)
	if err != nil {
		h.println("")
		return false, err
	}

	return IsRestartConfirmed(line), nil
}

func isTermination(err error) bool {
	return errors.Is(err, ErrInputClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
