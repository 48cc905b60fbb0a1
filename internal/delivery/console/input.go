package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrNotANumber       = errors.New("input is not a number")
	ErrChoiceOutOfRange = errors.New("choice is out of range")
	ErrInputClosed      = errors.New("input closed")
)

// ParseChoice parses a 1-based option number and checks it against optionCount.
// It returns ErrNotANumber for non-numeric input and ErrChoiceOutOfRange for
// numbers outside [1, optionCount].
func ParseChoice(input string, optionCount int) (int, error) {
	input = strings.TrimSpace(input)

	n, err := strconv.Atoi(input)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", input, ErrChoiceOutOfRange)
		}
		return 0, fmt.Errorf("%q: %w", input, ErrNotANumber)
	}

	if n < 1 || n > optionCount {
		return 0, fmt.Errorf("%d not in [1, %d]: %w", n, optionCount, ErrChoiceOutOfRange)
	}

	return n, nil
}

// IsRestartConfirmed reports whether the answer to the restart prompt is "yes".
func IsRestartConfirmed(input string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == restartConfirmWord
}

type readResult struct {
	line string
	err  error
}

// readLine reads one line of input without the trailing newline.
// A final line without a newline is returned as is. The read itself runs
// in a goroutine so that cancellation does not wait for the user; a read
// abandoned by cancellation is picked up by the next call.
func (h *Handler) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if h.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := h.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		h.pending = ch
	}

	var res readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-h.pending:
		h.pending = nil
	}

	// A line typed after cancellation is not an answer.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := res.line, res.err
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readChoice prompts until the user enters a valid option number.
func (h *Handler) readChoice(ctx context.Context, optionCount int) (int, error) {
	for {
		h.print(msgChoicePrompt)

		line, err := h.readLine(ctx)
		if err != nil {
			return 0, err
		}

		choice, err := ParseChoice(line, optionCount)
		switch {
		case err == nil:
			return choice, nil
		case errors.Is(err, ErrNotANumber):
			h.println(msgInvalidInput)
		case errors.Is(err, ErrChoiceOutOfRange):
			h.printf(msgInvalidChoice+"\n", optionCount)
		default:
			return 0, err
		}

		h.logger.Debug("invalid choice", zap.String("input", line), zap.Error(err))
	}
}
