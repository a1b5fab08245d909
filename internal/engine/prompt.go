package engine

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// cancelWord aborts the prompt sequence of the current command.
const cancelWord = "cancel"

var errCancelled = errors.New("cancelled by user")

// next blocks for the next input line.
func (e *Engine) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-e.input:
		if !ok {
			return "", domain.ErrInputClosed
		}
		return line, nil
	}
}

// ask prints question and returns the trimmed answer. Typing "cancel"
// aborts the current command.
func (e *Engine) ask(ctx context.Context, question string) (string, error) {
	e.out.PrintChat(question)
	line, err := e.next(ctx)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, cancelWord) {
		return "", errCancelled
	}
	return line, nil
}

// askNonEmpty re-prompts until the answer is not blank.
func (e *Engine) askNonEmpty(ctx context.Context, question string) (string, error) {
	for {
		s, err := e.ask(ctx, question)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		e.out.PrintUrgent("A value is required.")
	}
}

// askInt re-prompts until the answer parses as an integer in [min, max].
func (e *Engine) askInt(ctx context.Context, question string, min, max int, complaint string) (int, error) {
	for {
		s, err := e.ask(ctx, question)
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(s)
		if perr == nil && n >= min && n <= max {
			return n, nil
		}
		e.log.Debug("rejected integer input %q", s)
		e.out.PrintUrgent(complaint)
	}
}

// askFloat re-prompts until the answer parses as a finite number that
// satisfies valid.
func (e *Engine) askFloat(ctx context.Context, question string, valid func(float64) bool, complaint string) (float64, error) {
	for {
		s, err := e.ask(ctx, question)
		if err != nil {
			return 0, err
		}
		f, perr := strconv.ParseFloat(s, 64)
		if perr == nil && !math.IsNaN(f) && !math.IsInf(f, 0) && valid(f) {
			return f, nil
		}
		e.log.Debug("rejected numeric input %q", s)
		e.out.PrintUrgent(complaint)
	}
}
