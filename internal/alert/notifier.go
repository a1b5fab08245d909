package alert

import (
	"context"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Notifier = (*ChimingNotifier)(nil)
	_ Chimer          = (*Player)(nil)
)

// Chimer rings an audible alert without blocking.
type Chimer interface {
	Chime()
}

// ChimingNotifier wraps a text notifier and rings the chime on urgent
// messages. Normal messages pass through silently.
type ChimingNotifier struct {
	text  domain.Notifier
	chime Chimer
	log   *logger.Logger
}

// NewChimingNotifier creates a notifier that prints and, for urgent
// messages, chimes.
func NewChimingNotifier(text domain.Notifier, chime Chimer, log *logger.Logger) *ChimingNotifier {
	return &ChimingNotifier{
		text:  text,
		chime: chime,
		log:   log,
	}
}

func (n *ChimingNotifier) Notify(ctx context.Context, message string) error {
	return n.text.Notify(ctx, message)
}

// NotifyUrgent prints the message, then chimes.
func (n *ChimingNotifier) NotifyUrgent(ctx context.Context, message string) error {
	if err := n.text.NotifyUrgent(ctx, message); err != nil {
		return err
	}
	n.log.Debug("chime: %s", message)
	n.chime.Chime()
	return nil
}
