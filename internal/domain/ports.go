package domain

import "context"

// RecipeStore is the ordered collection behind the recipe book. Only an
// in-memory implementation exists; the interface keeps the book free of
// storage details. Implementations copy records on the way in and out.
type RecipeStore interface {
	Append(ctx context.Context, r *Recipe) error
	All(ctx context.Context) ([]*Recipe, error)
	Len(ctx context.Context) int
	// Index returns the position of the first recipe matching pred, or -1.
	Index(ctx context.Context, pred func(*Recipe) bool) int
	At(ctx context.Context, i int) (*Recipe, error)
	Replace(ctx context.Context, i int, r *Recipe) error
	RemoveAt(ctx context.Context, i int) (*Recipe, error)
}

// CommandParser converts raw user input into structured commands.
type CommandParser interface {
	Parse(ctx context.Context, input string) (*Command, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout or wrap another notifier with an audible alert.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
