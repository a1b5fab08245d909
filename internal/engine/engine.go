// Package engine dispatches parsed commands to the recipe book. It reads
// user input from a channel and writes through a Printer, so it runs the
// same under the terminal UI and in tests.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
)

// Printer renders output lines. display.UI and display.Plain satisfy it.
type Printer interface {
	Println(a ...interface{})
	PrintChat(text string)
	PrintStep(text string)
	PrintInstruction(text string)
	PrintHint(text string)
	PrintUrgent(text string)
}

// Status is a snapshot pushed to the status hook after every command.
type Status struct {
	Recipes    int
	LastAction string
}

// Option configures the engine.
type Option func(*Engine)

// WithStatusHook registers fn to receive a Status after every command.
func WithStatusHook(fn func(Status)) Option {
	return func(e *Engine) {
		e.onStatus = fn
	}
}

// Engine runs the command loop. It owns the book; nothing else may call
// into the book while Run is active.
type Engine struct {
	book     *recipe.Book
	parser   domain.CommandParser
	notifier domain.Notifier
	out      Printer
	input    <-chan string
	log      *logger.Logger
	onStatus func(Status)
}

// New creates an engine reading input lines from input.
func New(book *recipe.Book, parser domain.CommandParser, notifier domain.Notifier, out Printer, input <-chan string, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		book:     book,
		parser:   parser,
		notifier: notifier,
		out:      out,
		input:    input,
		log:      log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run shows the menu and processes commands until the user exits
// (returns nil), the input closes (domain.ErrInputClosed) or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.showMenu()
	e.publish(ctx, "ready")

	for {
		line, err := e.next(ctx)
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmd, err := e.parser.Parse(ctx, line)
		if err != nil {
			e.log.Error("parsing input: %v", err)
			continue
		}

		e.log.Debug("command: %s (payload=%q)", cmd.Type, cmd.Payload)
		quit, err := e.Handle(ctx, cmd)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Handle runs a single command. Book errors are reported to the user and
// swallowed; only input and context failures are returned. quit is true
// once the user asked to exit.
func (e *Engine) Handle(ctx context.Context, cmd *domain.Command) (quit bool, err error) {
	var action string
	switch cmd.Type {
	case domain.CommandEnter:
		action, err = e.enterRecipe(ctx)
	case domain.CommandList:
		action, err = e.listRecipes(ctx)
	case domain.CommandView:
		action, err = e.viewRecipe(ctx, cmd.Payload)
	case domain.CommandScale:
		action, err = e.scaleRecipe(ctx, cmd.Payload)
	case domain.CommandReset:
		action, err = e.resetQuantities(ctx, cmd.Payload)
	case domain.CommandClear:
		action, err = e.clearRecipe(ctx, cmd.Payload)
	case domain.CommandCalories:
		action, err = e.totalCalories(ctx, cmd.Payload)
	case domain.CommandHelp:
		e.showMenu()
	case domain.CommandExit:
		e.out.PrintChat("Goodbye!")
		return true, nil
	default:
		e.out.PrintUrgent(fmt.Sprintf("Invalid choice %q. Enter a number from the menu, or 'help'.", cmd.Payload))
	}

	switch {
	case err == nil:
	case isInputErr(err):
		return false, err
	case errors.Is(err, errCancelled):
		e.out.PrintHint("Cancelled.")
	default:
		e.reportError(err)
	}

	if action != "" {
		e.publish(ctx, action)
	}
	return false, nil
}

func (e *Engine) reportError(err error) {
	var nf *domain.NotFoundError
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &nf) && nf.Empty:
		e.out.PrintUrgent("No recipe found. Please enter a recipe and try again.")
	case errors.As(err, &nf):
		e.out.PrintUrgent(fmt.Sprintf("Recipe %q not found.", nf.Name))
	case errors.As(err, &verr):
		e.out.PrintUrgent(capitalize(verr.Error()) + ".")
	default:
		e.log.Error("command failed: %v", err)
		e.out.PrintUrgent(fmt.Sprintf("Error: %v", err))
	}
}

func (e *Engine) publish(ctx context.Context, action string) {
	if e.onStatus == nil {
		return
	}
	e.onStatus(Status{Recipes: e.book.Len(ctx), LastAction: action})
}

// ── Handlers ─────────────────────────────────────────────────────

// maxEntries caps the ingredient and step counts of a single recipe.
const maxEntries = 100

var countComplaint = fmt.Sprintf("Please enter a whole number from 1 to %d.", maxEntries)

func (e *Engine) enterRecipe(ctx context.Context) (string, error) {
	name, err := e.askNonEmpty(ctx, "Enter the name of the recipe:")
	if err != nil {
		return "", err
	}

	count, err := e.askInt(ctx, "Enter the number of ingredients:", 1, maxEntries, countComplaint)
	if err != nil {
		return "", err
	}

	ingredients := make([]domain.IngredientInput, 0, count)
	for i := 1; i <= count; i++ {
		in, err := e.askIngredient(ctx, i)
		if err != nil {
			return "", err
		}
		ingredients = append(ingredients, in)
	}

	count, err = e.askInt(ctx, "Enter the number of steps:", 1, maxEntries, countComplaint)
	if err != nil {
		return "", err
	}

	steps := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		s, err := e.askNonEmpty(ctx, fmt.Sprintf("Enter the description for step %d:", i))
		if err != nil {
			return "", err
		}
		steps = append(steps, s)
	}

	r, err := e.book.AddRecipe(ctx, name, ingredients, steps)
	if err != nil {
		return "", err
	}
	e.notify(ctx, "Recipe added successfully.")
	return "added " + r.Name, nil
}

func (e *Engine) askIngredient(ctx context.Context, i int) (domain.IngredientInput, error) {
	var in domain.IngredientInput
	var err error

	if in.Name, err = e.askNonEmpty(ctx, fmt.Sprintf("Enter the name of ingredient %d:", i)); err != nil {
		return in, err
	}
	if in.Quantity, err = e.askFloat(ctx, fmt.Sprintf("Enter the quantity of ingredient %d:", i),
		func(f float64) bool { return f >= 0 },
		"Please enter a number that is zero or more."); err != nil {
		return in, err
	}
	if in.Unit, err = e.ask(ctx, fmt.Sprintf("Enter the unit of measurement for ingredient %d:", i)); err != nil {
		return in, err
	}
	if in.Calories, err = e.askInt(ctx, fmt.Sprintf("Enter the number of calories for ingredient %d:", i), 0, math.MaxInt32,
		fmt.Sprintf("Invalid input for the number of calories of ingredient %d. Please enter a whole number that is zero or more.", i)); err != nil {
		return in, err
	}
	if in.FoodGroup, err = e.ask(ctx, fmt.Sprintf("Enter the food group for ingredient %d:", i)); err != nil {
		return in, err
	}
	return in, nil
}

func (e *Engine) listRecipes(ctx context.Context) (string, error) {
	names, err := e.book.ListNames(ctx)
	if err != nil {
		return "", err
	}

	e.out.PrintStep("Recipes:")
	for _, n := range names {
		e.out.PrintInstruction(n)
	}
	e.out.Println("")

	name, err := e.ask(ctx, "Enter the name of the recipe you want to select (blank to skip):")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "listed", nil
	}
	return e.viewRecipe(ctx, name)
}

func (e *Engine) viewRecipe(ctx context.Context, name string) (string, error) {
	name, err := e.recipeName(ctx, name, "Enter the name of the recipe you want to select:")
	if err != nil {
		return "", err
	}

	r, err := e.book.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	e.showRecipe(r)
	return "viewed " + r.Name, nil
}

func (e *Engine) scaleRecipe(ctx context.Context, name string) (string, error) {
	name, err := e.recipeName(ctx, name, "Enter the name of the recipe you want to scale:")
	if err != nil {
		return "", err
	}

	// Look the recipe up first so a typo doesn't cost a factor prompt.
	current, err := e.book.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	e.out.PrintHint(fmt.Sprintf("Current scaling factor for %s: %s", current.Name, formatQuantity(current.ScaleFactor)))

	factor, err := e.askFloat(ctx, "Enter the scaling factor (0.5, 2, 3, etc.):",
		func(f float64) bool { return f > 0 },
		"Invalid input. Please enter a positive number.")
	if err != nil {
		return "", err
	}

	r, err := e.book.ScaleRecipe(ctx, name, factor)
	if err != nil {
		return "", err
	}
	e.notify(ctx, fmt.Sprintf("Recipe '%s' scaled successfully.", r.Name))
	e.showIngredients(r)
	return fmt.Sprintf("scaled %s x%s", r.Name, formatQuantity(factor)), nil
}

func (e *Engine) resetQuantities(ctx context.Context, name string) (string, error) {
	name, err := e.recipeName(ctx, name, "Enter the name of the recipe you want to reset quantities for:")
	if err != nil {
		return "", err
	}

	r, err := e.book.ResetQuantities(ctx, name)
	if err != nil {
		return "", err
	}
	e.notify(ctx, fmt.Sprintf("Quantities for recipe '%s' have been reset to their original values.", r.Name))
	return "reset " + r.Name, nil
}

func (e *Engine) clearRecipe(ctx context.Context, name string) (string, error) {
	name, err := e.recipeName(ctx, name, "Enter the name of the recipe you want to clear:")
	if err != nil {
		return "", err
	}

	r, err := e.book.DeleteRecipe(ctx, name)
	if err != nil {
		return "", err
	}
	e.notify(ctx, fmt.Sprintf("Recipe '%s' has been removed from the recipe list.", r.Name))
	return "removed " + r.Name, nil
}

func (e *Engine) totalCalories(ctx context.Context, name string) (string, error) {
	name, err := e.recipeName(ctx, name, "Enter the name of the recipe:")
	if err != nil {
		return "", err
	}

	report, err := e.book.TotalCalories(ctx, name)
	if err != nil {
		return "", err
	}

	e.out.PrintStep(fmt.Sprintf("Total calories of %s: %d", report.Recipe, report.Total))
	groups := make([]string, 0, len(report.ByFoodGroup))
	for g := range report.ByFoodGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		label := g
		if label == "" {
			label = "(no food group)"
		}
		e.out.PrintHint(fmt.Sprintf("%s: %d", label, report.ByFoodGroup[g]))
	}

	if report.ExceedsThreshold {
		msg := fmt.Sprintf("This recipe exceeds %d calories.", report.Threshold)
		if err := e.notifier.NotifyUrgent(ctx, msg); err != nil {
			e.log.Warn("urgent notification failed: %v", err)
		}
	}
	return fmt.Sprintf("%s: %d kcal", report.Recipe, report.Total), nil
}

// recipeName returns payload when the command already named a recipe,
// otherwise prompts for one. An empty book short-circuits before the
// prompt.
func (e *Engine) recipeName(ctx context.Context, payload, question string) (string, error) {
	if e.book.Len(ctx) == 0 {
		return "", &domain.NotFoundError{Name: payload, Empty: true}
	}
	if payload != "" {
		return payload, nil
	}
	return e.askNonEmpty(ctx, question)
}

func (e *Engine) notify(ctx context.Context, msg string) {
	if err := e.notifier.Notify(ctx, msg); err != nil {
		e.log.Warn("notification failed: %v", err)
	}
}

func isInputErr(err error) bool {
	return errors.Is(err, domain.ErrInputClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
