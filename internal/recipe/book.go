// Package recipe implements the recipe book: the manager that owns the
// recipe collection and every operation on it.
package recipe

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// DefaultCalorieThreshold is the total above which a recipe is flagged.
const DefaultCalorieThreshold = 300

// Option configures the book.
type Option func(*Book)

// WithCalorieThreshold sets the total above which TotalCalories flags a
// recipe. The comparison is strict: a total equal to n is not flagged.
func WithCalorieThreshold(n int) Option {
	return func(b *Book) {
		b.threshold = n
	}
}

// WithUniqueNames makes AddRecipe reject a name that already exists,
// compared case-insensitively. Without it duplicates are kept and lookups
// return the first one.
func WithUniqueNames() Option {
	return func(b *Book) {
		b.uniqueNames = true
	}
}

// WithScaleFactorReset makes ResetQuantities restore the scale factor to
// 1 along with the quantities.
func WithScaleFactorReset() Option {
	return func(b *Book) {
		b.resetScale = true
	}
}

// WithOrdinalOrder sorts listed names byte-wise instead of by collation,
// so "Banana Bread" sorts before "apple pie".
func WithOrdinalOrder() Option {
	return func(b *Book) {
		b.collator = nil
	}
}

// WithLocale picks the collation language used to order listed names.
func WithLocale(tag language.Tag) Option {
	return func(b *Book) {
		b.collator = collate.New(tag)
	}
}

// Book manages recipes held in a RecipeStore. It is not safe for
// concurrent use; one goroutine owns it.
type Book struct {
	store       domain.RecipeStore
	log         *logger.Logger
	threshold   int
	uniqueNames bool
	resetScale  bool
	collator    *collate.Collator // nil means ordinal order
}

// NewBook creates a recipe book over the given store.
func NewBook(store domain.RecipeStore, log *logger.Logger, opts ...Option) *Book {
	b := &Book{
		store:     store,
		log:       log,
		threshold: DefaultCalorieThreshold,
		collator:  collate.New(language.English),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Threshold returns the calorie warning threshold.
func (b *Book) Threshold() int { return b.threshold }

// Len returns the number of recipes in the book.
func (b *Book) Len(ctx context.Context) int { return b.store.Len(ctx) }

// AddRecipe validates the input, builds a recipe with a scale factor of 1
// and appends it to the book.
func (b *Book) AddRecipe(ctx context.Context, name string, ingredients []domain.IngredientInput, steps []string) (*domain.Recipe, error) {
	if err := b.validate(ctx, name, ingredients, steps); err != nil {
		b.log.Debug("rejected recipe %q: %v", name, err)
		return nil, err
	}

	r := &domain.Recipe{
		Name:        name,
		Ingredients: make([]domain.Ingredient, 0, len(ingredients)),
		Steps:       append([]string(nil), steps...),
		ScaleFactor: domain.DefaultScaleFactor,
	}
	for _, in := range ingredients {
		r.Ingredients = append(r.Ingredients, domain.NewIngredient(in))
	}

	if err := b.store.Append(ctx, r); err != nil {
		return nil, fmt.Errorf("storing recipe: %w", err)
	}

	b.log.Info("recipe added: %s (%d ingredients, %d steps)", name, len(r.Ingredients), len(r.Steps))
	return r.Clone(), nil
}

func (b *Book) validate(ctx context.Context, name string, ingredients []domain.IngredientInput, steps []string) error {
	if strings.TrimSpace(name) == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if len(ingredients) < 1 {
		return domain.Invalid("ingredients", "at least one ingredient is required")
	}
	if len(steps) < 1 {
		return domain.Invalid("steps", "at least one step is required")
	}
	for i, in := range ingredients {
		field := fmt.Sprintf("ingredient %d", i+1)
		if in.Quantity < 0 || math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) {
			return domain.Invalid(field+" quantity", "must be a non-negative number")
		}
		if in.Calories < 0 {
			return domain.Invalid(field+" calories", "must not be negative")
		}
	}
	for i, s := range steps {
		if strings.TrimSpace(s) == "" {
			return domain.Invalid(fmt.Sprintf("step %d", i+1), "must not be empty")
		}
	}
	if b.uniqueNames && b.store.Index(ctx, nameMatcher(name)) >= 0 {
		return &domain.ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("a recipe called %q already exists", name),
			Err:    domain.ErrAlreadyExists,
		}
	}
	return nil
}

// ListNames returns every recipe name in display order. An empty book is
// reported as a NotFoundError rather than an empty list.
func (b *Book) ListNames(ctx context.Context) ([]string, error) {
	all, err := b.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	if len(all) == 0 {
		return nil, &domain.NotFoundError{Empty: true}
	}

	names := make([]string, 0, len(all))
	for _, r := range all {
		names = append(names, r.Name)
	}
	b.sortNames(names)

	b.log.Debug("listing recipes, count=%d", len(names))
	return names, nil
}

func (b *Book) sortNames(names []string) {
	if b.collator == nil {
		sort.Strings(names)
		return
	}
	sort.SliceStable(names, func(i, j int) bool {
		return b.collator.CompareString(names[i], names[j]) < 0
	})
}

// FindByName returns a copy of the first recipe whose name matches,
// ignoring case.
func (b *Book) FindByName(ctx context.Context, name string) (*domain.Recipe, error) {
	_, r, err := b.locate(ctx, name)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ScaleRecipe multiplies every ingredient's current quantity by factor
// and records factor as the recipe's scale factor. Scaling twice by 2
// leaves quantities at four times their original value.
func (b *Book) ScaleRecipe(ctx context.Context, name string, factor float64) (*domain.Recipe, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, domain.Invalid("scale factor", "must be a positive number")
	}

	i, r, err := b.locate(ctx, name)
	if err != nil {
		return nil, err
	}

	for j := range r.Ingredients {
		r.Ingredients[j].Quantity *= factor
	}
	r.ScaleFactor = factor

	if err := b.store.Replace(ctx, i, r); err != nil {
		return nil, fmt.Errorf("saving scaled recipe: %w", err)
	}

	b.log.Info("recipe scaled: %s x%g", r.Name, factor)
	return r, nil
}

// ResetQuantities restores every ingredient to its original quantity.
// The scale factor is left as is unless WithScaleFactorReset was given.
func (b *Book) ResetQuantities(ctx context.Context, name string) (*domain.Recipe, error) {
	i, r, err := b.locate(ctx, name)
	if err != nil {
		return nil, err
	}

	for j := range r.Ingredients {
		r.Ingredients[j].Quantity = r.Ingredients[j].OriginalQuantity
	}
	if b.resetScale {
		r.ScaleFactor = domain.DefaultScaleFactor
	}

	if err := b.store.Replace(ctx, i, r); err != nil {
		return nil, fmt.Errorf("saving reset recipe: %w", err)
	}

	b.log.Info("recipe reset: %s", r.Name)
	return r, nil
}

// DeleteRecipe removes the first recipe whose name matches and returns it.
func (b *Book) DeleteRecipe(ctx context.Context, name string) (*domain.Recipe, error) {
	i, _, err := b.locate(ctx, name)
	if err != nil {
		return nil, err
	}

	removed, err := b.store.RemoveAt(ctx, i)
	if err != nil {
		return nil, fmt.Errorf("removing recipe: %w", err)
	}

	b.log.Info("recipe removed: %s", removed.Name)
	return removed, nil
}

// TotalCalories sums the calories of every ingredient of the matching
// recipe and flags totals strictly above the threshold.
func (b *Book) TotalCalories(ctx context.Context, name string) (*domain.CalorieReport, error) {
	_, r, err := b.locate(ctx, name)
	if err != nil {
		return nil, err
	}

	report := &domain.CalorieReport{
		Recipe:      r.Name,
		Threshold:   b.threshold,
		ByFoodGroup: make(map[string]int),
	}
	for _, ing := range r.Ingredients {
		report.Total += ing.Calories
		report.ByFoodGroup[ing.FoodGroup] += ing.Calories
	}
	report.ExceedsThreshold = report.Total > b.threshold

	b.log.Debug("calories for %s: %d (threshold %d)", r.Name, report.Total, b.threshold)
	return report, nil
}

// locate finds the first recipe matching name and returns its position
// and a copy of it.
func (b *Book) locate(ctx context.Context, name string) (int, *domain.Recipe, error) {
	if b.store.Len(ctx) == 0 {
		return -1, nil, &domain.NotFoundError{Name: name, Empty: true}
	}

	i := b.store.Index(ctx, nameMatcher(name))
	if i < 0 {
		b.log.Debug("recipe not found: %s", name)
		return -1, nil, &domain.NotFoundError{Name: name}
	}

	r, err := b.store.At(ctx, i)
	if err != nil {
		return -1, nil, fmt.Errorf("loading recipe: %w", err)
	}
	return i, r, nil
}

func nameMatcher(name string) func(*domain.Recipe) bool {
	return func(r *domain.Recipe) bool {
		return strings.EqualFold(r.Name, name)
	}
}
