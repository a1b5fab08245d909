package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

func newRecipe(name string) *domain.Recipe {
	return &domain.Recipe{
		Name: name,
		Ingredients: []domain.Ingredient{
			domain.NewIngredient(domain.IngredientInput{Name: "salt", Quantity: 1, Unit: "pinch"}),
		},
		Steps:       []string{"Season."},
		ScaleFactor: domain.DefaultScaleFactor,
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	// Append.
	for _, name := range []string{"Soup", "Bread", "Stew"} {
		if err := store.Append(ctx, newRecipe(name)); err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}
	if store.Len(ctx) != 3 {
		t.Fatalf("expected 3 recipes, got %d", store.Len(ctx))
	}

	// Insertion order is kept.
	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	for i, want := range []string{"Soup", "Bread", "Stew"} {
		if all[i].Name != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, all[i].Name)
		}
	}

	// Index.
	idx := store.Index(ctx, func(r *domain.Recipe) bool { return strings.EqualFold(r.Name, "bread") })
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if store.Index(ctx, func(r *domain.Recipe) bool { return false }) != -1 {
		t.Fatal("expected -1 for no match")
	}

	// Replace.
	updated := newRecipe("Bread")
	updated.ScaleFactor = 2
	if err := store.Replace(ctx, 1, updated); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err := store.At(ctx, 1)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if got.ScaleFactor != 2 {
		t.Fatalf("expected scale factor 2, got %v", got.ScaleFactor)
	}

	// RemoveAt.
	removed, err := store.RemoveAt(ctx, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Name != "Soup" {
		t.Fatalf("expected Soup removed, got %s", removed.Name)
	}
	all, _ = store.All(ctx)
	if len(all) != 2 || all[0].Name != "Bread" || all[1].Name != "Stew" {
		t.Fatalf("unexpected remaining recipes: %+v", all)
	}
}

func TestMemoryStoreOutOfRange(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	if _, err := store.At(ctx, 0); err != domain.ErrNotFound {
		t.Fatalf("at: expected ErrNotFound, got %v", err)
	}
	if err := store.Replace(ctx, -1, newRecipe("x")); err != domain.ErrNotFound {
		t.Fatalf("replace: expected ErrNotFound, got %v", err)
	}
	if _, err := store.RemoveAt(ctx, 3); err != domain.ErrNotFound {
		t.Fatalf("remove: expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDoesNotAlias(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	in := newRecipe("Soup")
	if err := store.Append(ctx, in); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Mutating the caller's copy must not reach the store.
	in.Ingredients[0].Quantity = 99
	in.Steps[0] = "changed"

	out, err := store.At(ctx, 0)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if out.Ingredients[0].Quantity != 1 || out.Steps[0] != "Season." {
		t.Fatalf("store was mutated through caller copy: %+v", out)
	}

	// Nor must mutating a returned copy.
	out.Ingredients[0].Quantity = 42
	again, _ := store.At(ctx, 0)
	if again.Ingredients[0].Quantity != 1 {
		t.Fatalf("store was mutated through returned copy: %v", again.Ingredients[0].Quantity)
	}
}

func TestMemoryStoreRemoveAtClearsTail(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()
	for _, name := range []string{"Soup", "Bread", "Stew"} {
		if err := store.Append(ctx, newRecipe(name)); err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}

	if _, err := store.RemoveAt(ctx, 0); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// The vacated slot past the new length must not keep the record alive.
	backing := store.recipes[:cap(store.recipes)]
	for i := len(store.recipes); i < len(backing); i++ {
		if backing[i] != nil {
			t.Errorf("slot %d still holds %q", i, backing[i].Name)
		}
	}
	if store.Len(ctx) != 2 {
		t.Fatalf("expected 2 recipes, got %d", store.Len(ctx))
	}
	first, _ := store.At(ctx, 0)
	if first.Name != "Bread" {
		t.Errorf("expected Bread first, got %q", first.Name)
	}
}
