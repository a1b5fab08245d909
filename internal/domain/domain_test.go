package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorMatching(t *testing.T) {
	err := fmt.Errorf("adding recipe: %w", &ValidationError{Field: "name", Reason: "taken", Err: ErrAlreadyExists})

	if !errors.Is(err, ErrValidation) {
		t.Error("expected ErrValidation")
	}
	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("expected ErrAlreadyExists")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("unexpected ErrNotFound")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("expected a *ValidationError")
	}
	if verr.Field != "name" {
		t.Errorf("field = %q, want name", verr.Field)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{Invalid("scale factor", "must be a positive number"), "invalid scale factor: must be a positive number"},
		{&ValidationError{Reason: "empty"}, "invalid input: empty"},
		{&NotFoundError{Name: "Stew"}, `recipe "Stew" not found`},
		{&NotFoundError{Name: "Stew", Empty: true}, "no recipes found"},
		{&NotFoundError{}, "no recipes found"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
	if !errors.Is(&NotFoundError{Name: "x"}, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
}

func TestNewIngredientPinsOriginal(t *testing.T) {
	ing := NewIngredient(IngredientInput{Name: "Carrot", Quantity: 2, Unit: "cup", Calories: 50, FoodGroup: "veg"})
	if ing.OriginalQuantity != 2 || ing.Quantity != 2 {
		t.Errorf("got quantity %v original %v, want 2 and 2", ing.Quantity, ing.OriginalQuantity)
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := &Recipe{
		Name:        "Soup",
		Ingredients: []Ingredient{{Name: "Carrot", Quantity: 2, OriginalQuantity: 2}},
		Steps:       []string{"Boil."},
		ScaleFactor: DefaultScaleFactor,
	}
	c := r.Clone()
	c.Ingredients[0].Quantity = 8
	c.Steps[0] = "Fry."

	if r.Ingredients[0].Quantity != 2 || r.Steps[0] != "Boil." {
		t.Error("mutating the clone changed the original")
	}
	if (*Recipe)(nil).Clone() != nil {
		t.Error("nil clone should be nil")
	}
}

func TestCommandTypeString(t *testing.T) {
	if CommandScale.String() == CommandReset.String() {
		t.Error("command names should differ")
	}
	if CommandUnknown.String() == "" {
		t.Error("unknown command should still have a name")
	}
}
