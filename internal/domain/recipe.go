// Package domain defines the core types and interfaces for the recipe book.
// All other packages depend on domain; domain depends on nothing.
package domain

// DefaultScaleFactor is the scale factor of a freshly entered recipe.
const DefaultScaleFactor = 1.0

// Recipe is a named collection of ingredients and preparation steps.
type Recipe struct {
	Name        string
	Ingredients []Ingredient
	Steps       []string
	// ScaleFactor is the last multiplier applied to the ingredient
	// quantities. It is overwritten, not compounded, on each scale.
	ScaleFactor float64
}

// Ingredient is a single line of a recipe.
type Ingredient struct {
	Name      string
	Quantity  float64
	Unit      string // "cup", "grams", "tablespoons", ""
	Calories  int
	FoodGroup string
	// OriginalQuantity is the quantity at creation time and the
	// target of a reset. Never changed after NewIngredient.
	OriginalQuantity float64
}

// IngredientInput is the user-supplied description of an ingredient,
// before it becomes part of a recipe.
type IngredientInput struct {
	Name      string
	Quantity  float64
	Unit      string
	Calories  int
	FoodGroup string
}

// NewIngredient builds an ingredient whose original quantity is pinned
// to the supplied quantity.
func NewIngredient(in IngredientInput) Ingredient {
	return Ingredient{
		Name:             in.Name,
		Quantity:         in.Quantity,
		Unit:             in.Unit,
		Calories:         in.Calories,
		FoodGroup:        in.FoodGroup,
		OriginalQuantity: in.Quantity,
	}
}

// Clone returns a deep copy of the recipe. The store hands out clones so
// nothing outside it can alias stored records.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	out := *r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Steps = append([]string(nil), r.Steps...)
	return &out
}

// CalorieReport is the result of a calorie total for one recipe.
type CalorieReport struct {
	Recipe           string
	Total            int
	Threshold        int
	ExceedsThreshold bool
	// ByFoodGroup holds per-group subtotals keyed by the food group
	// as entered.
	ByFoodGroup map[string]int
}
