package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

func (e *Engine) showMenu() {
	e.out.PrintStep("Recipe Book")
	e.out.PrintInstruction("1. Enter a new recipe        (add)")
	e.out.PrintInstruction("2. Display recipes           (list, view <name>)")
	e.out.PrintInstruction("3. Scale a recipe            (scale <name>)")
	e.out.PrintInstruction("4. Reset quantities          (reset <name>)")
	e.out.PrintInstruction("5. Clear a recipe            (clear <name>)")
	e.out.PrintInstruction("6. Calculate recipe calories (calories <name>)")
	e.out.PrintInstruction("7. Exit                      (quit)")
	e.out.PrintHint("Type 'cancel' at any prompt to abandon the current command.")
	e.out.Println("")
}

func (e *Engine) showRecipe(r *domain.Recipe) {
	e.out.PrintStep(fmt.Sprintf("=== %s ===", r.Name))
	if r.ScaleFactor != domain.DefaultScaleFactor {
		e.out.PrintHint("Scale factor: " + formatQuantity(r.ScaleFactor))
	}
	e.showIngredients(r)
	e.out.PrintStep("Steps:")
	for i, s := range r.Steps {
		e.out.PrintInstruction(fmt.Sprintf("%d. %s", i+1, s))
	}
}

func (e *Engine) showIngredients(r *domain.Recipe) {
	e.out.PrintStep("Ingredients:")
	for i, ing := range r.Ingredients {
		e.out.PrintInstruction(ingredientLine(i+1, ing))
	}
}

// ingredientLine renders "1. Carrot - 2 cup (veg, 50 kcal)".
func ingredientLine(n int, ing domain.Ingredient) string {
	line := fmt.Sprintf("%d. %s - %s", n, ing.Name, formatQuantity(ing.Quantity))
	if ing.Unit != "" {
		line += " " + ing.Unit
	}
	if ing.FoodGroup != "" {
		return line + fmt.Sprintf(" (%s, %d kcal)", ing.FoodGroup, ing.Calories)
	}
	return line + fmt.Sprintf(" (%d kcal)", ing.Calories)
}

// formatQuantity prints up to four decimals without trailing zeros, so
// 2 prints as "2" and a third of a cup as "0.3333".
func formatQuantity(q float64) string {
	return strconv.FormatFloat(math.Round(q*1e4)/1e4, 'f', -1, 64)
}
