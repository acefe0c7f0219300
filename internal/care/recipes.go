package care

import (
	"pet-care-api/internal/model"
	"pet-care-api/pkg/apierror"
)

// recipeCatalog is the static recipe table. Generation is declared
// catalog selection filtered by species and health conditions.
var recipeCatalog = []model.Recipe{
	{
		Name:     "Chicken & Rice Delight",
		PetTypes: []string{"dog", "cat"},
		Ingredients: []model.RecipeIngredient{
			{Name: "Chicken Breast", Amount: "200g", Note: "Cooked and shredded"},
			{Name: "Brown Rice", Amount: "1 cup", Note: "Cooked"},
		},
		Instructions: []string{
			"Cook chicken thoroughly",
			"Prepare rice",
			"Mix ingredients together",
		},
		Nutrition:   model.RecipeNutrition{Calories: "350 kcal", Protein: "25g", Carbs: "45g", Fat: "8g"},
		CookingTime: 30,
		Difficulty:  "easy",
		SuitableFor: []string{"sensitive_stomach", "all"},
	},
	{
		Name:     "Beef & Sweet Potato Bowl",
		PetTypes: []string{"dog"},
		Ingredients: []model.RecipeIngredient{
			{Name: "Lean Ground Beef", Amount: "250g", Note: "Browned and drained"},
			{Name: "Sweet Potato", Amount: "1 medium", Note: "Boiled and mashed"},
			{Name: "Green Beans", Amount: "1/2 cup", Note: "Steamed and chopped"},
		},
		Instructions: []string{
			"Brown the beef and drain the fat",
			"Boil and mash the sweet potato",
			"Steam the green beans",
			"Combine everything and let cool before serving",
		},
		Nutrition:   model.RecipeNutrition{Calories: "420 kcal", Protein: "30g", Carbs: "35g", Fat: "14g"},
		CookingTime: 40,
		Difficulty:  "easy",
		SuitableFor: []string{"weight_management", "all"},
	},
	{
		Name:     "Salmon & Pumpkin Mash",
		PetTypes: []string{"dog", "cat"},
		Ingredients: []model.RecipeIngredient{
			{Name: "Salmon Fillet", Amount: "150g", Note: "Baked, skin and bones removed"},
			{Name: "Pumpkin Puree", Amount: "1/2 cup", Note: "Plain, unsweetened"},
		},
		Instructions: []string{
			"Bake the salmon until it flakes",
			"Remove skin and check for bones",
			"Mix with pumpkin puree and cool",
		},
		Nutrition:   model.RecipeNutrition{Calories: "300 kcal", Protein: "28g", Carbs: "12g", Fat: "16g"},
		CookingTime: 25,
		Difficulty:  "easy",
		SuitableFor: []string{"senior", "sensitive_stomach", "all"},
	},
	{
		Name:     "Garden Veggie Medley",
		PetTypes: []string{"rabbit"},
		Ingredients: []model.RecipeIngredient{
			{Name: "Romaine Lettuce", Amount: "2 leaves", Note: "Washed"},
			{Name: "Carrot", Amount: "1 small", Note: "Thinly sliced"},
			{Name: "Fresh Basil", Amount: "3 leaves"},
		},
		Instructions: []string{
			"Wash all produce thoroughly",
			"Slice the carrot thin",
			"Arrange and serve fresh",
		},
		Nutrition:   model.RecipeNutrition{Calories: "45 kcal", Protein: "2g", Carbs: "9g", Fat: "0g"},
		CookingTime: 5,
		Difficulty:  "easy",
		SuitableFor: []string{"all"},
	},
}

// GenerateRecipes filters the catalog by pet type and the requested
// health conditions. Without conditions every species match is
// returned.
func GenerateRecipes(criteria model.RecipeCriteria) ([]model.Recipe, error) {
	if criteria.PetType == "" {
		return nil, apierror.Validation("pet type is required", "criteria.pet_type")
	}

	matches := make([]model.Recipe, 0)
	for _, recipe := range recipeCatalog {
		if !containsString(recipe.PetTypes, criteria.PetType) {
			continue
		}
		if len(criteria.HealthConditions) > 0 && !suitableForAny(recipe, criteria.HealthConditions) {
			continue
		}
		matches = append(matches, recipe)
	}

	return matches, nil
}

func suitableForAny(recipe model.Recipe, conditions []string) bool {
	for _, tag := range recipe.SuitableFor {
		if containsString(conditions, tag) {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
