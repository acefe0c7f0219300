package care

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pet-care-api/internal/model"
)

func TestGenerateRecipes(t *testing.T) {
	t.Parallel()

	t.Run("requires pet type", func(t *testing.T) {
		_, err := GenerateRecipes(model.RecipeCriteria{})
		require.Error(t, err)
	})

	t.Run("without conditions returns all species matches", func(t *testing.T) {
		recipes, err := GenerateRecipes(model.RecipeCriteria{PetType: "dog"})
		require.NoError(t, err)
		require.Len(t, recipes, 3)
		for _, recipe := range recipes {
			require.Contains(t, recipe.PetTypes, "dog")
		}
	})

	t.Run("filters by health condition", func(t *testing.T) {
		recipes, err := GenerateRecipes(model.RecipeCriteria{
			PetType:          "dog",
			HealthConditions: []string{"weight_management"},
		})
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		require.Equal(t, "Beef & Sweet Potato Bowl", recipes[0].Name)
	})

	t.Run("rabbit gets the veggie catalog", func(t *testing.T) {
		recipes, err := GenerateRecipes(model.RecipeCriteria{PetType: "rabbit"})
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		require.Equal(t, "Garden Veggie Medley", recipes[0].Name)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		recipes, err := GenerateRecipes(model.RecipeCriteria{PetType: "fish"})
		require.NoError(t, err)
		require.Empty(t, recipes)
	})
}
