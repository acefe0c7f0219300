package care

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pet-care-api/internal/model"
)

func TestBaseWeight(t *testing.T) {
	t.Parallel()

	require.Equal(t, 25.0, BaseWeight("dog", "Labrador"))
	require.Equal(t, 20.0, BaseWeight("dog", "Unknown Breed"))
	require.Equal(t, 4.5, BaseWeight("cat", ""))
	require.Equal(t, 20.0, BaseWeight("hamster", "any"))
}

func TestCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{79.9, ConditionUnderweight},
		{80, ConditionIdeal},
		{100, ConditionIdeal},
		{100.1, ConditionOverweight},
		{120, ConditionOverweight},
		{120.1, ConditionObese},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, Condition(tc.score), "score %.1f", tc.score)
	}
}

func TestWeight(t *testing.T) {
	t.Parallel()

	t.Run("dog at species base weight scores ideal", func(t *testing.T) {
		weight := 20.0
		payload, err := Weight(model.WeightRequest{PetType: "dog", Weight: &weight})
		require.NoError(t, err)
		require.Equal(t, 100.0, payload.Score)
		require.Equal(t, ConditionIdeal, payload.Condition)
		require.NotEmpty(t, payload.Recommendation)
		require.Len(t, payload.HealthTips, 3)
	})

	t.Run("labrador uses breed base weight", func(t *testing.T) {
		weight := 30.0
		payload, err := Weight(model.WeightRequest{PetType: "dog", Breed: "Labrador", Weight: &weight})
		require.NoError(t, err)
		require.Equal(t, 25.0, payload.BaseWeight)
		require.Equal(t, 120.0, payload.Score)
		require.Equal(t, ConditionOverweight, payload.Condition)
	})

	t.Run("requires positive weight", func(t *testing.T) {
		weight := 0.0
		_, err := Weight(model.WeightRequest{PetType: "dog", Weight: &weight})
		require.Error(t, err)

		_, err = Weight(model.WeightRequest{PetType: "dog"})
		require.Error(t, err)
	})
}
