package care

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pet-care-api/internal/model"
)

func TestIdentifyBreed(t *testing.T) {
	t.Parallel()

	breed := IdentifyBreed()
	require.NotEmpty(t, breed.Name)
	require.Greater(t, breed.Confidence, 0.0)
}

func TestMatchBreedByTraits(t *testing.T) {
	t.Parallel()

	t.Run("matches on size with reduced confidence", func(t *testing.T) {
		breed := MatchBreedByTraits(model.BreedTraits{Size: "Large"})
		require.Equal(t, "Large", breed.Size)
		require.Equal(t, 75.0, breed.Confidence)
		require.NotEqual(t, "Mixed Breed", breed.Name)
	})

	t.Run("unknown size falls back to mixed breed", func(t *testing.T) {
		breed := MatchBreedByTraits(model.BreedTraits{Size: "Tiny"})
		require.Equal(t, "Mixed Breed", breed.Name)
		require.Equal(t, "Tiny", breed.Size)
	})

	t.Run("no traits yields a medium mixed breed", func(t *testing.T) {
		breed := MatchBreedByTraits(model.BreedTraits{})
		require.Equal(t, "Mixed Breed", breed.Name)
		require.Equal(t, "Medium", breed.Size)
	})
}

func TestFindGuide(t *testing.T) {
	t.Parallel()

	guide, ok := FindGuide("dog-training-complete")
	require.True(t, ok)
	require.Equal(t, "Complete Dog Training Guide", guide.Title)

	_, ok = FindGuide("no-such-guide")
	require.False(t, ok)

	require.Len(t, Guides(), len(guideCatalog))
}
