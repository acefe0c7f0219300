package care

import (
	"math/rand"

	"pet-care-api/internal/model"
)

// breedCatalog is the static breed table. Identification picks from
// it; there is no inference model behind this service and the API
// does not pretend otherwise.
var breedCatalog = []model.BreedInfo{
	{
		Name:            "Golden Retriever",
		Confidence:      95,
		Description:     "Friendly, intelligent and devoted.",
		Characteristics: []string{"Friendly", "Intelligent", "Devoted"},
		Size:            "Large",
		LifeSpan:        "10-12 years",
	},
	{
		Name:            "Labrador Retriever",
		Confidence:      88,
		Description:     "Outgoing, even-tempered and gentle.",
		Characteristics: []string{"Outgoing", "Even-tempered", "Gentle"},
		Size:            "Large",
		LifeSpan:        "10-12 years",
	},
	{
		Name:            "German Shepherd",
		Confidence:      82,
		Description:     "Confident, courageous and smart.",
		Characteristics: []string{"Confident", "Courageous", "Smart"},
		Size:            "Large",
		LifeSpan:        "9-13 years",
	},
}

// manualConfidence is the fixed lower confidence reported for
// trait-based identification.
const manualConfidence = 75

// IdentifyBreed picks a catalog entry.
func IdentifyBreed() model.BreedInfo {
	return breedCatalog[rand.Intn(len(breedCatalog))]
}

// MatchBreedByTraits is the trait-based fallback. It matches on size
// when one is given and falls back to a mixed-breed profile.
func MatchBreedByTraits(traits model.BreedTraits) model.BreedInfo {
	if traits.Size != "" {
		for _, breed := range breedCatalog {
			if breed.Size == traits.Size {
				matched := breed
				matched.Confidence = manualConfidence
				return matched
			}
		}
	}

	size := traits.Size
	if size == "" {
		size = "Medium"
	}

	return model.BreedInfo{
		Name:            "Mixed Breed",
		Confidence:      manualConfidence,
		Description:     "A wonderful mix of characteristics!",
		Characteristics: []string{"Unique", "Adaptable", "Loving"},
		Size:            size,
		LifeSpan:        "12-15 years",
	}
}
