package care

import (
	"math"

	"pet-care-api/internal/model"
	"pet-care-api/pkg/apierror"
)

// baseWeights holds the ideal weight in kilograms per species and
// breed. Unknown breeds fall back to the species default; unknown
// species fall back to the global default.
var baseWeights = map[string]map[string]float64{
	"dog": {
		"Labrador":         25,
		"German Shepherd":  30,
		"Golden Retriever": 27,
		"Bulldog":          18,
		"Mixed Breed":      20,
		"default":          20,
	},
	"cat": {
		"Siamese":            4,
		"Persian":            5,
		"Maine Coon":         6,
		"Domestic Shorthair": 4.5,
		"Mixed Breed":        4.5,
		"default":            4.5,
	},
	"rabbit": {
		"Dutch":         2,
		"Lionhead":      1.5,
		"Flemish Giant": 6,
		"Mixed Breed":   2,
		"default":       2,
	},
}

const globalBaseWeight = 20

// Canonical condition bands. The thresholds are fixed: a score below
// 80 is underweight, up to 100 ideal, up to 120 overweight, above
// that obese.
const (
	ConditionUnderweight = "Underweight"
	ConditionIdeal       = "Ideal"
	ConditionOverweight  = "Overweight"
	ConditionObese       = "Obese"
)

var conditionRecommendations = map[string]string{
	ConditionUnderweight: "Consider increasing food portions and consult your vet for dietary advice",
	ConditionIdeal:       "Perfect! Maintain current diet and exercise routine",
	ConditionOverweight:  "Moderate exercise and diet adjustment recommended. Consult your vet.",
	ConditionObese:       "Consult your vet immediately for a weight management plan",
}

var healthTips = map[string][]string{
	ConditionUnderweight: {
		"Increase meal frequency to 3-4 times daily",
		"Consider high-calorie nutritional supplements",
		"Regular vet checkups to rule out underlying issues",
	},
	ConditionIdeal: {
		"Maintain consistent feeding schedule",
		"Regular exercise and playtime",
		"Annual vet checkups for maintenance",
	},
	ConditionOverweight: {
		"Gradually reduce food portions by 10-15%",
		"Increase daily exercise and activity",
		"Avoid high-calorie treats and table scraps",
	},
	ConditionObese: {
		"Immediate veterinary consultation",
		"Strict dietary management plan",
		"Supervised exercise program",
	},
}

// BaseWeight returns the ideal weight for a species/breed pair.
func BaseWeight(petType string, breed string) float64 {
	species, ok := baseWeights[petType]
	if !ok {
		return globalBaseWeight
	}
	if w, ok := species[breed]; ok {
		return w
	}
	return species["default"]
}

// WeightScore is (weight / base) * 100, rounded to one decimal.
func WeightScore(weight float64, baseWeight float64) float64 {
	return math.Round(weight/baseWeight*100*10) / 10
}

// Condition bands a score into the four-tier condition table.
func Condition(score float64) string {
	switch {
	case score < 80:
		return ConditionUnderweight
	case score <= 100:
		return ConditionIdeal
	case score <= 120:
		return ConditionOverweight
	default:
		return ConditionObese
	}
}

// HealthTips returns the care suggestions for a condition.
func HealthTips(condition string) []string {
	return healthTips[condition]
}

// Weight runs the full body-condition assessment.
func Weight(req model.WeightRequest) (model.WeightPayload, error) {
	if req.PetType == "" {
		return model.WeightPayload{}, apierror.Validation("pet type is required", "pet_type")
	}
	if req.Weight == nil {
		return model.WeightPayload{}, apierror.Validation("weight is required", "weight")
	}
	if *req.Weight <= 0 {
		return model.WeightPayload{}, apierror.Validation("weight must be positive", "weight")
	}

	base := BaseWeight(req.PetType, req.Breed)
	score := WeightScore(*req.Weight, base)
	condition := Condition(score)

	return model.WeightPayload{
		PetType:        req.PetType,
		Breed:          req.Breed,
		Weight:         *req.Weight,
		BaseWeight:     base,
		Score:          score,
		Condition:      condition,
		Recommendation: conditionRecommendations[condition],
		HealthTips:     HealthTips(condition),
	}, nil
}
