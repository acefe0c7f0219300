// Package care holds the pet-care computations: age conversion,
// body-condition scoring, and the static name/recipe/breed/guide
// catalogs. Everything here is a pure function of its input plus a
// fixed table; the only failure mode is malformed input.
package care

import (
	"math"

	"pet-care-api/internal/model"
	"pet-care-api/pkg/apierror"
)

// ageRates maps a species to its fixed pet-year → human-year
// multiplier.
var ageRates = map[string]float64{
	"dog":     7,
	"cat":     4,
	"rabbit":  8,
	"hamster": 25,
	"bird":    5,
	"fish":    1,
}

// AgePetTypes lists the species the age calculator accepts.
var AgePetTypes = []string{"dog", "cat", "rabbit", "hamster", "bird", "fish"}

var ageMessages = map[string][3]string{
	"dog": {
		"Just a baby! Lots of energy and learning ahead!",
		"In their prime! Perfect time for adventures!",
		"A wise companion! Extra love and care needed!",
	},
	"cat": {
		"Playful kitten days! So much curiosity!",
		"Majestic adult cat! Independent and graceful!",
		"Senior sweetheart! Cherish every moment!",
	},
}

const defaultAgeMessage = "Your pet is wonderful at any age!"

// ConvertAge turns a pet age into human years using the per-species
// multiplier, rounded to one decimal.
func ConvertAge(petType string, petAge float64) (float64, error) {
	rate, ok := ageRates[petType]
	if !ok {
		return 0, apierror.Validation("unknown pet type for age conversion", "pet_type")
	}
	if petAge < 0 {
		return 0, apierror.Validation("pet age cannot be negative", "pet_age")
	}

	return math.Round(petAge*rate*10) / 10, nil
}

// LifeStage is a deterministic threshold function of the converted
// human age. Dogs: <2 puppy, <7 adult, else senior. Cats: <1 kitten,
// <7 adult, else senior. Other species are reported as adults.
func LifeStage(petType string, humanAge float64) string {
	switch petType {
	case "dog":
		if humanAge < 2 {
			return "Puppy"
		}
		if humanAge < 7 {
			return "Adult"
		}
		return "Senior"
	case "cat":
		if humanAge < 1 {
			return "Kitten"
		}
		if humanAge < 7 {
			return "Adult"
		}
		return "Senior"
	default:
		return "Adult"
	}
}

// AgeMessage picks the life-stage blurb shown alongside a conversion.
func AgeMessage(petType string, humanAge float64) string {
	msgs, ok := ageMessages[petType]
	if !ok {
		return defaultAgeMessage
	}

	switch {
	case humanAge < 2:
		return msgs[0]
	case humanAge < 7:
		return msgs[1]
	default:
		return msgs[2]
	}
}

// Age runs the full conversion and assembles the payload persisted by
// the record store.
func Age(req model.AgeRequest) (model.AgePayload, error) {
	if req.PetAge == nil {
		return model.AgePayload{}, apierror.Validation("pet age is required", "pet_age")
	}

	humanAge, err := ConvertAge(req.PetType, *req.PetAge)
	if err != nil {
		return model.AgePayload{}, err
	}

	return model.AgePayload{
		PetType:   req.PetType,
		PetAge:    *req.PetAge,
		HumanAge:  humanAge,
		BreedSize: req.BreedSize,
		LifeStage: LifeStage(req.PetType, humanAge),
		Message:   AgeMessage(req.PetType, humanAge),
	}, nil
}
