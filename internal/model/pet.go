package model

import "time"

// PetTypes is the enumerated set of accepted pet species for profiles.
var PetTypes = []string{"dog", "cat", "bird", "rabbit", "fish", "hamster", "other"}

// PetGenders is the enumerated set of accepted genders.
var PetGenders = []string{"male", "female", "unknown"}

type MedicalEntry struct {
	Condition string    `json:"condition"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
}

type PetPreferences struct {
	Food       []string `json:"food,omitempty"`
	Activities []string `json:"activities,omitempty"`
	Allergies  []string `json:"allergies,omitempty"`
}

type Pet struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"owner_id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Breed          string         `json:"breed,omitempty"`
	Age            *float64       `json:"age,omitempty"`
	Weight         *float64       `json:"weight,omitempty"`
	BirthDate      *time.Time     `json:"birth_date,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	ImageURL       string         `json:"image_url,omitempty"`
	MedicalHistory []MedicalEntry `json:"medical_history,omitempty"`
	Preferences    PetPreferences `json:"preferences"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func IsValidPetType(petType string) bool {
	for _, t := range PetTypes {
		if t == petType {
			return true
		}
	}
	return false
}

func IsValidPetGender(gender string) bool {
	for _, g := range PetGenders {
		if g == gender {
			return true
		}
	}
	return false
}
