package model

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest accepts either a username or an email as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type CheckUsernameResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type CreatePetRequest struct {
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Breed          string         `json:"breed"`
	Age            *float64       `json:"age"`
	Weight         *float64       `json:"weight"`
	BirthDate      *time.Time     `json:"birth_date"`
	Gender         string         `json:"gender"`
	ImageURL       string         `json:"image_url"`
	MedicalHistory []MedicalEntry `json:"medical_history"`
	Preferences    PetPreferences `json:"preferences"`
}

// UpdatePetRequest is a partial patch: nil fields are left untouched.
type UpdatePetRequest struct {
	Name           *string         `json:"name"`
	Type           *string         `json:"type"`
	Breed          *string         `json:"breed"`
	Age            *float64        `json:"age"`
	Weight         *float64        `json:"weight"`
	BirthDate      *time.Time      `json:"birth_date"`
	Gender         *string         `json:"gender"`
	ImageURL       *string         `json:"image_url"`
	MedicalHistory []MedicalEntry  `json:"medical_history"`
	Preferences    *PetPreferences `json:"preferences"`
}

type PetListResponse struct {
	Count int   `json:"count"`
	Pets  []Pet `json:"pets"`
}

type AgeRequest struct {
	PetType   string   `json:"pet_type"`
	PetAge    *float64 `json:"pet_age"`
	BreedSize string   `json:"breed_size"`
}

type WeightRequest struct {
	PetType string   `json:"pet_type"`
	Breed   string   `json:"breed"`
	Weight  *float64 `json:"weight"`
}

type NameGenerateRequest struct {
	Preferences NamePreferences `json:"preferences"`
}

type NameFavoritesRequest struct {
	Favorites []string `json:"favorites"`
}

type RecipeGenerateRequest struct {
	Criteria RecipeCriteria `json:"criteria"`
}

type BreedIdentifyRequest struct {
	ImageURL string `json:"image_url"`
}

type BreedManualRequest struct {
	Traits BreedTraits `json:"traits"`
}

type ChartGenerateRequest struct {
	ChartType string         `json:"chart_type"`
	Data      map[string]any `json:"data"`
}

// RecordView is the API shape of a stored service record: envelope
// fields flattened next to the kind-specific payload.
type RecordView struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Payload   any       `json:"payload"`
}

// DashboardData aggregates the most recent records per service.
type DashboardData struct {
	AgeCalculations []RecordView `json:"age_calculations"`
	WeightRecords   []RecordView `json:"weight_records"`
	RecipeRecords   []RecordView `json:"recipe_records"`
	NameRecords     []RecordView `json:"name_records"`
}
