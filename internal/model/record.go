package model

import (
	"encoding/json"
	"time"
)

// RecordKind discriminates service records in the ownership-scoped
// record store. One kind per pet-care service.
type RecordKind string

const (
	KindAge    RecordKind = "age"
	KindWeight RecordKind = "weight"
	KindBreed  RecordKind = "breed"
	KindRecipe RecordKind = "recipe"
	KindName   RecordKind = "name"
	KindGuide  RecordKind = "guide"
	KindChart  RecordKind = "chart"
)

func IsValidRecordKind(kind RecordKind) bool {
	switch kind {
	case KindAge, KindWeight, KindBreed, KindRecipe, KindName, KindGuide, KindChart:
		return true
	}
	return false
}

// ServiceRecord is the generic owned resource persisted by the record
// store. Payload holds the kind-specific document.
type ServiceRecord struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Kind      RecordKind      `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AgePayload is a saved age conversion.
type AgePayload struct {
	PetType   string  `json:"pet_type"`
	PetAge    float64 `json:"pet_age"`
	HumanAge  float64 `json:"human_age"`
	BreedSize string  `json:"breed_size,omitempty"`
	LifeStage string  `json:"life_stage"`
	Message   string  `json:"message,omitempty"`
}

// WeightPayload is a saved body-condition assessment.
type WeightPayload struct {
	PetType        string   `json:"pet_type"`
	Breed          string   `json:"breed,omitempty"`
	Weight         float64  `json:"weight"`
	BaseWeight     float64  `json:"base_weight"`
	Score          float64  `json:"score"`
	Condition      string   `json:"condition"`
	Recommendation string   `json:"recommendation,omitempty"`
	HealthTips     []string `json:"health_tips,omitempty"`
}

type BreedTraits struct {
	Size  string `json:"size,omitempty"`
	Coat  string `json:"coat,omitempty"`
	Ears  string `json:"ears,omitempty"`
	Tail  string `json:"tail,omitempty"`
	Color string `json:"color,omitempty"`
}

type BreedInfo struct {
	Name            string   `json:"name"`
	Confidence      float64  `json:"confidence"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	Size            string   `json:"size"`
	LifeSpan        string   `json:"life_span"`
}

// BreedPayload is a saved breed identification. Identification is
// declared static-catalog selection, not model inference.
type BreedPayload struct {
	ImageURL   string      `json:"image_url,omitempty"`
	Breed      BreedInfo   `json:"breed"`
	Confidence float64     `json:"confidence"`
	Manual     bool        `json:"manual"`
	Traits     BreedTraits `json:"traits,omitempty"`
}

type RecipeCriteria struct {
	PetType          string   `json:"pet_type"`
	Weight           float64  `json:"weight,omitempty"`
	Age              float64  `json:"age,omitempty"`
	HealthConditions []string `json:"health_conditions,omitempty"`
	Ingredients      []string `json:"ingredients,omitempty"`
	CookingTime      string   `json:"cooking_time,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
}

type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

type RecipeNutrition struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

type Recipe struct {
	Name         string             `json:"name"`
	PetTypes     []string           `json:"pet_types"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Nutrition    RecipeNutrition    `json:"nutrition"`
	CookingTime  int                `json:"cooking_time"`
	Difficulty   string             `json:"difficulty"`
	SuitableFor  []string           `json:"suitable_for"`
}

// RecipePayload is a saved recipe generation.
type RecipePayload struct {
	Criteria RecipeCriteria `json:"criteria"`
	Recipes  []Recipe       `json:"recipes"`
}

type NamePreferences struct {
	PetType        string `json:"pet_type"`
	Gender         string `json:"gender,omitempty"`
	Style          string `json:"style,omitempty"`
	Length         string `json:"length,omitempty"`
	StartingLetter string `json:"starting_letter,omitempty"`
}

// NamePayload is a saved name generation plus the owner's favorites.
type NamePayload struct {
	Preferences NamePreferences `json:"preferences"`
	Names       []string        `json:"names"`
	Favorites   []string        `json:"favorites,omitempty"`
}

type Guide struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	PetType     string  `json:"pet_type"`
	FileSize    string  `json:"file_size"`
	Pages       int     `json:"pages"`
	Rating      float64 `json:"rating"`
	Downloads   int     `json:"downloads"`
}

// GuidePayload tracks a guide download.
type GuidePayload struct {
	GuideID    string `json:"guide_id"`
	GuideTitle string `json:"guide_title"`
	DeviceType string `json:"device_type,omitempty"`
}

// ChartTypes is the enumerated set of printable chart types.
var ChartTypes = []string{"feeding", "vaccination", "medication", "training", "weight", "grooming"}

func IsValidChartType(chartType string) bool {
	for _, t := range ChartTypes {
		if t == chartType {
			return true
		}
	}
	return false
}

// ChartPayload is a saved printable chart.
type ChartPayload struct {
	ChartType string         `json:"chart_type"`
	Data      map[string]any `json:"data,omitempty"`
}
