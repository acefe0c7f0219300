package care

import "pet-care-api/internal/model"

// guideCatalog is the static downloadable-guide table.
var guideCatalog = []model.Guide{
	{
		ID:          "dog-training-complete",
		Title:       "Complete Dog Training Guide",
		Description: "Step-by-step training techniques",
		Category:    "training",
		PetType:     "dog",
		FileSize:    "2.4 MB",
		Pages:       45,
		Rating:      4.8,
		Downloads:   1250,
	},
	{
		ID:          "cat-grooming-mastery",
		Title:       "Cat Grooming Mastery",
		Description: "Professional grooming tips",
		Category:    "grooming",
		PetType:     "cat",
		FileSize:    "1.8 MB",
		Pages:       32,
		Rating:      4.9,
		Downloads:   890,
	},
	{
		ID:          "rabbit-care-essentials",
		Title:       "Rabbit Care Essentials",
		Description: "Housing, diet and handling basics",
		Category:    "care",
		PetType:     "rabbit",
		FileSize:    "1.2 MB",
		Pages:       24,
		Rating:      4.7,
		Downloads:   410,
	},
}

// Guides returns the full guide catalog.
func Guides() []model.Guide {
	out := make([]model.Guide, len(guideCatalog))
	copy(out, guideCatalog)
	return out
}

// FindGuide resolves a guide by ID.
func FindGuide(id string) (model.Guide, bool) {
	for _, g := range guideCatalog {
		if g.ID == id {
			return g, true
		}
	}
	return model.Guide{}, false
}
