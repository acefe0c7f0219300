package care

import (
	"math/rand"
	"strings"

	"pet-care-api/internal/model"
	"pet-care-api/pkg/apierror"
)

const maxGeneratedNames = 12

// nameTable is the static name catalog keyed by species and style.
var nameTable = map[string]map[string][]string{
	"dog": {
		"cute":   {"Buddy", "Bella", "Coco", "Luna", "Charlie", "Lucy", "Max", "Daisy"},
		"funny":  {"Bark Twain", "Sir Waggington", "Chewbacca", "Princess Paws", "Droolius Caesar"},
		"unique": {"Zephyr", "Koda", "Nova", "Atlas", "Lyra", "Orion", "Sage", "Juno"},
		"strong": {"Zeus", "Thor", "Titan", "Valkyrie", "Hunter", "Ranger", "Blaze"},
	},
	"cat": {
		"cute":   {"Whiskers", "Mittens", "Simba", "Luna", "Oliver", "Chloe", "Leo", "Lily"},
		"funny":  {"Catniss", "Purrcival", "Meowly Cyrus", "Chairman Meow", "Fuzz Aldrin"},
		"unique": {"Nimbus", "Saffron", "Pippin", "Zara", "Kairo", "Lyric", "Rumi"},
		"strong": {"Shadow", "Midnight", "Raven", "Onyx", "Phantom", "Saber", "Jaguar"},
	},
	"rabbit": {
		"cute":   {"Thumper", "BunBun", "Cotton", "Snowball", "Pepper", "Cinnamon"},
		"funny":  {"Hopalong", "Bugs", "Flopsy", "Mopsy", "Peter", "Roger"},
		"unique": {"Willow", "Clover", "Pippin", "Dandelion", "Basil", "Petal"},
		"strong": {"Storm", "Rocky", "Thunder", "Blaze", "Hunter", "Ranger"},
	},
	"bird": {
		"cute":   {"Sunny", "Sky", "Blue", "Tweetie", "Mango", "Kiwi"},
		"funny":  {"Feather Locklear", "Wingston", "Beaker", "Polly", "Captain Squawk"},
		"unique": {"Zephyr", "Aero", "Nimbus", "Cirrus", "Phoenix", "Skyler"},
		"strong": {"Thor", "Zeus", "Talon", "Hunter", "Storm", "Blaze"},
	},
}

// NameStyles lists the accepted name styles.
var NameStyles = []string{"cute", "funny", "unique", "strong"}

// SyllableCount approximates syllables by counting vowel groups.
func SyllableCount(name string) int {
	count := 0
	inGroup := false
	for _, r := range strings.ToLower(name) {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			if !inGroup {
				count++
				inGroup = true
			}
		default:
			inGroup = false
		}
	}
	return count
}

func matchesLength(name string, length string) bool {
	syllables := SyllableCount(name)
	switch length {
	case "short":
		return syllables <= 2
	case "medium":
		return syllables >= 2 && syllables <= 3
	case "long":
		return syllables >= 4
	default:
		return true
	}
}

// GenerateNames filters the catalog by the requested preferences and
// returns up to 12 shuffled matches. Species falls back to dog and
// style to cute, matching the catalog defaults.
func GenerateNames(prefs model.NamePreferences) ([]string, error) {
	if prefs.PetType == "" {
		return nil, apierror.Validation("pet type is required", "preferences.pet_type")
	}

	styles, ok := nameTable[prefs.PetType]
	if !ok {
		styles = nameTable["dog"]
	}

	pool, ok := styles[prefs.Style]
	if !ok {
		pool = styles["cute"]
	}

	filtered := make([]string, 0, len(pool))
	for _, name := range pool {
		if !matchesLength(name, prefs.Length) {
			continue
		}
		if prefs.StartingLetter != "" && prefs.StartingLetter != "any" &&
			!strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefs.StartingLetter)) {
			continue
		}
		filtered = append(filtered, name)
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	if len(filtered) > maxGeneratedNames {
		filtered = filtered[:maxGeneratedNames]
	}

	return filtered, nil
}
