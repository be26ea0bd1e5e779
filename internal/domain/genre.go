package domain

// genreCategories maps user-facing genres to the provider's place type.
// Unknown genres fall back to DefaultCategory so a search always has a type.
var genreCategories = map[string]string{
	"ramen":      "restaurant",
	"sushi":      "restaurant",
	"yakiniku":   "restaurant",
	"izakaya":    "bar",
	"curry":      "restaurant",
	"cafe":       "cafe",
	"bakery":     "bakery",
	"sweets":     "cafe",
	"bar":        "bar",
	"restaurant": "restaurant",
}

// DefaultCategory is used when a genre has no mapping.
const DefaultCategory = "restaurant"

// CategoryForGenre resolves the provider place type for a genre.
func CategoryForGenre(genre string) string {
	if c, ok := genreCategories[genre]; ok {
		return c
	}
	return DefaultCategory
}
