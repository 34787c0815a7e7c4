package schema

// CatalogMoodTable represents the 'catalog.mood' table
type CatalogMoodTable struct {
	Table   string
	ID      string
	Type    string
	Version string
}

// CatalogMood is the schema definition for catalog.mood
var CatalogMood = CatalogMoodTable{
	Table:   "catalog.mood",
	ID:      "id",
	Type:    "type",
	Version: "xmin",
}
