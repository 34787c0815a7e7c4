package schema

// CatalogDramaTable represents the 'catalog.drama' table
type CatalogDramaTable struct {
	Table       string
	ID          string
	Title       string
	ReleaseYear string
	Genre       string
	Synopsis    string
	Version     string
}

// CatalogDrama is the schema definition for catalog.drama
var CatalogDrama = CatalogDramaTable{
	Table:       "catalog.drama",
	ID:          "id",
	Title:       "title",
	ReleaseYear: "releaseyear",
	Genre:       "genre",
	Synopsis:    "synopsis",
	Version:     "xmin",
}
