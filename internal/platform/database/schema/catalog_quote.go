package schema

// CatalogQuoteTable represents the 'catalog.quote' table
type CatalogQuoteTable struct {
	Table   string
	ID      string
	DramaID string
	Content string
	Actor   string
	Episode string
	Version string
}

// CatalogQuote is the schema definition for catalog.quote
var CatalogQuote = CatalogQuoteTable{
	Table:   "catalog.quote",
	ID:      "id",
	DramaID: "dramaid",
	Content: "content",
	Actor:   "actor",
	Episode: "episode",
	Version: "xmin",
}
