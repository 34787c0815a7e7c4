package schema

// CatalogQuoteMoodTable represents the 'catalog.quotemood' join table.
// The primary key is (quoteid, moodid).
type CatalogQuoteMoodTable struct {
	Table   string
	QuoteID string
	MoodID  string
}

// CatalogQuoteMood is the schema definition for catalog.quotemood
var CatalogQuoteMood = CatalogQuoteMoodTable{
	Table:   "catalog.quotemood",
	QuoteID: "quoteid",
	MoodID:  "moodid",
}
