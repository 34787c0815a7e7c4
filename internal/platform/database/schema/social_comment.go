package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	QuoteID   string
	UserID    string
	Body      string
	CreatedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	QuoteID:   "quoteid",
	UserID:    "userid",
	Body:      "body",
	CreatedAt: "createdat",
}
