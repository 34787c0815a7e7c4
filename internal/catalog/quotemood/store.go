// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quotemood

import "context"

type Repository interface {
	// QuotesForMood joins quote, quotemood, mood and drama on an exact label.
	QuotesForMood(context context.Context, label string) ([]QuoteOnMood, error)

	// MoodsForQuote returns [dberr.ErrNotFound] when the quote does not exist.
	MoodsForQuote(context context.Context, quoteID int) ([]MoodTag, error)

	// Tag inserts the pair after checking both sides in the same transaction.
	// It returns [ErrQuoteMissing], [ErrMoodMissing] or [ErrDuplicateTag].
	Tag(context context.Context, tag Tag) error

	// Untag returns [dberr.ErrNotFound] when the pair does not exist.
	Untag(context context.Context, tag Tag) error
}
