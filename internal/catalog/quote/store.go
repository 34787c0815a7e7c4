// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quote

import "context"

// Repository defines the data access contract for quotes.
//
// Reads fill DramaTitle. Create fills ID, Version and DramaTitle.
type Repository interface {
	List(context context.Context) ([]*Quote, error)
	ListByDrama(context context.Context, dramaID int) ([]*Quote, error)
	Find(context context.Context, id int) (*Quote, error)
	Create(context context.Context, quote *Quote) error

	// Update returns [dberr.ErrStaleVersion] when the row changed after it was read.
	Update(context context.Context, quote *Quote) error
	Delete(context context.Context, id int) error

	DramaExists(context context.Context, dramaID int) (bool, error)
}
