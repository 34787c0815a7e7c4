// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package drama

import "context"

// Repository defines the data access contract for dramas.
//
// Find and Delete return [dberr.ErrNotFound] for a missing row. Update
// returns [dberr.ErrStaleVersion] when the row changed after it was read.
type Repository interface {
	List(context context.Context) ([]*Drama, error)
	Find(context context.Context, id int) (*Drama, error)
	Create(context context.Context, drama *Drama) error
	Update(context context.Context, drama *Drama) error
	Delete(context context.Context, id int) error
}
