// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mood

import "context"

// Repository defines the data access contract for moods.
type Repository interface {
	List(context context.Context) ([]*Mood, error)
	Find(context context.Context, id int) (*Mood, error)
	Create(context context.Context, mood *Mood) error
	Update(context context.Context, mood *Mood) error
	Delete(context context.Context, id int) error
}
