// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

// Repository defines the persistence contract for categories.
//
// Missing rows are reported as apperr NOT_FOUND. Name or slug collisions on
// write are reported as apperr CONFLICT.
type Repository interface {
	List(context context.Context) ([]*Category, error)
	FindByID(context context.Context, id string) (*Category, error)
	ExistsByName(context context.Context, name string) (bool, error)
	ExistsBySlug(context context.Context, slug string) (bool, error)
	Create(context context.Context, category *Category) error
	Update(context context.Context, category *Category) error

	// Delete fails with CONFLICT while videos still reference the category.
	Delete(context context.Context, id string) error
}
