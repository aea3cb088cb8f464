// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LearningCategoryTable represents the 'learning.category' table
type LearningCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	Icon        string
	CreatedAt   string
	UpdatedAt   string

	NameConstraint string
	SlugConstraint string
}

// LearningCategory is the schema definition for learning.category
var LearningCategory = LearningCategoryTable{
	Table:          "learning.category",
	ID:             "id",
	Name:           "name",
	Slug:           "slug",
	Description:    "description",
	Icon:           "icon",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
	NameConstraint: "uq_category_name",
	SlugConstraint: "uq_category_slug",
}

func (t LearningCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Description, t.Icon, t.CreatedAt, t.UpdatedAt}
}
