// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category manages the subject taxonomy that videos are filed under.

Reads are public. Every write is restricted to administrators by the route
access table, so the handlers here carry no role checks of their own.
*/
package category

import "time"

// # Domain Entities

// Category groups videos by subject (e.g. "Backend", "Frontend").
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldIcon        = "icon"
)

// # Constraints

const (
	MaxNameLength        = 100
	MaxSlugLength        = 100
	MaxDescriptionLength = 500
	MaxIconLength        = 100
)
