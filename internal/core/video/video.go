// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package video manages the lecture catalog.

# Access

  - Reads and view recording are public.
  - Creation requires the instructor or admin role (route access table).
  - Update and delete additionally require ownership: the caller must be the
    video's instructor, or an admin.

# Views

View counts live in Redis and are overlaid onto every read. They are not
written to PostgreSQL.
*/
package video

import "time"

// # Domain Entities

// Difficulty grades how advanced a video is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// Difficulties lists every accepted difficulty in ascending order.
func Difficulties() []string {
	return []string{string(DifficultyBeginner), string(DifficultyIntermediate), string(DifficultyAdvanced)}
}

// Video is a single lecture.
type Video struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	VideoURL        string     `json:"video_url"`
	ThumbnailURL    string     `json:"thumbnail_url,omitempty"`
	DurationSeconds int        `json:"duration"`
	Difficulty      Difficulty `json:"difficulty"`

	CategoryID string           `json:"category_id"`
	Category   *CategorySummary `json:"category,omitempty"`

	// InstructorID is empty once the owning account has been deleted.
	InstructorID string      `json:"instructor_id,omitempty"`
	Instructor   *Instructor `json:"instructor,omitempty"`

	ViewsCount int64     `json:"views_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategorySummary is the slice of a category embedded in video reads.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Instructor is the public view of the owning account.
type Instructor struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// Filter narrows a listing. Zero fields do not filter.
type Filter struct {
	CategoryID string
	Difficulty Difficulty
}

// # Field Identifiers

const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldVideoURL     = "video_url"
	FieldThumbnailURL = "thumbnail_url"
	FieldDuration     = "duration"
	FieldDifficulty   = "difficulty"
	FieldCategoryID   = "category_id"
)

// # Constraints

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxURLLength         = 500
	MinDurationSeconds   = 1
)
