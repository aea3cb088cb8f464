// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LearningVideoTable represents the 'learning.video' table
type LearningVideoTable struct {
	Table           string
	ID              string
	Title           string
	Description     string
	VideoURL        string
	ThumbnailURL    string
	DurationSeconds string
	Difficulty      string
	CategoryID      string
	InstructorID    string
	CreatedAt       string
	UpdatedAt       string
}

// LearningVideo is the schema definition for learning.video
var LearningVideo = LearningVideoTable{
	Table:           "learning.video",
	ID:              "id",
	Title:           "title",
	Description:     "description",
	VideoURL:        "videourl",
	ThumbnailURL:    "thumbnailurl",
	DurationSeconds: "durationseconds",
	Difficulty:      "difficulty",
	CategoryID:      "categoryid",
	InstructorID:    "instructorid",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t LearningVideoTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.VideoURL, t.ThumbnailURL, t.DurationSeconds,
		t.Difficulty, t.CategoryID, t.InstructorID, t.CreatedAt, t.UpdatedAt,
	}
}
