// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/database/schema"
	"github.com/taibuivan/learnsnap/internal/platform/dberr"
	"github.com/taibuivan/learnsnap/internal/platform/postgres"
	"github.com/taibuivan/learnsnap/pkg/pagination"
)

// PostgresRepository implements [Repository] on learning.video.
type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	videoTable    = schema.LearningVideo
	categoryTable = schema.LearningCategory
	accountTable  = schema.UserAccount
)

// selectVideo joins the owning category and, when still present, the instructor.
var selectVideo = fmt.Sprintf(`
	SELECT %s,
	       c.%s, c.%s,
	       a.%s, a.%s
	FROM %s v
	JOIN %s c ON c.%s = v.%s
	LEFT JOIN %s a ON a.%s = v.%s`,
	schema.List(schema.Qualify("v", videoTable.Columns()...)...),
	categoryTable.Name, categoryTable.Slug,
	accountTable.DisplayName, accountTable.ProfileImage,
	videoTable.Table,
	categoryTable.Table, categoryTable.ID, videoTable.CategoryID,
	accountTable.Table, accountTable.ID, videoTable.InstructorID,
)

// scanVideo reads one row of selectVideo.
func scanVideo(row pgx.Row) (*Video, error) {
	video := &Video{Category: &CategorySummary{}}

	var (
		instructorID           *string
		instructorName         *string
		instructorProfileImage *string
	)

	err := row.Scan(
		&video.ID, &video.Title, &video.Description, &video.VideoURL, &video.ThumbnailURL,
		&video.DurationSeconds, &video.Difficulty, &video.CategoryID, &instructorID,
		&video.CreatedAt, &video.UpdatedAt,
		&video.Category.Name, &video.Category.Slug,
		&instructorName, &instructorProfileImage,
	)
	if err != nil {
		return nil, err
	}

	video.Category.ID = video.CategoryID

	if instructorID != nil {
		video.InstructorID = *instructorID
	}
	if instructorName != nil {
		video.Instructor = &Instructor{ID: video.InstructorID, DisplayName: *instructorName}
		if instructorProfileImage != nil {
			video.Instructor.ProfileImage = *instructorProfileImage
		}
	}

	return video, nil
}

/*
List returns a filtered page of videos, newest first.

Parameters:
  - context: context.Context
  - filter: Filter
  - page: pagination.Params

Returns:
  - []*Video: The requested page
  - int: Total rows matching filter
  - error: Database failures
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, page pagination.Params) ([]*Video, int, error) {
	conditions := make([]string, 0, 2)
	arguments := make([]any, 0, 4)

	if filter.CategoryID != "" {
		arguments = append(arguments, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("v.%s = $%d", videoTable.CategoryID, len(arguments)))
	}
	if filter.Difficulty != "" {
		arguments = append(arguments, filter.Difficulty)
		conditions = append(conditions, fmt.Sprintf("v.%s = $%d", videoTable.Difficulty, len(arguments)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s v%s`, videoTable.Table, where)
	if err := repository.db.QueryRow(context, countQuery, arguments...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_videos")
	}

	arguments = append(arguments, page.Limit, page.Offset())
	listQuery := fmt.Sprintf(`%s%s ORDER BY v.%s DESC, v.%s DESC LIMIT $%d OFFSET $%d`,
		selectVideo, where, videoTable.CreatedAt, videoTable.ID, len(arguments)-1, len(arguments))

	rows, err := repository.db.Query(context, listQuery, arguments...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}
	defer rows.Close()

	videos := make([]*Video, 0, page.Limit)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video")
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}

	return videos, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Video, error) {
	query := fmt.Sprintf(`%s WHERE v.%s = $1`, selectVideo, videoTable.ID)

	video, err := scanVideo(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Video")
	}
	return video, nil
}

func (repository *PostgresRepository) Create(context context.Context, video *Video) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		videoTable.Table, schema.List(videoTable.Columns()...))

	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	_, err := repository.db.Exec(context, query,
		video.ID, video.Title, video.Description, video.VideoURL, video.ThumbnailURL,
		video.DurationSeconds, video.Difficulty, video.CategoryID, video.InstructorID,
		video.CreatedAt, video.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Video")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, video *Video) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1`,
		videoTable.Table,
		videoTable.Title, videoTable.Description, videoTable.ThumbnailURL, videoTable.DurationSeconds,
		videoTable.Difficulty, videoTable.CategoryID, videoTable.UpdatedAt,
		videoTable.ID,
	)

	video.UpdatedAt = time.Now().UTC()

	tag, err := repository.db.Exec(context, query,
		video.ID, video.Title, video.Description, video.ThumbnailURL, video.DurationSeconds,
		video.Difficulty, video.CategoryID, video.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Video")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Video")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, videoTable.Table, videoTable.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Video")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Video")
	}
	return nil
}
