// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/database/schema"
	"github.com/taibuivan/learnsnap/internal/platform/dberr"
	"github.com/taibuivan/learnsnap/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on the learning.category table.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository creates a new PostgreSQL category repository.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var categoryColumns = schema.List(schema.LearningCategory.Columns()...)

func (repository *PostgresRepository) List(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		categoryColumns, schema.LearningCategory.Table, schema.LearningCategory.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(
			&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.Icon, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	return categories, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		categoryColumns, schema.LearningCategory.Table, schema.LearningCategory.ID)

	category := &Category{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.Icon, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}

	return category, nil
}

func (repository *PostgresRepository) ExistsByName(context context.Context, name string) (bool, error) {
	return repository.exists(context, schema.LearningCategory.Name, name)
}

func (repository *PostgresRepository) ExistsBySlug(context context.Context, slug string) (bool, error) {
	return repository.exists(context, schema.LearningCategory.Slug, slug)
}

func (repository *PostgresRepository) exists(context context.Context, column, value string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.LearningCategory.Table, column)

	var exists bool
	if err := repository.db.QueryRow(context, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_category_repo_exists_failed: %w", err)
	}
	return exists, nil
}

/*
Create inserts a new category row.

Returns:
  - error: apperr.Conflict when the name or slug was taken concurrently
*/
func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.LearningCategory.Table, categoryColumns)

	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := repository.db.Exec(context, query,
		category.ID, category.Name, category.Slug, category.Description,
		category.Icon, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, category *Category) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1`,
		schema.LearningCategory.Table,
		schema.LearningCategory.Name, schema.LearningCategory.Slug, schema.LearningCategory.Description,
		schema.LearningCategory.Icon, schema.LearningCategory.UpdatedAt, schema.LearningCategory.ID,
	)

	category.UpdatedAt = time.Now().UTC()

	tag, err := repository.db.Exec(context, query,
		category.ID, category.Name, category.Slug, category.Description, category.Icon, category.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LearningCategory.Table, schema.LearningCategory.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Conflict("Category still has videos")
		}
		return dberr.Wrap(err, "Category")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}
	return nil
}

// mapWriteError names the unique constraint that was hit.
func mapWriteError(err error) error {
	switch {
	case dberr.IsUniqueViolation(err, schema.LearningCategory.NameConstraint):
		return apperr.Conflict("Category name is already in use")
	case dberr.IsUniqueViolation(err, schema.LearningCategory.SlugConstraint):
		return apperr.Conflict("Category slug is already in use")
	default:
		return dberr.Wrap(err, "Category")
	}
}
