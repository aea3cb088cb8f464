// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/pkg/slug"
	"github.com/taibuivan/learnsnap/pkg/uuid"
)

// Service implements category use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Input carries the writable fields of a category.
//
// An empty Slug is derived from Name.
type Input struct {
	Name        string
	Slug        string
	Description string
	Icon        string
}

func (input Input) normalizedSlug() (string, error) {
	if input.Slug != "" {
		return input.Slug, nil
	}

	derived := slug.From(input.Name)
	if derived == "" {
		return "", apperr.ValidationError("Invalid request data", apperr.FieldError{
			Field:   FieldSlug,
			Message: "Cannot be derived from the name; provide one explicitly",
		})
	}
	return derived, nil
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateCategory persists a new category after uniqueness checks.

Returns:
  - *Category: The created entity
  - error: CONFLICT when the name or slug is taken
*/
func (service *Service) CreateCategory(context context.Context, input Input) (*Category, error) {
	categorySlug, err := input.normalizedSlug()
	if err != nil {
		return nil, err
	}

	if err := service.ensureUnique(context, input.Name, categorySlug); err != nil {
		return nil, err
	}

	category := &Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        categorySlug,
		Description: input.Description,
		Icon:        input.Icon,
	}

	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// UpdateCategory replaces every writable field. The category's own name and
// slug do not count as collisions.
func (service *Service) UpdateCategory(context context.Context, id string, input Input) (*Category, error) {
	category, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	categorySlug, err := input.normalizedSlug()
	if err != nil {
		return nil, err
	}

	checkName, checkSlug := "", ""
	if input.Name != category.Name {
		checkName = input.Name
	}
	if categorySlug != category.Slug {
		checkSlug = categorySlug
	}
	if err := service.ensureUnique(context, checkName, checkSlug); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Slug = categorySlug
	category.Description = input.Description
	category.Icon = input.Icon

	if err := service.repo.Update(context, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (service *Service) DeleteCategory(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.String("category_id", id))
	return nil
}

// ensureUnique checks the non-empty name and slug against existing rows.
func (service *Service) ensureUnique(context context.Context, name, categorySlug string) error {
	if name != "" {
		exists, err := service.repo.ExistsByName(context, name)
		if err != nil {
			return fmt.Errorf("category_service_name_check_failed: %w", err)
		}
		if exists {
			return apperr.Conflict("Category name is already in use: " + name)
		}
	}

	if categorySlug != "" {
		exists, err := service.repo.ExistsBySlug(context, categorySlug)
		if err != nil {
			return fmt.Errorf("category_service_slug_check_failed: %w", err)
		}
		if exists {
			return apperr.Conflict("Category slug is already in use: " + categorySlug)
		}
	}

	return nil
}
