package store

import (
	"context"
	"database/sql"
	"errors"
	"evently-catalog-backend/logger"
	"evently-catalog-backend/model"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func NewCategory() *Category {
	return &Category{}
}

type Category struct{}

// Create inserts a new category. Storage failures are logged and reported as
// a nil category, never as an error; a nil result means "not created".
func (s *Category) Create(ctx context.Context, db *sqlx.DB, name string) *model.Category {
	category := model.Category{
		CategoryID: uuid.NewString(),
		Name:       name,
	}
	now := time.Now().UTC()
	category.CreatedAt = &now

	q, args, err := sb.Insert(categoryTable).
		Columns("category_id", "name", "created_at").
		Values(category.CategoryID, category.Name, category.CreatedAt).
		ToSql()
	if err != nil {
		logger.Errorf(ctx, "create: error building insert: %+v", err)
		return nil
	}

	if _, err = db.ExecContext(ctx, q, args...); err != nil {
		logger.Errorf(ctx, "create: unable to insert category %q: %+v", name, err)
		return nil
	}

	return &category
}

// GetByName does a case-insensitive substring match and returns the first
// hit, or nil with no error when nothing matches.
func (s *Category) GetByName(ctx context.Context, db *sqlx.DB, name string) (*model.Category, error) {
	q, args, err := sb.Select("category_id", "name", "created_at").
		From(categoryTable).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("getByName: error building query: %w", err)
	}

	var category model.Category
	err = db.GetContext(ctx, &category, q, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getByName: error scanning category: %w", err)
	}

	return &category, nil
}

func (s *Category) GetAll(ctx context.Context, db *sqlx.DB) ([]model.Category, error) {
	q, args, err := sb.Select("category_id", "name", "created_at").
		From(categoryTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("getAll: error building query: %w", err)
	}

	var categories []model.Category
	if err = db.SelectContext(ctx, &categories, q, args...); err != nil {
		return nil, fmt.Errorf("getAll: error querying categories: %w", err)
	}

	return categories, nil
}
