package repository

import (
	"context"
	"fmt"

	"coffee-shop/internal/data/entity"
	"coffee-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `INSERT INTO categories (id, name, sort_order) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, category.ID, category.Name, category.SortOrder)
	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("category_id", category.ID),
		)
		return fmt.Errorf("create category %s: %w", category.ID, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT id, name, sort_order FROM categories WHERE id = $1`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.SortOrder,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id, err)
	}

	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT id, name, sort_order FROM categories ORDER BY sort_order`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.SortOrder); err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $2, sort_order = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, category.ID, category.Name, category.SortOrder)
	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", category.ID),
		)
		return fmt.Errorf("update category %s: %w", category.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", category.ID)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id),
		)
		return fmt.Errorf("delete category %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", id)
	}

	r.log.Info("Category deleted", zap.String("category_id", id))
	return nil
}
