package repository

import (
	"context"
	"fmt"

	"coffee-shop/internal/data/entity"
	"coffee-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// Create inserts the product and its modifiers in one transaction.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create product: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO products (name, description, price, image_url, category_id, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.CategoryID,
		product.SortOrder,
	).Scan(&product.ID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	for i := range product.Modifiers {
		mod := &product.Modifiers[i]
		mod.ProductID = product.ID

		err = tx.QueryRow(ctx, `
			INSERT INTO product_modifiers (product_id, modifier_type, name, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, mod.ProductID, mod.Type, mod.Name, mod.Price).Scan(&mod.ID)

		if err != nil {
			r.log.Error("Failed to create product modifier",
				zap.Error(err),
				zap.Int64("product_id", product.ID),
				zap.String("modifier", mod.Name),
			)
			return fmt.Errorf("create modifier %s for product %d: %w", mod.Name, product.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, category_id, sort_order
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.ImageURL,
		&product.CategoryID,
		&product.SortOrder,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	modifiers, err := r.findModifiers(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Modifiers = modifiers

	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, category_id, sort_order
		FROM products
		ORDER BY category_id, sort_order
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.ImageURL,
			&product.CategoryID,
			&product.SortOrder,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	for _, product := range products {
		modifiers, err := r.findModifiers(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		product.Modifiers = modifiers
	}

	return products, nil
}

// Update rewrites the product row and replaces its modifiers.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update product: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, image_url = $5,
		    category_id = $6, sort_order = $7
		WHERE id = $1
	`,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.CategoryID,
		product.SortOrder,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", product.ID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_modifiers WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("clear modifiers for product %d: %w", product.ID, err)
	}

	for i := range product.Modifiers {
		mod := &product.Modifiers[i]
		mod.ProductID = product.ID

		err = tx.QueryRow(ctx, `
			INSERT INTO product_modifiers (product_id, modifier_type, name, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, mod.ProductID, mod.Type, mod.Name, mod.Price).Scan(&mod.ID)

		if err != nil {
			return fmt.Errorf("create modifier %s for product %d: %w", mod.Name, product.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update product %d: %w", product.ID, err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", id)
	}

	r.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}

func (r *productRepository) findModifiers(ctx context.Context, productID int64) ([]entity.Modifier, error) {
	query := `
		SELECT id, product_id, modifier_type, name, price
		FROM product_modifiers
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to find product modifiers",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("find modifiers for product %d: %w", productID, err)
	}
	defer rows.Close()

	var modifiers []entity.Modifier
	for rows.Next() {
		var mod entity.Modifier
		if err := rows.Scan(&mod.ID, &mod.ProductID, &mod.Type, &mod.Name, &mod.Price); err != nil {
			r.log.Error("Failed to scan modifier row", zap.Error(err))
			return nil, fmt.Errorf("scan modifier row: %w", err)
		}
		modifiers = append(modifiers, mod)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate modifier rows: %w", err)
	}

	return modifiers, nil
}
