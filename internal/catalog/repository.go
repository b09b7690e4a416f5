package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"boutique-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)
	GetProductByID(ctx context.Context, productID int64) (*Product, error)
	GetCategories(ctx context.Context) ([]*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProducts(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProducts"),
	)

	// ---------- BASE QUERY ----------
	query := `
	SELECT
		p.id,
		p.name,
		p.price,
		p.quantity,
		p.description,
		p.category_id,
		p.image_url,
		p.available,
		p.created_at
	FROM products p
	`

	where := []string{}
	args := []any{}

	// ---------- FILTER ----------
	if filter.InStockOnly {
		where = append(where, "p.available = TRUE", "p.quantity > 0")
	}

	if filter.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *filter.CategoryID)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY p.name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]*Product, 0)

	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Quantity,
			&p.Description,
			&p.CategoryID,
			&p.ImageURL,
			&p.Available,
			&p.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (r *repository) GetProductByID(ctx context.Context, productID int64) (*Product, error) {
	query := `
	SELECT
		id,
		name,
		price,
		quantity,
		description,
		category_id,
		image_url,
		available,
		created_at
	FROM products
	WHERE id = $1
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Quantity,
		&p.Description,
		&p.CategoryID,
		&p.ImageURL,
		&p.Available,
		&p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetCategories(ctx context.Context) ([]*Category, error) {
	query := `
	SELECT
		id,
		name,
		description
	FROM categories
	ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get categories failed: %w", err)
	}
	defer rows.Close()

	categories := make([]*Category, 0)

	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
