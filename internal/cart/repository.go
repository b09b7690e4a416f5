package cart

import (
	"context"
	"database/sql"
	"time"

	"boutique-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	UpsertLine(ctx context.Context, userID, productID int64) (*Line, error)
	UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error
	RemoveLine(ctx context.Context, userID, lineID int64) error
	ClearCart(ctx context.Context, userID int64) error
	GetCartRows(ctx context.Context, userID int64) ([]CartRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// UpsertLine adds one unit atomically. Two concurrent first adds of the
// same product land on the (user_id, product_id) unique constraint, so
// the conflict path increments instead of failing.
func (r *repository) UpsertLine(ctx context.Context, userID, productID int64) (*Line, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertLine"),
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
	)

	query := `
	INSERT INTO cart_items (
		user_id,
		product_id,
		quantity
	)
	VALUES ($1, $2, 1)
	ON CONFLICT (user_id, product_id)
	DO UPDATE SET quantity = cart_items.quantity + 1
	RETURNING
		id,
		user_id,
		product_id,
		quantity,
		added_at
	`

	var line Line
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(
		&line.ID,
		&line.UserID,
		&line.ProductID,
		&line.Quantity,
		&line.AddedAt,
	)
	if err != nil {
		log.Error("failed to upsert cart line", zap.Error(err))
		return nil, err
	}

	log.Info("cart line upserted",
		zap.Int64("line_id", line.ID),
		zap.Int("quantity", line.Quantity),
	)

	return &line, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1
		WHERE id = $2 AND user_id = $3
	`, quantity, lineID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrLineNotFound
	}

	return nil
}

func (r *repository) RemoveLine(ctx context.Context, userID, lineID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1 AND user_id = $2
	`, lineID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrLineNotFound
	}

	return nil
}

func (r *repository) ClearCart(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1
	`, userID)
	return err
}

func (r *repository) GetCartRows(ctx context.Context, userID int64) ([]CartRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartRows"),
		zap.Int64("user_id", userID),
	)

	start := time.Now()

	query := `
	SELECT
		c.id,
		c.product_id,
		p.name,
		p.price,
		c.quantity,
		c.added_at
	FROM cart_items c
	JOIN products p ON c.product_id = p.id
	WHERE c.user_id = $1
	ORDER BY c.added_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	result := make([]CartRow, 0)

	for rows.Next() {
		var row CartRow
		if err := rows.Scan(
			&row.LineID,
			&row.ProductID,
			&row.ProductName,
			&row.Price,
			&row.Quantity,
			&row.AddedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Info("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}
