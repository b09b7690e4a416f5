package order

import (
	"context"
	"database/sql"

	"boutique-be/internal/logger"
	"boutique-be/internal/metrics"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateFromCart(ctx context.Context, userID int64, payment PaymentMethod) (*Order, error)
	GetOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

type checkoutLine struct {
	ProductID int64
	Quantity  int
	Price     float64
	Name      string
}

// CreateFromCart turns the user's cart into an order inside a single
// transaction. If anything fails the cart and stock are left untouched.
func (r *repository) CreateFromCart(ctx context.Context, userID int64, payment PaymentMethod) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateFromCart"),
		zap.Int64("user_id", userID),
	)

	timer := metrics.StartTimer()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	// 1. Read the cart, priced at the current catalog price
	rows, err := tx.QueryContext(ctx, `
		SELECT c.product_id, c.quantity, p.price, p.name
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.added_at ASC
	`, userID)
	if err != nil {
		log.Error("failed to read cart", zap.Error(err))
		return nil, err
	}

	var lines []checkoutLine
	var total float64

	for rows.Next() {
		var l checkoutLine
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.Price, &l.Name); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
		total += l.Price * float64(l.Quantity)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// 2. Create the order
	order := &Order{
		UserID:        userID,
		Status:        StatusPending,
		PaymentMethod: payment,
		Total:         total,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, status, payment_method, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, userID, order.Status, payment, total).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 3. Snapshot lines and deduct stock
	for _, l := range lines {
		var item OrderItem
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, order.ID, l.ProductID, l.Quantity, l.Price).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int64("product_id", l.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		item.OrderID = order.ID
		item.ProductID = l.ProductID
		item.ProductName = l.Name
		item.Quantity = l.Quantity
		item.Price = l.Price
		order.Items = append(order.Items, item)

		_, err = tx.ExecContext(ctx, `
			UPDATE products
			SET quantity = quantity - $1
			WHERE id = $2
		`, l.Quantity, l.ProductID)
		if err != nil {
			return nil, err
		}
	}

	// 4. Clear the cart
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return nil, err
	}

	log.Info("checkout committed",
		zap.Int64("order_id", order.ID),
		zap.Float64("total", total),
		zap.Int("items", len(order.Items)),
		zap.Duration("duration", timer.Duration()),
	)

	return order, nil
}

func (r *repository) GetOrders(ctx context.Context, userID int64) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrders"),
		zap.Int64("user_id", userID),
	)

	query := `
	SELECT
		id,
		user_id,
		status,
		payment_method,
		total,
		created_at,
		updated_at
	FROM orders
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	orderIDs := make([]int64, 0)

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Status,
			&o.PaymentMethod,
			&o.Total,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, &o)
		orderIDs = append(orderIDs, o.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.attachItems(ctx, orders, orderIDs); err != nil {
		log.Error("attach items failed", zap.Error(err))
		return nil, err
	}

	return orders, nil
}

func (r *repository) attachItems(ctx context.Context, orders []*Order, orderIDs []int64) error {
	query := `
	SELECT
		oi.id,
		oi.order_id,
		oi.product_id,
		p.name,
		oi.quantity,
		oi.price
	FROM order_items oi
	JOIN products p ON oi.product_id = p.id
	WHERE oi.order_id = ANY($1)
	ORDER BY oi.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(orderIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[int64]*Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return rows.Err()
}

func (r *repository) GetOrderByID(ctx context.Context, orderID int64) (*Order, error) {
	query := `
	SELECT
		id,
		user_id,
		status,
		payment_method,
		total,
		created_at,
		updated_at
	FROM orders
	WHERE id = $1
	`

	var o Order
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&o.ID,
		&o.UserID,
		&o.Status,
		&o.PaymentMethod,
		&o.Total,
		&o.CreatedAt,
		&o.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o.Items = []OrderItem{}
	if err := r.attachItems(ctx, []*Order{&o}, []int64{o.ID}); err != nil {
		return nil, err
	}

	return &o, nil
}
