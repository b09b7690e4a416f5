package offer

import (
	"context"
	"database/sql"
	"fmt"

	"boutique-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetOffers(ctx context.Context) ([]*Offer, error)
	GetOfferByID(ctx context.Context, offerID int64) (*Offer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOffers(ctx context.Context) ([]*Offer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOffers"),
	)

	query := `
	SELECT
		id,
		name,
		description,
		discount_kind,
		discount_value,
		starts_at,
		ends_at,
		image_url,
		active
	FROM offers
	ORDER BY starts_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	offers := make([]*Offer, 0)
	offerIDs := make([]int64, 0)

	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.Description,
			&o.DiscountKind,
			&o.DiscountValue,
			&o.StartsAt,
			&o.EndsAt,
			&o.ImageURL,
			&o.Active,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		o.ProductIDs = []int64{}
		offers = append(offers, &o)
		offerIDs = append(offerIDs, o.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(offers) == 0 {
		return offers, nil
	}

	// Attach applicable products in one pass
	if err := r.attachProducts(ctx, offers, offerIDs); err != nil {
		log.Error("attach products failed", zap.Error(err))
		return nil, err
	}

	return offers, nil
}

func (r *repository) attachProducts(ctx context.Context, offers []*Offer, offerIDs []int64) error {
	query := `
	SELECT offer_id, product_id
	FROM offer_products
	WHERE offer_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(offerIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[int64]*Offer, len(offers))
	for _, o := range offers {
		byID[o.ID] = o
	}

	for rows.Next() {
		var offerID, productID int64
		if err := rows.Scan(&offerID, &productID); err != nil {
			return err
		}
		if o, ok := byID[offerID]; ok {
			o.ProductIDs = append(o.ProductIDs, productID)
		}
	}

	return rows.Err()
}

func (r *repository) GetOfferByID(ctx context.Context, offerID int64) (*Offer, error) {
	query := `
	SELECT
		id,
		name,
		description,
		discount_kind,
		discount_value,
		starts_at,
		ends_at,
		image_url,
		active
	FROM offers
	WHERE id = $1
	`

	var o Offer
	err := r.db.QueryRowContext(ctx, query, offerID).Scan(
		&o.ID,
		&o.Name,
		&o.Description,
		&o.DiscountKind,
		&o.DiscountValue,
		&o.StartsAt,
		&o.EndsAt,
		&o.ImageURL,
		&o.Active,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get offer failed: %w", err)
	}

	o.ProductIDs = []int64{}
	if err := r.attachProducts(ctx, []*Offer{&o}, []int64{o.ID}); err != nil {
		return nil, err
	}

	return &o, nil
}
