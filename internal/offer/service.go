package offer

import (
	"context"
	"time"
)

// Service exposes the live promotions. Liveness is re-evaluated on every
// read; it is never stored.
type Service interface {
	ListLiveOffers(ctx context.Context) ([]*Offer, error)
	GetOffer(ctx context.Context, offerID int64) (*Offer, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListLiveOffers(ctx context.Context) ([]*Offer, error) {
	offers, err := s.repo.GetOffers(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	live := make([]*Offer, 0, len(offers))
	for _, o := range offers {
		if o.IsLive(now) {
			live = append(live, o)
		}
	}

	return live, nil
}

func (s *service) GetOffer(ctx context.Context, offerID int64) (*Offer, error) {
	if offerID <= 0 {
		return nil, ErrOfferNotFound
	}

	o, err := s.repo.GetOfferByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOfferNotFound
	}

	return o, nil
}
