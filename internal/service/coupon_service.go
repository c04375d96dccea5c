package service

import (
	"context"
	"strings"

	"pizza-pos/internal/apperr"
	"pizza-pos/internal/models"
	"pizza-pos/internal/store"
	"pizza-pos/internal/util"

	"go.uber.org/zap"
)

// CouponService manages discount codes. Coupons are recorded on orders
// verbatim; no discount is applied to the totals.
type CouponService struct {
	src    store.Source
	logger *zap.Logger
}

// NewCouponService creates a new coupon service
func NewCouponService(src store.Source) *CouponService {
	return &CouponService{src: src, logger: util.GetLogger()}
}

// List returns all coupons
func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	coupons, err := s.src.ListCoupons(ctx)
	if err != nil {
		return nil, apperr.Submission("failed to load coupons").WithError(err)
	}
	return coupons, nil
}

// Create validates the draft and stores a new coupon
func (s *CouponService) Create(ctx context.Context, draft models.CouponDraft) (*models.Coupon, error) {
	draft.Code = strings.TrimSpace(draft.Code)
	if draft.Code == "" {
		return nil, apperr.Validation("coupon code is required")
	}
	if draft.DiscountPct < 1 || draft.DiscountPct > 100 {
		return nil, apperr.Validation("coupon discount must be between 1 and 100 percent")
	}

	coupon, err := s.src.CreateCoupon(ctx, draft)
	if err != nil {
		return nil, apperr.Submission("failed to create coupon").WithError(err)
	}

	s.logger.Info("Coupon created",
		zap.Int64("coupon_id", coupon.ID),
		zap.String("code", coupon.Code))
	return coupon, nil
}
