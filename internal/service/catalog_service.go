package service

import (
	"context"
	"errors"
	"strings"

	"pizza-pos/internal/apperr"
	"pizza-pos/internal/cart"
	"pizza-pos/internal/models"
	"pizza-pos/internal/redisclient"
	"pizza-pos/internal/store"
	"pizza-pos/internal/util"

	"go.uber.org/zap"
)

// CatalogService owns the product catalog. All reads and mutations route
// through the active source; the cart is notified when a product it holds is
// updated or deleted.
type CatalogService struct {
	src    store.Source
	cache  *redisclient.Client
	cart   *cart.Cart
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service. cache may be nil in
// fallback mode.
func NewCatalogService(src store.Source, cache *redisclient.Client, c *cart.Cart) *CatalogService {
	return &CatalogService{
		src:    src,
		cache:  cache,
		cart:   c,
		logger: util.GetLogger(),
	}
}

// List returns all products from the active source, reading through the
// catalog cache when one is configured.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.List")
	defer span.End()

	if s.cache != nil {
		products, ok, err := s.cache.GetCatalog(ctx)
		if err != nil {
			s.logger.Warn("Catalog cache read failed", zap.Error(err))
		} else if ok {
			util.CatalogCacheHits.WithLabelValues("hit").Inc()
			return products, nil
		}
		util.CatalogCacheHits.WithLabelValues("miss").Inc()
	}

	products, err := s.src.ListProducts(ctx)
	if err != nil {
		return nil, apperr.Submission("failed to load products").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, products); err != nil {
			s.logger.Warn("Catalog cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

// Create validates the draft and adds it to the catalog
func (s *CatalogService) Create(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.Create")
	defer span.End()

	draft.Name = strings.TrimSpace(draft.Name)
	if err := validateProduct(draft.Name, draft.Description, draft.Price); err != nil {
		util.CatalogMutationsFailed.WithLabelValues("validation").Inc()
		return nil, err
	}

	product, err := s.src.CreateProduct(ctx, draft)
	if err != nil {
		util.CatalogMutationsFailed.WithLabelValues("source").Inc()
		return nil, apperr.Submission("failed to create product").WithError(err)
	}

	util.ProductsCreatedTotal.Inc()
	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	s.invalidate(ctx)
	return product, nil
}

// Update validates and replaces an existing product. The cart line holding
// this product, if any, has its snapshot refreshed with quantity unchanged.
func (s *CatalogService) Update(ctx context.Context, product models.Product) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.Update")
	defer span.End()

	product.Name = strings.TrimSpace(product.Name)
	if err := validateProduct(product.Name, product.Description, product.Price); err != nil {
		util.CatalogMutationsFailed.WithLabelValues("validation").Inc()
		return nil, err
	}

	updated, err := s.src.UpdateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("product not found").WithError(err)
		}
		util.CatalogMutationsFailed.WithLabelValues("source").Inc()
		return nil, apperr.Submission("failed to update product").WithError(err)
	}

	s.cart.RefreshProduct(*updated)
	s.invalidate(ctx)
	return updated, nil
}

// Delete removes a product from the catalog and drops its cart line, if any
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "CatalogService.Delete")
	defer span.End()

	if err := s.src.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("product not found").WithError(err)
		}
		util.CatalogMutationsFailed.WithLabelValues("source").Inc()
		return apperr.Submission("failed to delete product").WithError(err)
	}

	util.ProductsDeletedTotal.Inc()
	s.cart.DropProduct(id)
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		s.logger.Warn("Catalog cache invalidation failed", zap.Error(err))
	}
}

func validateProduct(name, description string, price float64) error {
	if name == "" {
		return apperr.Validation("product name is required")
	}
	if len(name) > models.MaxNameLength {
		return apperr.Validation("product name is too long")
	}
	if len(description) > models.MaxDescriptionLength {
		return apperr.Validation("product description is too long")
	}
	if price <= 0 {
		return apperr.Validation("product price must be positive")
	}
	return nil
}
