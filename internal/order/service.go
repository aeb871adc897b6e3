package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrMissingFields is returned when a create or update arrives without the
// required non-zero references.
var ErrMissingFields = errors.New("product id and quantity are required")

type Service interface {
	// CreateOrder inserts a NEW order owned by the authenticated user and
	// returns it together with a best-effort product snapshot from the
	// catalog (nil when the catalog did not answer).
	CreateOrder(ctx context.Context, userID, productID, quantity int64) (*Order, *ProductInfo, error)
	ListOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	UpdateOrder(ctx context.Context, order *Order) error
	DeleteOrder(ctx context.Context, id int64) error
}

type service struct {
	repo    Repository
	catalog CatalogClient
}

func NewService(repo Repository, catalog CatalogClient) Service {
	return &service{repo: repo, catalog: catalog}
}

func (s *service) CreateOrder(ctx context.Context, userID, productID, quantity int64) (*Order, *ProductInfo, error) {
	// Presence only: quantity positivity is deliberately not enforced.
	if productID == 0 || quantity == 0 {
		return nil, nil, ErrMissingFields
	}

	o := &Order{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Status:    StatusNew,
	}

	id, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create order in repository")
		return nil, nil, fmt.Errorf("failed to create order: %w", err)
	}
	o.ID = id

	// The product is not verified to exist before the insert; the catalog
	// call only enriches the response and must never fail the creation.
	var info *ProductInfo
	if s.catalog != nil {
		info, err = s.catalog.GetProduct(ctx, productID)
		if err != nil {
			log.Warn().Err(err).Int64("product_id", productID).
				Msg("Catalog enrichment failed, returning order without product info")
			info = nil
		}
	}

	return o, info, nil
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders in repository")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *service) GetOrderByID(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int64("order_id", id).Msg("Failed to get order in repository")
		return nil, fmt.Errorf("failed to get order by id %d: %w", id, err)
	}
	return o, nil
}

func (s *service) UpdateOrder(ctx context.Context, order *Order) error {
	if order.UserID == 0 || order.ProductID == 0 || order.Quantity == 0 || order.Status == "" {
		return ErrMissingFields
	}

	if err := s.repo.Update(ctx, order); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Int64("order_id", order.ID).Msg("Failed to update order in repository")
		return fmt.Errorf("failed to update order %d: %w", order.ID, err)
	}
	return nil
}

func (s *service) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Int64("order_id", id).Msg("Failed to delete order in repository")
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return nil
}
