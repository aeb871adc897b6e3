package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Service interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProduct(ctx context.Context, product *Product) (*Product, error) {
	id, err := s.repo.Create(ctx, product)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create product in repository")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = id
	return product, nil
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products in repository")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *service) GetProductByID(ctx context.Context, id int64) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Int64("product_id", id).Msg("Failed to get product in repository")
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, product *Product) error {
	err := s.repo.Update(ctx, product)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Int64("product_id", product.ID).Msg("Failed to update product in repository")
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.Error().Err(err).Int64("product_id", id).Msg("Failed to delete product in repository")
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
