package services

import (
	"context"
	"errors"
	"fmt"

	"studio-api/internal/logger"
	"studio-api/internal/models"
	"studio-api/internal/storage"
)

var (
	ErrOfferNotFound         = errors.New("offer not found")
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrTestimonialNotFound   = errors.New("testimonial not found")
)

// CatalogService manages the public site content: offers, the portfolio
// gallery and testimonials. Public reads see only active entries, the admin
// dashboard sees everything.
type CatalogService struct {
	store storage.Store
	log   *logger.Logger
}

func NewCatalogService(store storage.Store, log *logger.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

// --- Offers ---

func (s *CatalogService) ListOffers(ctx context.Context, activeOnly bool) ([]*models.Offer, error) {
	offers, err := s.store.ListOffers(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

func (s *CatalogService) CreateOffer(ctx context.Context, offer *models.Offer) error {
	if offer.Title == "" {
		return models.ValidationErrors{"title": "Title is required"}
	}
	if err := s.store.SaveOffer(ctx, offer); err != nil {
		return fmt.Errorf("failed to save offer: %w", err)
	}
	s.log.LogProcess("CATALOG", fmt.Sprintf("offer %d created: %s", offer.ID, offer.Title))
	return nil
}

func (s *CatalogService) UpdateOffer(ctx context.Context, offer *models.Offer) error {
	if err := s.store.UpdateOffer(ctx, offer); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrOfferNotFound
		}
		return fmt.Errorf("failed to update offer: %w", err)
	}
	return nil
}

func (s *CatalogService) DeleteOffer(ctx context.Context, id int64) error {
	if err := s.store.DeleteOffer(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrOfferNotFound
		}
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return nil
}

// --- Portfolio ---

func (s *CatalogService) ListPortfolioItems(ctx context.Context, opts models.PortfolioListOptions) ([]*models.PortfolioItem, error) {
	items, err := s.store.ListPortfolioItems(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}

func (s *CatalogService) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	errs := models.ValidationErrors{}
	if item.Title == "" {
		errs.Add("title", "Title is required")
	}
	if item.Category == "" {
		errs.Add("category", "Category is required")
	}
	if errs.Any() {
		return errs
	}
	if err := s.store.SavePortfolioItem(ctx, item); err != nil {
		return fmt.Errorf("failed to save portfolio item: %w", err)
	}
	s.log.LogProcess("CATALOG", fmt.Sprintf("portfolio item %d created: %s", item.ID, item.Title))
	return nil
}

func (s *CatalogService) UpdatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	if err := s.store.UpdatePortfolioItem(ctx, item); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPortfolioItemNotFound
		}
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}
	return nil
}

func (s *CatalogService) DeletePortfolioItem(ctx context.Context, id int64) error {
	if err := s.store.DeletePortfolioItem(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPortfolioItemNotFound
		}
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	return nil
}

// --- Testimonials ---

func (s *CatalogService) ListTestimonials(ctx context.Context, activeOnly bool) ([]*models.Testimonial, error) {
	testimonials, err := s.store.ListTestimonials(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *CatalogService) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	errs := models.ValidationErrors{}
	if testimonial.Name == "" {
		errs.Add("name", "Name is required")
	}
	if testimonial.Quote == "" {
		errs.Add("quote", "Quote is required")
	}
	if errs.Any() {
		return errs
	}
	if err := s.store.SaveTestimonial(ctx, testimonial); err != nil {
		return fmt.Errorf("failed to save testimonial: %w", err)
	}
	s.log.LogProcess("CATALOG", fmt.Sprintf("testimonial %d created: %s", testimonial.ID, testimonial.Name))
	return nil
}

func (s *CatalogService) UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	if err := s.store.UpdateTestimonial(ctx, testimonial); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	return nil
}

func (s *CatalogService) DeleteTestimonial(ctx context.Context, id int64) error {
	if err := s.store.DeleteTestimonial(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}
