package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pashen/inventory-console/internal/api"
)

type CatalogOverview struct {
	Categories api.Paginated[Category]
	Suppliers  api.Paginated[Supplier]
}

// FetchOverview loads categories and suppliers concurrently. Unlike the
// dashboard fan-out this one fails fast: a catalog page without both halves
// is useless.
func (s *Catalog) FetchOverview(ctx context.Context, query CatalogQuery) (*CatalogOverview, error) {
	g, ctx := errgroup.WithContext(ctx)
	var overview CatalogOverview

	g.Go(func() error {
		page, err := s.FetchCategories(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to fetch categories: %w", err)
		}
		overview.Categories = *page
		return nil
	})

	g.Go(func() error {
		page, err := s.FetchSuppliers(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to fetch suppliers: %w", err)
		}
		overview.Suppliers = *page
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &overview, nil
}
