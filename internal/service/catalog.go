package service

import (
	"context"
	"fmt"
	"net/http"

	"pashen/inventory-console/internal/api"
)

type Category struct {
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Description  *string `json:"description,omitempty"`
	ProductCount *int    `json:"product_count,omitempty"`
	TotalStock   *int    `json:"total_stock,omitempty"`
	CreatedAt    *string `json:"created_at,omitempty"`
	UpdatedAt    *string `json:"updated_at,omitempty"`
}

type Supplier struct {
	SupplierID    int     `json:"supplier_id"`
	SupplierName  string  `json:"supplier_name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	ProductCount  *int    `json:"product_count,omitempty"`
	TotalStock    *int    `json:"total_stock,omitempty"`
	CreatedAt     *string `json:"created_at,omitempty"`
	UpdatedAt     *string `json:"updated_at,omitempty"`
}

type CatalogQuery struct {
	Page    int
	Size    int
	Keyword string
}

func (q CatalogQuery) values() api.Query {
	query := api.Query{}
	if q.Page > 0 {
		query["page"] = q.Page
	}
	if q.Size > 0 {
		query["size"] = q.Size
	}
	if q.Keyword != "" {
		query["keyword"] = q.Keyword
	}
	return query
}

type CategoryPayload struct {
	CategoryName string  `json:"category_name"`
	Description  *string `json:"description,omitempty"`
}

type SupplierPayload struct {
	SupplierName  string  `json:"supplier_name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
}

type CategoryIdentifier struct {
	CategoryID int `json:"category_id"`
}

type SupplierIdentifier struct {
	SupplierID int `json:"supplier_id"`
}

// Catalog maps the category and supplier endpoints. List endpoints are
// unauthenticated; mutations require a token.
type Catalog struct {
	client *api.Client
}

func NewCatalog(client *api.Client) *Catalog {
	return &Catalog{client: client}
}

func (s *Catalog) FetchCategories(ctx context.Context, query CatalogQuery) (*api.Paginated[Category], error) {
	resp, err := api.Request[api.Paginated[Category]](ctx, s.client, "/api/categories", api.Options{
		Query: query.values(),
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Catalog) FetchSuppliers(ctx context.Context, query CatalogQuery) (*api.Paginated[Supplier], error) {
	resp, err := api.Request[api.Paginated[Supplier]](ctx, s.client, "/api/suppliers", api.Options{
		Query: query.values(),
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Catalog) CreateCategory(ctx context.Context, token string, payload CategoryPayload) (*CategoryIdentifier, error) {
	resp, err := api.Request[CategoryIdentifier](ctx, s.client, "/api/categories", api.Options{
		Method: http.MethodPost,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Catalog) UpdateCategory(ctx context.Context, categoryID int, token string, payload CategoryPayload) (*Category, error) {
	resp, err := api.Request[Category](ctx, s.client, fmt.Sprintf("/api/categories/%d", categoryID), api.Options{
		Method: http.MethodPut,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Catalog) DeleteCategory(ctx context.Context, categoryID int, token string) (*CategoryIdentifier, error) {
	resp, err := api.Request[CategoryIdentifier](ctx, s.client, fmt.Sprintf("/api/categories/%d", categoryID), api.Options{
		Method: http.MethodDelete,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Catalog) CreateSupplier(ctx context.Context, token string, payload SupplierPayload) (*SupplierIdentifier, error) {
	resp, err := api.Request[SupplierIdentifier](ctx, s.client, "/api/suppliers", api.Options{
		Method: http.MethodPost,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Catalog) UpdateSupplier(ctx context.Context, supplierID int, token string, payload SupplierPayload) (*Supplier, error) {
	resp, err := api.Request[Supplier](ctx, s.client, fmt.Sprintf("/api/suppliers/%d", supplierID), api.Options{
		Method: http.MethodPut,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Catalog) DeleteSupplier(ctx context.Context, supplierID int, token string) (*SupplierIdentifier, error) {
	resp, err := api.Request[SupplierIdentifier](ctx, s.client, fmt.Sprintf("/api/suppliers/%d", supplierID), api.Options{
		Method: http.MethodDelete,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
