package service

import (
	"context"
	"fmt"
	"net/http"

	"pashen/inventory-console/internal/api"
)

type Product struct {
	ProductID       int      `json:"product_id"`
	ProductCode     string   `json:"product_code"`
	ProductName     string   `json:"product_name"`
	CategoryID      *int     `json:"category_id,omitempty"`
	CategoryName    *string  `json:"category_name,omitempty"`
	SupplierID      *int     `json:"supplier_id,omitempty"`
	SupplierName    *string  `json:"supplier_name,omitempty"`
	PurchasePrice   *float64 `json:"purchase_price,omitempty"`
	SalePrice       *float64 `json:"sale_price,omitempty"`
	Stock           *int     `json:"stock,omitempty"`
	MinStock        *int     `json:"min_stock,omitempty"`
	MaxStock        *int     `json:"max_stock,omitempty"`
	StorageLocation *string  `json:"storage_location,omitempty"`
	Status          *string  `json:"status,omitempty"`
	CreatedAt       *string  `json:"created_at,omitempty"`
	UpdatedAt       *string  `json:"updated_at,omitempty"`
}

type ProductDetail struct {
	Product
	CreatedBy   *int    `json:"created_by,omitempty"`
	UpdatedBy   *int    `json:"updated_by,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ProductStockSnapshot struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
	MaxStock    int     `json:"max_stock"`
	Status      *string `json:"status,omitempty"`
}

type ProductQuery struct {
	Page       int
	Size       int
	Status     string
	CategoryID int
	SupplierID int
	Keyword    string
}

func (q ProductQuery) values() api.Query {
	query := api.Query{}
	if q.Page > 0 {
		query["page"] = q.Page
	}
	if q.Size > 0 {
		query["size"] = q.Size
	}
	if q.Status != "" {
		query["status"] = q.Status
	}
	if q.CategoryID > 0 {
		query["category_id"] = q.CategoryID
	}
	if q.SupplierID > 0 {
		query["supplier_id"] = q.SupplierID
	}
	if q.Keyword != "" {
		query["keyword"] = q.Keyword
	}
	return query
}

type ProductPayload struct {
	ProductCode     string  `json:"product_code"`
	ProductName     string  `json:"product_name"`
	CategoryID      *int    `json:"category_id,omitempty"`
	SupplierID      *int    `json:"supplier_id,omitempty"`
	PurchasePrice   float64 `json:"purchase_price"`
	SalePrice       float64 `json:"sale_price"`
	MinStock        *int    `json:"min_stock,omitempty"`
	MaxStock        *int    `json:"max_stock,omitempty"`
	StorageLocation *string `json:"storage_location,omitempty"`
}

// ProductUpdatePayload is a partial payload: only supplied fields change.
type ProductUpdatePayload struct {
	ProductCode     *string  `json:"product_code,omitempty"`
	ProductName     *string  `json:"product_name,omitempty"`
	CategoryID      *int     `json:"category_id,omitempty"`
	SupplierID      *int     `json:"supplier_id,omitempty"`
	PurchasePrice   *float64 `json:"purchase_price,omitempty"`
	SalePrice       *float64 `json:"sale_price,omitempty"`
	MinStock        *int     `json:"min_stock,omitempty"`
	MaxStock        *int     `json:"max_stock,omitempty"`
	StorageLocation *string  `json:"storage_location,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

type ProductIdentifier struct {
	ProductID int `json:"product_id"`
}

type ProductDeleteResult struct {
	ProductID int     `json:"product_id"`
	Message   *string `json:"message,omitempty"`
}

// Products maps the /api/products endpoints. Reads accept an optional token;
// mutations require one.
type Products struct {
	client *api.Client
}

func NewProducts(client *api.Client) *Products {
	return &Products{client: client}
}

func (s *Products) FetchProducts(ctx context.Context, query ProductQuery, token string) (*api.Paginated[Product], error) {
	resp, err := api.Request[api.Paginated[Product]](ctx, s.client, "/api/products", api.Options{
		Query: query.values(),
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Products) GetProduct(ctx context.Context, productID int, token string) (*ProductDetail, error) {
	resp, err := api.Request[ProductDetail](ctx, s.client, fmt.Sprintf("/api/products/%d", productID), api.Options{
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Products) GetProductStock(ctx context.Context, productID int, token string) (*ProductStockSnapshot, error) {
	resp, err := api.Request[ProductStockSnapshot](ctx, s.client, fmt.Sprintf("/api/products/%d/stock", productID), api.Options{
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Products) CreateProduct(ctx context.Context, token string, payload ProductPayload) (*ProductIdentifier, error) {
	resp, err := api.Request[ProductIdentifier](ctx, s.client, "/api/products", api.Options{
		Method: http.MethodPost,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Products) UpdateProduct(ctx context.Context, productID int, token string, payload ProductUpdatePayload) (*ProductDetail, error) {
	resp, err := api.Request[ProductDetail](ctx, s.client, fmt.Sprintf("/api/products/%d", productID), api.Options{
		Method: http.MethodPut,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Products) DeleteProduct(ctx context.Context, productID int, token string) (*ProductDeleteResult, error) {
	resp, err := api.Request[ProductDeleteResult](ctx, s.client, fmt.Sprintf("/api/products/%d", productID), api.Options{
		Method: http.MethodDelete,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
