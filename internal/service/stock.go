package service

import (
	"context"
	"fmt"
	"net/http"

	"pashen/inventory-console/internal/api"
)

type StockOperationType string

const (
	StockIn       StockOperationType = "in"
	StockOut      StockOperationType = "out"
	StockAdjust   StockOperationType = "adjust"
	StockTransfer StockOperationType = "transfer"
)

// StockOperation is an immutable ledger entry. The client only ever appends
// through the in/out/adjust calls; resulting stock levels must be fetched
// separately via the product stock snapshot.
type StockOperation struct {
	OpID           int                `json:"op_id"`
	ProductID      int                `json:"product_id"`
	ProductCode    *string            `json:"product_code,omitempty"`
	ProductName    *string            `json:"product_name,omitempty"`
	OpType         StockOperationType `json:"op_type"`
	Quantity       int                `json:"quantity"`
	StockBefore    int                `json:"stock_before"`
	StockAfter     int                `json:"stock_after"`
	UnitPrice      *float64           `json:"unit_price,omitempty"`
	TotalPrice     *float64           `json:"total_price,omitempty"`
	OperationDate  *string            `json:"operation_date,omitempty"`
	CreatedAt      *string            `json:"created_at,omitempty"`
	OperatorID     *int               `json:"operator_id,omitempty"`
	OperatorAction *string            `json:"operator_action,omitempty"`
	OrderID        *string            `json:"order_id,omitempty"`
	Reason         *string            `json:"reason,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
}

type StockOperationQuery struct {
	Page      int
	Size      int
	ProductID int
	Type      StockOperationType
	Keyword   string
	StartDate string
	EndDate   string
}

func (q StockOperationQuery) values() api.Query {
	query := api.Query{}
	if q.Page > 0 {
		query["page"] = q.Page
	}
	if q.Size > 0 {
		query["size"] = q.Size
	}
	if q.ProductID > 0 {
		query["product_id"] = q.ProductID
	}
	if q.Type != "" {
		query["type"] = string(q.Type)
	}
	if q.Keyword != "" {
		query["keyword"] = q.Keyword
	}
	if q.StartDate != "" {
		query["start_date"] = q.StartDate
	}
	if q.EndDate != "" {
		query["end_date"] = q.EndDate
	}
	return query
}

type StockMovePayload struct {
	ProductID int      `json:"product_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
	OrderID   *string  `json:"order_id,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

// StockAdjustPayload carries an absolute new stock value, not a delta.
type StockAdjustPayload struct {
	ProductID int     `json:"product_id"`
	NewStock  int     `json:"new_stock"`
	Reason    *string `json:"reason,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

type StockOperationID struct {
	OpID int `json:"op_id"`
}

type Stock struct {
	client *api.Client
}

func NewStock(client *api.Client) *Stock {
	return &Stock{client: client}
}

func (s *Stock) FetchOperations(ctx context.Context, token string, query StockOperationQuery) (*api.Paginated[StockOperation], error) {
	resp, err := api.Request[api.Paginated[StockOperation]](ctx, s.client, "/api/stock/operations", api.Options{
		Token: token,
		Query: query.values(),
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Stock) GetOperation(ctx context.Context, token string, opID int) (*StockOperation, error) {
	resp, err := api.Request[StockOperation](ctx, s.client, fmt.Sprintf("/api/stock/operations/%d", opID), api.Options{
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Stock) In(ctx context.Context, token string, payload StockMovePayload) (*StockOperationID, error) {
	return s.move(ctx, token, "/api/stock/in", payload)
}

func (s *Stock) Out(ctx context.Context, token string, payload StockMovePayload) (*StockOperationID, error) {
	return s.move(ctx, token, "/api/stock/out", payload)
}

func (s *Stock) move(ctx context.Context, token, path string, payload StockMovePayload) (*StockOperationID, error) {
	resp, err := api.Request[StockOperationID](ctx, s.client, path, api.Options{
		Method: http.MethodPost,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Stock) Adjust(ctx context.Context, token string, payload StockAdjustPayload) (*StockOperationID, error) {
	resp, err := api.Request[StockOperationID](ctx, s.client, "/api/stock/adjust", api.Options{
		Method: http.MethodPost,
		Token:  token,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
