package service

import (
	"context"

	"pashen/inventory-console/internal/api"
)

type OrderType string

const (
	OrderPurchase OrderType = "purchase"
	OrderSale     OrderType = "sale"
	OrderReturn   OrderType = "return"
	OrderTransfer OrderType = "transfer"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

type Order struct {
	OrderID     string       `json:"order_id"`
	OrderType   OrderType    `json:"order_type"`
	Status      *OrderStatus `json:"status,omitempty"`
	TotalAmount *float64     `json:"total_amount,omitempty"`
	CreatedAt   *string      `json:"created_at,omitempty"`
	UpdatedAt   *string      `json:"updated_at,omitempty"`
}

type OrderQuery struct {
	Page      int
	Size      int
	Keyword   string
	OrderType OrderType
	Status    OrderStatus
	StartDate string
	EndDate   string
}

func (q OrderQuery) values() api.Query {
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
	if q.OrderType != "" {
		query["order_type"] = string(q.OrderType)
	}
	if q.Status != "" {
		query["status"] = string(q.Status)
	}
	if q.StartDate != "" {
		query["start_date"] = q.StartDate
	}
	if q.EndDate != "" {
		query["end_date"] = q.EndDate
	}
	return query
}

// Orders is read-only in this surface.
type Orders struct {
	client *api.Client
}

func NewOrders(client *api.Client) *Orders {
	return &Orders{client: client}
}

func (s *Orders) FetchOrders(ctx context.Context, token string, query OrderQuery) (*api.Paginated[Order], error) {
	resp, err := api.Request[api.Paginated[Order]](ctx, s.client, "/api/orders", api.Options{
		Token: token,
		Query: query.values(),
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
