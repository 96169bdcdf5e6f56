package service

import (
	"context"

	"pashen/inventory-console/internal/api"
)

type InventoryAlertItem struct {
	ProductID   *int    `json:"product_id,omitempty"`
	ProductName *string `json:"product_name,omitempty"`
	ProductCode *string `json:"product_code,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	MinStock    *int    `json:"min_stock,omitempty"`
	MaxStock    *int    `json:"max_stock,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type InventoryAlerts struct {
	LowStockCount  int                  `json:"low_stock_count"`
	HighStockCount int                  `json:"high_stock_count"`
	TotalAlerts    int                  `json:"total_alerts"`
	Items          []InventoryAlertItem `json:"items"`
}

type InventoryReportSummary struct {
	TotalProducts int `json:"total_products"`
	TotalIn       int `json:"total_in"`
	TotalOut      int `json:"total_out"`
	TotalAdjust   int `json:"total_adjust"`
}

type InventoryReportOperation struct {
	OpID      int     `json:"op_id"`
	ProductID int     `json:"product_id"`
	OpType    string  `json:"op_type"`
	Quantity  int     `json:"quantity"`
	CreatedAt string  `json:"created_at"`
	Reason    *string `json:"reason,omitempty"`
	OrderID   *string `json:"order_id,omitempty"`
}

type StockLevel struct {
	ProductID int `json:"product_id"`
	Stock     int `json:"stock"`
}

type InventoryReport struct {
	ReportDate      string                     `json:"report_date"`
	Summary         InventoryReportSummary     `json:"summary"`
	StockSummary    []StockLevel               `json:"stock_summary"`
	StockOperations []InventoryReportOperation `json:"stock_operations"`
}

// Reports maps the dashboard report endpoints. Both are optionally
// authenticated: an empty token just omits the Authorization header.
type Reports struct {
	client *api.Client
}

func NewReports(client *api.Client) *Reports {
	return &Reports{client: client}
}

func (s *Reports) FetchInventoryAlerts(ctx context.Context, token string) (*InventoryAlerts, error) {
	resp, err := api.Request[InventoryAlerts](ctx, s.client, "/api/reports/inventory_alerts", api.Options{
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Reports) FetchInventoryReport(ctx context.Context, date, token string) (*InventoryReport, error) {
	resp, err := api.Request[InventoryReport](ctx, s.client, "/api/reports/inventory_report", api.Options{
		Query: api.Query{"date": date},
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
