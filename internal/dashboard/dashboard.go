package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"pashen/inventory-console/internal/api"
	"pashen/inventory-console/internal/service"
)

type Stat struct {
	Title string
	Value string
	Meta  string
}

type ScheduleItem struct {
	Time   string
	Label  string
	Detail string
}

type AlertRow struct {
	Label    string
	Value    string
	Emphasis bool
}

type ProductRow struct {
	Code   string
	Name   string
	Stock  int
	Min    int
	Status string
}

// Dashboard aggregates three independent report requests into display-ready
// state. The token is read once per refresh; a login landing mid-refresh can
// mix pre- and post-login data, which is an accepted inconsistency window.
type Dashboard struct {
	reports  *service.Reports
	products *service.Products
	token    func() string

	mu           sync.Mutex
	loading      bool
	errorMessage string
	stats        []Stat
	productRows  []ProductRow
	alertRows    []AlertRow
	schedule     []ScheduleItem
}

func New(reports *service.Reports, products *service.Products, token func() string) *Dashboard {
	if token == nil {
		token = func() string { return "" }
	}
	return &Dashboard{reports: reports, products: products, token: token}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func formatTime(value string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Local().Format("15:04")
		}
	}
	return value
}

var opLabels = map[string]string{
	"in":     "入库",
	"out":    "出库",
	"adjust": "调整",
}

func scheduleItem(op service.InventoryReportOperation) ScheduleItem {
	label, ok := opLabels[op.OpType]
	if !ok {
		label = "操作"
	}
	detail := fmt.Sprintf("商品 #%d", op.ProductID)
	if op.Reason != nil && *op.Reason != "" {
		detail = *op.Reason
	}
	return ScheduleItem{
		Time:   formatTime(op.CreatedAt),
		Label:  fmt.Sprintf("%s · 数量 %d", label, op.Quantity),
		Detail: detail,
	}
}

func productRow(item service.Product) ProductRow {
	row := ProductRow{
		Code:   item.ProductCode,
		Name:   item.ProductName,
		Status: "未知",
	}
	if item.Stock != nil {
		row.Stock = *item.Stock
	}
	if item.MinStock != nil {
		row.Min = *item.MinStock
	}
	if item.Status != nil && *item.Status != "" {
		row.Status = *item.Status
	}
	return row
}

func alertRowsFrom(alerts *service.InventoryAlerts) []AlertRow {
	rows := []AlertRow{
		{Label: "低库存品类", Value: fmt.Sprint(alerts.LowStockCount), Emphasis: true},
		{Label: "高库存品类", Value: fmt.Sprint(alerts.HighStockCount), Emphasis: true},
		{Label: "告警总数", Value: fmt.Sprint(alerts.TotalAlerts), Emphasis: false},
	}

	top := alerts.Items
	if len(top) > 3 {
		top = top[:3]
	}
	for _, item := range top {
		name := "未知"
		if item.ProductName != nil && *item.ProductName != "" {
			name = *item.ProductName
		}
		code := "-"
		if item.ProductCode != nil && *item.ProductCode != "" {
			code = *item.ProductCode
		}
		stock := 0
		if item.Stock != nil {
			stock = *item.Stock
		}
		rows = append(rows, AlertRow{
			Label:    fmt.Sprintf("%s (%s)", name, code),
			Value:    fmt.Sprint(stock),
			Emphasis: true,
		})
	}

	return rows
}

func statsFrom(summary service.InventoryReportSummary) []Stat {
	return []Stat{
		{Title: "今日入库", Value: fmt.Sprintf("+%d", summary.TotalIn), Meta: "单位：件"},
		{Title: "今日出库", Value: fmt.Sprintf("-%d", summary.TotalOut), Meta: "单位：件"},
		{Title: "调整操作", Value: fmt.Sprint(summary.TotalAdjust), Meta: "单位：件"},
	}
}

// Refresh issues the three requests concurrently and joins them all-settled:
// each slot succeeds or fails on its own, and failures only downgrade to a
// warning naming the slot. Partial success is not total failure.
func (d *Dashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.loading = true
	d.errorMessage = ""
	d.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	token := d.token()

	var (
		wg          sync.WaitGroup
		report      *service.InventoryReport
		reportErr   error
		alerts      *service.InventoryAlerts
		alertsErr   error
		productPage *api.Paginated[service.Product]
		productErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		report, reportErr = d.reports.FetchInventoryReport(ctx, today, token)
	}()
	go func() {
		defer wg.Done()
		alerts, alertsErr = d.reports.FetchInventoryAlerts(ctx, token)
	}()
	go func() {
		defer wg.Done()
		productPage, productErr = d.products.FetchProducts(ctx, service.ProductQuery{Page: 1, Size: 5}, "")
	}()
	wg.Wait()

	var warnings []string

	d.mu.Lock()
	defer d.mu.Unlock()

	if reportErr == nil {
		d.stats = statsFrom(report.Summary)
		ops := report.StockOperations
		if len(ops) > 5 {
			ops = ops[:5]
		}
		schedule := make([]ScheduleItem, 0, len(ops))
		for _, op := range ops {
			schedule = append(schedule, scheduleItem(op))
		}
		d.schedule = schedule
	} else {
		warnings = append(warnings, "库存报表")
	}

	if alertsErr == nil {
		d.alertRows = alertRowsFrom(alerts)
	} else {
		warnings = append(warnings, "库存预警")
	}

	if productErr == nil {
		items := productPage.Items
		if len(items) > 5 {
			items = items[:5]
		}
		rows := make([]ProductRow, 0, len(items))
		for _, item := range items {
			rows = append(rows, productRow(item))
		}
		d.productRows = rows
	} else {
		warnings = append(warnings, "商品列表")
	}

	if len(warnings) > 0 {
		d.errorMessage = strings.Join(warnings, "、") + " 拉取失败，可以检查接口或登录状态。"
	}

	d.loading = false
}

func (d *Dashboard) Stats() []Stat {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Dashboard) Schedule() []ScheduleItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.schedule
}

func (d *Dashboard) Alerts() []AlertRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alertRows
}

func (d *Dashboard) Products() []ProductRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.productRows
}

func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

func (d *Dashboard) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errorMessage
}

// HasData reports whether any slot currently holds data, for empty-state
// rendering.
func (d *Dashboard) HasData() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.stats) > 0 || len(d.productRows) > 0 || len(d.alertRows) > 0
}
