package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pashen/inventory-console/internal/api"
	"pashen/inventory-console/internal/service"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestScheduleItem_Mapping(t *testing.T) {
	item := scheduleItem(service.InventoryReportOperation{
		OpID: 1, ProductID: 42, OpType: "in", Quantity: 5,
		CreatedAt: "2024-05-06T09:30:00Z",
	})

	assert.Equal(t, "入库 · 数量 5", item.Label)
	assert.Equal(t, "商品 #42", item.Detail)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}$`), item.Time)
}

func TestScheduleItem_ReasonWinsOverFallback(t *testing.T) {
	item := scheduleItem(service.InventoryReportOperation{
		ProductID: 42, OpType: "out", Quantity: 3,
		CreatedAt: "2024-05-06T10:00:00Z",
		Reason:    strPtr("门店调拨"),
	})

	assert.Equal(t, "出库 · 数量 3", item.Label)
	assert.Equal(t, "门店调拨", item.Detail)
}

func TestScheduleItem_UnknownTypeFallsBack(t *testing.T) {
	item := scheduleItem(service.InventoryReportOperation{
		ProductID: 7, OpType: "transfer", Quantity: 2,
		CreatedAt: "not-a-timestamp",
	})

	assert.Equal(t, "操作 · 数量 2", item.Label)
	// Unparseable timestamps pass through raw.
	assert.Equal(t, "not-a-timestamp", item.Time)
}

func TestAlertRows_FixedSummaryThenTopItems(t *testing.T) {
	rows := alertRowsFrom(&service.InventoryAlerts{
		LowStockCount:  2,
		HighStockCount: 1,
		TotalAlerts:    3,
		Items: []service.InventoryAlertItem{
			{ProductName: strPtr("螺丝"), ProductCode: strPtr("P001"), Stock: intPtr(4)},
		},
	})

	require.Len(t, rows, 4)
	assert.Equal(t, AlertRow{Label: "低库存品类", Value: "2", Emphasis: true}, rows[0])
	assert.Equal(t, AlertRow{Label: "高库存品类", Value: "1", Emphasis: true}, rows[1])
	assert.Equal(t, AlertRow{Label: "告警总数", Value: "3", Emphasis: false}, rows[2])
	assert.Equal(t, AlertRow{Label: "螺丝 (P001)", Value: "4", Emphasis: true}, rows[3])
}

func TestAlertRows_DefaultsAndTruncation(t *testing.T) {
	items := []service.InventoryAlertItem{
		{}, // everything missing
		{ProductName: strPtr("A"), ProductCode: strPtr("P1"), Stock: intPtr(1)},
		{ProductName: strPtr("B"), ProductCode: strPtr("P2"), Stock: intPtr(2)},
		{ProductName: strPtr("C"), ProductCode: strPtr("P3"), Stock: intPtr(3)},
	}
	rows := alertRowsFrom(&service.InventoryAlerts{Items: items})

	// 3 summary rows + at most 3 item rows.
	require.Len(t, rows, 6)
	assert.Equal(t, "未知 (-)", rows[3].Label)
	assert.Equal(t, "0", rows[3].Value)
}

func TestProductRow_Defaults(t *testing.T) {
	row := productRow(service.Product{ProductID: 1, ProductCode: "P001", ProductName: "螺丝"})

	assert.Equal(t, 0, row.Stock)
	assert.Equal(t, 0, row.Min)
	assert.Equal(t, "未知", row.Status)
}

func TestStats_SignConvention(t *testing.T) {
	stats := statsFrom(service.InventoryReportSummary{TotalIn: 12, TotalOut: 7, TotalAdjust: 3})

	require.Len(t, stats, 3)
	assert.Equal(t, Stat{Title: "今日入库", Value: "+12", Meta: "单位：件"}, stats[0])
	assert.Equal(t, Stat{Title: "今日出库", Value: "-7", Meta: "单位：件"}, stats[1])
	assert.Equal(t, Stat{Title: "调整操作", Value: "3", Meta: "单位：件"}, stats[2])
}

func dashboardBackend(t *testing.T, failAlerts bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reports/inventory_report":
			json.NewEncoder(w).Encode(map[string]any{
				"code": 0, "message": "ok",
				"data": service.InventoryReport{
					ReportDate: r.URL.Query().Get("date"),
					Summary:    service.InventoryReportSummary{TotalIn: 5, TotalOut: 2, TotalAdjust: 1},
					StockOperations: []service.InventoryReportOperation{
						{OpID: 1, ProductID: 42, OpType: "in", Quantity: 5, CreatedAt: "2024-05-06T09:30:00Z"},
					},
				},
			})
		case "/api/reports/inventory_alerts":
			if failAlerts {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]any{"code": 500, "message": "boom", "data": nil})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"code": 0, "message": "ok",
				"data": service.InventoryAlerts{LowStockCount: 1, TotalAlerts: 1, Items: []service.InventoryAlertItem{}},
			})
		case "/api/products":
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			assert.Equal(t, "5", r.URL.Query().Get("size"))
			json.NewEncoder(w).Encode(map[string]any{
				"code": 0, "message": "ok",
				"data": map[string]any{
					"items": []map[string]any{
						{"product_id": 1, "product_code": "P001", "product_name": "螺丝", "stock": 4},
					},
					"total": 1, "page": 1, "size": 5,
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
}

func TestRefresh_AllSlotsPopulate(t *testing.T) {
	ts := dashboardBackend(t, false)
	defer ts.Close()

	client := api.NewClient(ts.URL)
	d := New(service.NewReports(client), service.NewProducts(client), nil)
	d.Refresh(context.Background())

	assert.Empty(t, d.ErrorMessage())
	assert.Len(t, d.Stats(), 3)
	assert.Len(t, d.Schedule(), 1)
	assert.Len(t, d.Alerts(), 3)
	require.Len(t, d.Products(), 1)
	assert.Equal(t, "P001", d.Products()[0].Code)
	assert.True(t, d.HasData())
	assert.False(t, d.Loading())
}

func TestRefresh_PartialFailureKeepsOtherSlots(t *testing.T) {
	ts := dashboardBackend(t, true)
	defer ts.Close()

	client := api.NewClient(ts.URL)
	d := New(service.NewReports(client), service.NewProducts(client), nil)
	d.Refresh(context.Background())

	// The two healthy slots still populate; only the failed category is named.
	assert.Len(t, d.Stats(), 3)
	assert.Len(t, d.Products(), 1)
	assert.Empty(t, d.Alerts())
	assert.Equal(t, "库存预警 拉取失败，可以检查接口或登录状态。", d.ErrorMessage())
	assert.True(t, d.HasData())
}

func TestRefresh_TotalFailureNamesEverySlot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL)
	d := New(service.NewReports(client), service.NewProducts(client), nil)
	d.Refresh(context.Background())

	assert.Equal(t, "库存报表、库存预警、商品列表 拉取失败，可以检查接口或登录状态。", d.ErrorMessage())
	assert.False(t, d.HasData())
}
