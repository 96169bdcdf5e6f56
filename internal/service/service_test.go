package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pashen/inventory-console/internal/api"
)

func okEnvelope(data any) []byte {
	raw, _ := json.Marshal(map[string]any{"code": 0, "message": "ok", "data": data})
	return raw
}

func TestProductQuery_Values(t *testing.T) {
	query := ProductQuery{Page: 2, Size: 20, Status: "active", Keyword: "螺丝"}
	values := query.values()

	assert.Equal(t, api.Query{
		"page":    2,
		"size":    20,
		"status":  "active",
		"keyword": "螺丝",
	}, values)

	// Unset filters are not sent at all.
	assert.Empty(t, ProductQuery{}.values())
}

func TestStockOperationQuery_Values(t *testing.T) {
	query := StockOperationQuery{ProductID: 42, Type: StockIn, StartDate: "2024-05-01", EndDate: "2024-05-31"}
	assert.Equal(t, api.Query{
		"product_id": 42,
		"type":       "in",
		"start_date": "2024-05-01",
		"end_date":   "2024-05-31",
	}, query.values())
}

func TestAuth_Login(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var payload LoginPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "admin", payload.Username)

		w.Write(okEnvelope(map[string]string{"access_token": "tok-abc"}))
	}))
	defer ts.Close()

	auth := NewAuth(api.NewClient(ts.URL))
	result, err := auth.Login(context.Background(), LoginPayload{Username: "admin", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", result.AccessToken)
}

func TestAuth_FetchUsersSendsToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Write(okEnvelope([]UserSummary{{UserID: 1, Username: "admin", Role: RoleAdmin}}))
	}))
	defer ts.Close()

	auth := NewAuth(api.NewClient(ts.URL))
	users, err := auth.FetchUsers(context.Background(), "tok-abc")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
}

func TestStock_In(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/stock/in", r.URL.Path)

		var payload StockMovePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 42, payload.ProductID)
		assert.Equal(t, 5, payload.Quantity)
		assert.Nil(t, payload.Reason)

		w.Write(okEnvelope(map[string]int{"op_id": 7}))
	}))
	defer ts.Close()

	stock := NewStock(api.NewClient(ts.URL))
	result, err := stock.In(context.Background(), "tok", StockMovePayload{ProductID: 42, Quantity: 5})

	require.NoError(t, err)
	assert.Equal(t, 7, result.OpID)
}

func TestStock_AdjustSendsAbsoluteValue(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/adjust", r.URL.Path)

		var payload StockAdjustPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 30, payload.NewStock)

		w.Write(okEnvelope(map[string]int{"op_id": 8}))
	}))
	defer ts.Close()

	stock := NewStock(api.NewClient(ts.URL))
	result, err := stock.Adjust(context.Background(), "tok", StockAdjustPayload{ProductID: 42, NewStock: 30})

	require.NoError(t, err)
	assert.Equal(t, 8, result.OpID)
}

func TestReports_InventoryReportQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/inventory_report", r.URL.Path)
		assert.Equal(t, "2024-05-06", r.URL.Query().Get("date"))
		w.Write(okEnvelope(InventoryReport{ReportDate: "2024-05-06"}))
	}))
	defer ts.Close()

	reports := NewReports(api.NewClient(ts.URL))
	report, err := reports.FetchInventoryReport(context.Background(), "2024-05-06", "")

	require.NoError(t, err)
	assert.Equal(t, "2024-05-06", report.ReportDate)
}

func TestCatalog_FetchOverview(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/categories":
			w.Write(okEnvelope(api.Paginated[Category]{
				Items: []Category{{CategoryID: 1, CategoryName: "五金件"}},
				Total: 1, Page: 1, Size: 10,
			}))
		case "/api/suppliers":
			w.Write(okEnvelope(api.Paginated[Supplier]{
				Items: []Supplier{{SupplierID: 1, SupplierName: "华东五金"}},
				Total: 1, Page: 1, Size: 10,
			}))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	catalog := NewCatalog(api.NewClient(ts.URL))
	overview, err := catalog.FetchOverview(context.Background(), CatalogQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1, overview.Categories.Total)
	assert.Equal(t, 1, overview.Suppliers.Total)
}

func TestCatalog_FetchOverviewFailsFast(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/suppliers" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"code":500,"message":"boom","data":null}`))
			return
		}
		w.Write(okEnvelope(api.Paginated[Category]{}))
	}))
	defer ts.Close()

	catalog := NewCatalog(api.NewClient(ts.URL))
	_, err := catalog.FetchOverview(context.Background(), CatalogQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch suppliers")
}

func TestValidRole(t *testing.T) {
	for _, role := range Roles {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole("superuser"))
}
