package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var validRoles = map[string]bool{
	"admin":          true,
	"stock_operator": true,
	"purchaser":      true,
	"cashier":        true,
	"finance":        true,
	"viewer":         true,
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func intQuery(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrCodeTaken),
		errors.Is(err, ErrBadQuantity), errors.Is(err, ErrInsufficientStock):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrBadCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// --- auth ---

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if !validRoles[req.Role] {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	user, err := s.store.RegisterUser(req.Username, req.Password, req.Role)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"user_id": user.UserID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.store.Authenticate(req.Username, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeData(w, map[string]string{"access_token": token})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.store.ListUsers())
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := s.store.GetUser(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req struct {
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Role != nil && !validRoles[*req.Role] {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	user, err := s.store.UpdateUser(id, req.Password, req.Role)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := s.store.DeleteUser(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"user_id": id})
}

// --- catalog ---

func page[T any](items []T, total, pageNum, size int) map[string]any {
	if pageNum <= 0 {
		pageNum = 1
	}
	if size <= 0 {
		size = 10
	}
	return map[string]any{
		"items": items,
		"total": total,
		"page":  pageNum,
		"size":  size,
	}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	p, size := intQuery(r, "page"), intQuery(r, "size")
	items, total := s.store.ListCategories(p, size, r.URL.Query().Get("keyword"))
	writeData(w, page(items, total, p, size))
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryName string `json:"category_name"`
		Description  string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CategoryName == "" {
		writeError(w, http.StatusBadRequest, "category_name is required")
		return
	}
	c := s.store.CreateCategory(req.CategoryName, req.Description)
	writeData(w, map[string]int{"category_id": c.CategoryID})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	var req struct {
		CategoryName string `json:"category_name"`
		Description  string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := s.store.UpdateCategory(id, req.CategoryName, req.Description)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := s.store.DeleteCategory(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"category_id": id})
}

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	p, size := intQuery(r, "page"), intQuery(r, "size")
	items, total := s.store.ListSuppliers(p, size, r.URL.Query().Get("keyword"))
	writeData(w, page(items, total, p, size))
}

func (s *Server) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req Supplier
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SupplierName == "" {
		writeError(w, http.StatusBadRequest, "supplier_name is required")
		return
	}
	created := s.store.CreateSupplier(req)
	writeData(w, map[string]int{"supplier_id": created.SupplierID})
}

func (s *Server) handleUpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	var req Supplier
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := s.store.UpdateSupplier(id, req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, updated)
}

func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	if err := s.store.DeleteSupplier(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"supplier_id": id})
}

// --- products ---

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := ProductFilter{
		Page:       intQuery(r, "page"),
		Size:       intQuery(r, "size"),
		Status:     r.URL.Query().Get("status"),
		CategoryID: intQuery(r, "category_id"),
		SupplierID: intQuery(r, "supplier_id"),
		Keyword:    r.URL.Query().Get("keyword"),
	}
	items, total := s.store.ListProducts(filter)
	writeData(w, page(items, total, filter.Page, filter.Size))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := s.store.GetProduct(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, p)
}

func (s *Server) handleGetProductStock(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := s.store.GetProduct(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]any{
		"product_id":   p.ProductID,
		"product_name": p.ProductName,
		"stock":        p.Stock,
		"min_stock":    p.MinStock,
		"max_stock":    p.MaxStock,
		"status":       p.Status,
	})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req Product
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductCode == "" || req.ProductName == "" {
		writeError(w, http.StatusBadRequest, "product_code and product_name are required")
		return
	}
	created, err := s.store.CreateProduct(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"product_id": created.ProductID})
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var patch ProductPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	updated, err := s.store.UpdateProduct(id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := s.store.DeleteProduct(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]any{"product_id": id, "message": "deleted"})
}

// --- orders ---

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	filter := OrderFilter{
		Page:      intQuery(r, "page"),
		Size:      intQuery(r, "size"),
		OrderType: r.URL.Query().Get("order_type"),
		Status:    r.URL.Query().Get("status"),
		Keyword:   r.URL.Query().Get("keyword"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	items, total := s.store.ListOrders(filter)
	writeData(w, page(items, total, filter.Page, filter.Size))
}

// --- stock ---

func (s *Server) handleListOperations(w http.ResponseWriter, r *http.Request) {
	filter := OperationFilter{
		Page:      intQuery(r, "page"),
		Size:      intQuery(r, "size"),
		ProductID: intQuery(r, "product_id"),
		Type:      r.URL.Query().Get("type"),
		Keyword:   r.URL.Query().Get("keyword"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	items, total := s.store.ListOperations(filter)
	writeData(w, page(items, total, filter.Page, filter.Size))
}

func (s *Server) handleGetOperation(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid operation id")
		return
	}
	op, err := s.store.GetOperation(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, op)
}

func (s *Server) handleStockIn(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	op, err := s.store.MoveStockIn(req, operatorFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"op_id": op.OpID})
}

func (s *Server) handleStockOut(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	op, err := s.store.MoveStockOut(req, operatorFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"op_id": op.OpID})
}

func (s *Server) handleStockAdjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	op, err := s.store.AdjustStock(req, operatorFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeData(w, map[string]int{"op_id": op.OpID})
}

// --- reports ---

func (s *Server) handleInventoryAlerts(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.store.InventoryAlerts())
}

func (s *Server) handleInventoryReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
		return
	}
	writeData(w, s.store.DailyReport(date))
}
