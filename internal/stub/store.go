package stub

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrBadCredentials    = errors.New("invalid credentials")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrBadQuantity       = errors.New("quantity must be > 0")
	ErrCodeTaken         = errors.New("product code already taken")
)

type User struct {
	UserID       int    `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
	PasswordHash string `json:"-"`
}

type Category struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
	ProductCount int    `json:"product_count"`
	TotalStock   int    `json:"total_stock"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type Supplier struct {
	SupplierID    int    `json:"supplier_id"`
	SupplierName  string `json:"supplier_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ProductCount  int    `json:"product_count"`
	TotalStock    int    `json:"total_stock"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type Product struct {
	ProductID       int     `json:"product_id"`
	ProductCode     string  `json:"product_code"`
	ProductName     string  `json:"product_name"`
	CategoryID      int     `json:"category_id,omitempty"`
	CategoryName    string  `json:"category_name,omitempty"`
	SupplierID      int     `json:"supplier_id,omitempty"`
	SupplierName    string  `json:"supplier_name,omitempty"`
	PurchasePrice   float64 `json:"purchase_price"`
	SalePrice       float64 `json:"sale_price"`
	Stock           int     `json:"stock"`
	MinStock        int     `json:"min_stock"`
	MaxStock        int     `json:"max_stock"`
	StorageLocation string  `json:"storage_location,omitempty"`
	Status          string  `json:"status"`
	Description     string  `json:"description,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type Order struct {
	OrderID     string  `json:"order_id"`
	OrderType   string  `json:"order_type"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type Operation struct {
	OpID        int     `json:"op_id"`
	ProductID   int     `json:"product_id"`
	ProductCode string  `json:"product_code"`
	ProductName string  `json:"product_name"`
	OpType      string  `json:"op_type"`
	Quantity    int     `json:"quantity"`
	StockBefore int     `json:"stock_before"`
	StockAfter  int     `json:"stock_after"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	OperatorID  int     `json:"operator_id"`
	OrderID     string  `json:"order_id,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// Store is the in-memory backend state: maps guarded by one RWMutex, with
// auto-increment ids and an append-only operation ledger.
type Store struct {
	mu sync.RWMutex

	users      map[int]User
	categories map[int]Category
	suppliers  map[int]Supplier
	products   map[int]Product
	orders     []Order
	operations []Operation

	nextUserID     int
	nextCategoryID int
	nextSupplierID int
	nextProductID  int
	nextOpID       int
}

func now() string {
	return time.Now().Format(time.RFC3339)
}

func NewStore() *Store {
	s := &Store{
		users:          make(map[int]User),
		categories:     make(map[int]Category),
		suppliers:      make(map[int]Supplier),
		products:       make(map[int]Product),
		nextUserID:     1,
		nextCategoryID: 1,
		nextSupplierID: 1,
		nextProductID:  1,
		nextOpID:       1,
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := User{
		UserID:       s.nextUserID,
		Username:     "admin",
		Role:         "admin",
		CreatedAt:    now(),
		PasswordHash: string(hash),
	}
	s.users[admin.UserID] = admin
	s.nextUserID++

	hardware := Category{CategoryID: s.nextCategoryID, CategoryName: "五金件", Description: "螺丝、螺母、垫片", CreatedAt: now(), UpdatedAt: now()}
	s.categories[hardware.CategoryID] = hardware
	s.nextCategoryID++

	electrical := Category{CategoryID: s.nextCategoryID, CategoryName: "电料", Description: "线缆与配件", CreatedAt: now(), UpdatedAt: now()}
	s.categories[electrical.CategoryID] = electrical
	s.nextCategoryID++

	supplier := Supplier{SupplierID: s.nextSupplierID, SupplierName: "华东五金", ContactPerson: "老王", Phone: "13800000000", CreatedAt: now(), UpdatedAt: now()}
	s.suppliers[supplier.SupplierID] = supplier
	s.nextSupplierID++

	screws := Product{
		ProductID: s.nextProductID, ProductCode: "P001", ProductName: "螺丝",
		CategoryID: hardware.CategoryID, SupplierID: supplier.SupplierID,
		PurchasePrice: 0.2, SalePrice: 0.5,
		Stock: 4, MinStock: 5, MaxStock: 500,
		Status: "active", CreatedAt: now(), UpdatedAt: now(),
	}
	s.products[screws.ProductID] = screws
	s.nextProductID++

	cable := Product{
		ProductID: s.nextProductID, ProductCode: "P002", ProductName: "电缆",
		CategoryID: electrical.CategoryID, SupplierID: supplier.SupplierID,
		PurchasePrice: 12, SalePrice: 18,
		Stock: 120, MinStock: 10, MaxStock: 100,
		Status: "active", CreatedAt: now(), UpdatedAt: now(),
	}
	s.products[cable.ProductID] = cable
	s.nextProductID++

	s.orders = append(s.orders, Order{
		OrderID:     uuid.NewString(),
		OrderType:   "purchase",
		Status:      "completed",
		TotalAmount: 240,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	})
}

// --- users ---

func (s *Store) RegisterUser(username, password, role string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return User{}, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		UserID:       s.nextUserID,
		Username:     username,
		Role:         role,
		CreatedAt:    now(),
		PasswordHash: string(hash),
	}
	s.users[user.UserID] = user
	s.nextUserID++
	return user, nil
}

func (s *Store) Authenticate(username, password string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return User{}, ErrBadCredentials
			}
			return u, nil
		}
	}
	return User{}, ErrBadCredentials
}

func (s *Store) ListUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users
}

func (s *Store) GetUser(id int) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *Store) UpdateUser(id int, password, role *string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		u.PasswordHash = string(hash)
	}
	if role != nil {
		u.Role = *role
	}
	s.users[id] = u
	return u, nil
}

func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// --- categories / suppliers ---

func (s *Store) categoryAggregates(id int) (count, stock int) {
	for _, p := range s.products {
		if p.CategoryID == id {
			count++
			stock += p.Stock
		}
	}
	return count, stock
}

func (s *Store) supplierAggregates(id int) (count, stock int) {
	for _, p := range s.products {
		if p.SupplierID == id {
			count++
			stock += p.Stock
		}
	}
	return count, stock
}

func (s *Store) ListCategories(page, size int, keyword string) ([]Category, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		if keyword != "" && !strings.Contains(c.CategoryName, keyword) {
			continue
		}
		c.ProductCount, c.TotalStock = s.categoryAggregates(c.CategoryID)
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CategoryID < all[j].CategoryID })
	return paginate(all, page, size)
}

func (s *Store) CreateCategory(name, description string) Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Category{
		CategoryID:   s.nextCategoryID,
		CategoryName: name,
		Description:  description,
		CreatedAt:    now(),
		UpdatedAt:    now(),
	}
	s.categories[c.CategoryID] = c
	s.nextCategoryID++
	return c
}

func (s *Store) UpdateCategory(id int, name, description string) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	if name != "" {
		c.CategoryName = name
	}
	c.Description = description
	c.UpdatedAt = now()
	s.categories[id] = c
	return c, nil
}

func (s *Store) DeleteCategory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *Store) ListSuppliers(page, size int, keyword string) ([]Supplier, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		if keyword != "" && !strings.Contains(sup.SupplierName, keyword) {
			continue
		}
		sup.ProductCount, sup.TotalStock = s.supplierAggregates(sup.SupplierID)
		all = append(all, sup)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SupplierID < all[j].SupplierID })
	return paginate(all, page, size)
}

func (s *Store) CreateSupplier(payload Supplier) Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload.SupplierID = s.nextSupplierID
	payload.CreatedAt = now()
	payload.UpdatedAt = now()
	s.suppliers[payload.SupplierID] = payload
	s.nextSupplierID++
	return payload
}

func (s *Store) UpdateSupplier(id int, payload Supplier) (Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.suppliers[id]
	if !ok {
		return Supplier{}, ErrNotFound
	}
	if payload.SupplierName != "" {
		existing.SupplierName = payload.SupplierName
	}
	existing.ContactPerson = payload.ContactPerson
	existing.Phone = payload.Phone
	existing.Email = payload.Email
	existing.Address = payload.Address
	existing.UpdatedAt = now()
	s.suppliers[id] = existing
	return existing, nil
}

func (s *Store) DeleteSupplier(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suppliers[id]; !ok {
		return ErrNotFound
	}
	delete(s.suppliers, id)
	return nil
}

// --- products ---

func (s *Store) decorate(p Product) Product {
	if c, ok := s.categories[p.CategoryID]; ok {
		p.CategoryName = c.CategoryName
	}
	if sup, ok := s.suppliers[p.SupplierID]; ok {
		p.SupplierName = sup.SupplierName
	}
	return p
}

type ProductFilter struct {
	Page       int
	Size       int
	Status     string
	CategoryID int
	SupplierID int
	Keyword    string
}

func (s *Store) ListProducts(f ProductFilter) ([]Product, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.CategoryID > 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.SupplierID > 0 && p.SupplierID != f.SupplierID {
			continue
		}
		if f.Keyword != "" && !strings.Contains(p.ProductName, f.Keyword) && !strings.Contains(p.ProductCode, f.Keyword) {
			continue
		}
		all = append(all, s.decorate(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ProductID < all[j].ProductID })
	return paginate(all, f.Page, f.Size)
}

func (s *Store) GetProduct(id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return s.decorate(p), nil
}

func (s *Store) CreateProduct(p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.ProductCode == p.ProductCode {
			return Product{}, ErrCodeTaken
		}
	}

	p.ProductID = s.nextProductID
	if p.Status == "" {
		p.Status = "active"
	}
	p.CreatedAt = now()
	p.UpdatedAt = now()
	s.products[p.ProductID] = p
	s.nextProductID++
	return p, nil
}

type ProductPatch struct {
	ProductCode     *string  `json:"product_code"`
	ProductName     *string  `json:"product_name"`
	CategoryID      *int     `json:"category_id"`
	SupplierID      *int     `json:"supplier_id"`
	PurchasePrice   *float64 `json:"purchase_price"`
	SalePrice       *float64 `json:"sale_price"`
	MinStock        *int     `json:"min_stock"`
	MaxStock        *int     `json:"max_stock"`
	StorageLocation *string  `json:"storage_location"`
	Status          *string  `json:"status"`
}

// UpdateProduct applies a partial payload: only supplied fields change. The
// stock level itself is never touched here; that belongs to the ledger.
func (s *Store) UpdateProduct(id int, patch ProductPatch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	if patch.ProductCode != nil {
		p.ProductCode = *patch.ProductCode
	}
	if patch.ProductName != nil {
		p.ProductName = *patch.ProductName
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.SupplierID != nil {
		p.SupplierID = *patch.SupplierID
	}
	if patch.PurchasePrice != nil {
		p.PurchasePrice = *patch.PurchasePrice
	}
	if patch.SalePrice != nil {
		p.SalePrice = *patch.SalePrice
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.MaxStock != nil {
		p.MaxStock = *patch.MaxStock
	}
	if patch.StorageLocation != nil {
		p.StorageLocation = *patch.StorageLocation
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.UpdatedAt = now()
	s.products[id] = p
	return s.decorate(p), nil
}

func (s *Store) DeleteProduct(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// --- orders ---

type OrderFilter struct {
	Page      int
	Size      int
	OrderType string
	Status    string
	Keyword   string
	StartDate string
	EndDate   string
}

func (s *Store) ListOrders(f OrderFilter) ([]Order, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		if f.OrderType != "" && o.OrderType != f.OrderType {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.Keyword != "" && !strings.Contains(o.OrderID, f.Keyword) {
			continue
		}
		if !withinDates(o.CreatedAt, f.StartDate, f.EndDate) {
			continue
		}
		all = append(all, o)
	}
	return paginate(all, f.Page, f.Size)
}

// --- stock ledger ---

type OperationFilter struct {
	Page      int
	Size      int
	ProductID int
	Type      string
	Keyword   string
	StartDate string
	EndDate   string
}

func (s *Store) ListOperations(f OperationFilter) ([]Operation, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Operation, 0, len(s.operations))
	for _, op := range s.operations {
		if f.ProductID > 0 && op.ProductID != f.ProductID {
			continue
		}
		if f.Type != "" && op.OpType != f.Type {
			continue
		}
		if f.Keyword != "" && !strings.Contains(op.ProductName, f.Keyword) && !strings.Contains(op.Reason, f.Keyword) {
			continue
		}
		if !withinDates(op.CreatedAt, f.StartDate, f.EndDate) {
			continue
		}
		all = append(all, op)
	}
	return paginate(all, f.Page, f.Size)
}

func (s *Store) GetOperation(id int) (Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, op := range s.operations {
		if op.OpID == id {
			return op, nil
		}
	}
	return Operation{}, ErrNotFound
}

type MoveRequest struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Reason    string  `json:"reason"`
	OrderID   string  `json:"order_id"`
	Notes     string  `json:"notes"`
}

func (s *Store) appendOperation(p Product, opType string, quantity, before, after int, req MoveRequest, operatorID int) Operation {
	total := decimal.NewFromFloat(req.UnitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		InexactFloat64()

	op := Operation{
		OpID:        s.nextOpID,
		ProductID:   p.ProductID,
		ProductCode: p.ProductCode,
		ProductName: p.ProductName,
		OpType:      opType,
		Quantity:    quantity,
		StockBefore: before,
		StockAfter:  after,
		UnitPrice:   req.UnitPrice,
		TotalPrice:  total,
		OperatorID:  operatorID,
		OrderID:     req.OrderID,
		Reason:      req.Reason,
		Notes:       req.Notes,
		CreatedAt:   now(),
	}
	s.operations = append(s.operations, op)
	s.nextOpID++
	return op
}

func (s *Store) MoveStockIn(req MoveRequest, operatorID int) (Operation, error) {
	if req.Quantity <= 0 {
		return Operation{}, ErrBadQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[req.ProductID]
	if !ok {
		return Operation{}, ErrNotFound
	}

	before := p.Stock
	p.Stock += req.Quantity
	p.UpdatedAt = now()
	s.products[p.ProductID] = p
	return s.appendOperation(p, "in", req.Quantity, before, p.Stock, req, operatorID), nil
}

func (s *Store) MoveStockOut(req MoveRequest, operatorID int) (Operation, error) {
	if req.Quantity <= 0 {
		return Operation{}, ErrBadQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[req.ProductID]
	if !ok {
		return Operation{}, ErrNotFound
	}
	if p.Stock < req.Quantity {
		return Operation{}, ErrInsufficientStock
	}

	before := p.Stock
	p.Stock -= req.Quantity
	p.UpdatedAt = now()
	s.products[p.ProductID] = p
	return s.appendOperation(p, "out", req.Quantity, before, p.Stock, req, operatorID), nil
}

type AdjustRequest struct {
	ProductID int    `json:"product_id"`
	NewStock  int    `json:"new_stock"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// AdjustStock records an absolute correction: the ledger quantity is the
// delta between the new level and the old one.
func (s *Store) AdjustStock(req AdjustRequest, operatorID int) (Operation, error) {
	if req.NewStock < 0 {
		return Operation{}, ErrBadQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[req.ProductID]
	if !ok {
		return Operation{}, ErrNotFound
	}

	before := p.Stock
	p.Stock = req.NewStock
	p.UpdatedAt = now()
	s.products[p.ProductID] = p

	move := MoveRequest{ProductID: req.ProductID, Reason: req.Reason, Notes: req.Notes}
	return s.appendOperation(p, "adjust", req.NewStock-before, before, p.Stock, move, operatorID), nil
}

// --- reports ---

type AlertsReport struct {
	LowStockCount  int       `json:"low_stock_count"`
	HighStockCount int       `json:"high_stock_count"`
	TotalAlerts    int       `json:"total_alerts"`
	Items          []Product `json:"items"`
}

func (s *Store) InventoryAlerts() AlertsReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	report := AlertsReport{Items: []Product{}}
	for _, id := range ids {
		p := s.products[id]
		switch {
		case p.Stock < p.MinStock:
			report.LowStockCount++
			p.Status = "low"
			report.Items = append(report.Items, s.decorate(p))
		case p.MaxStock > 0 && p.Stock > p.MaxStock:
			report.HighStockCount++
			p.Status = "high"
			report.Items = append(report.Items, s.decorate(p))
		}
	}
	report.TotalAlerts = report.LowStockCount + report.HighStockCount
	return report
}

type ReportSummary struct {
	TotalProducts int `json:"total_products"`
	TotalIn       int `json:"total_in"`
	TotalOut      int `json:"total_out"`
	TotalAdjust   int `json:"total_adjust"`
}

type StockLevel struct {
	ProductID int `json:"product_id"`
	Stock     int `json:"stock"`
}

type InventoryReport struct {
	ReportDate      string        `json:"report_date"`
	Summary         ReportSummary `json:"summary"`
	StockSummary    []StockLevel  `json:"stock_summary"`
	StockOperations []Operation   `json:"stock_operations"`
}

func (s *Store) DailyReport(date string) InventoryReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := InventoryReport{
		ReportDate:      date,
		StockSummary:    []StockLevel{},
		StockOperations: []Operation{},
	}
	report.Summary.TotalProducts = len(s.products)

	for _, op := range s.operations {
		if !strings.HasPrefix(op.CreatedAt, date) {
			continue
		}
		switch op.OpType {
		case "in":
			report.Summary.TotalIn += op.Quantity
		case "out":
			report.Summary.TotalOut += op.Quantity
		case "adjust":
			report.Summary.TotalAdjust += op.Quantity
		}
		report.StockOperations = append(report.StockOperations, op)
	}

	ids := make([]int, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		report.StockSummary = append(report.StockSummary, StockLevel{ProductID: id, Stock: s.products[id].Stock})
	}

	return report
}

// --- helpers ---

func paginate[T any](all []T, page, size int) ([]T, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	total := len(all)
	start := (page - 1) * size
	if start >= total {
		return []T{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return all[start:end], total
}

func withinDates(createdAt, start, end string) bool {
	if len(createdAt) < 10 {
		return true
	}
	day := createdAt[:10]
	if start != "" && day < start {
		return false
	}
	if end != "" && day > end {
		return false
	}
	return true
}
