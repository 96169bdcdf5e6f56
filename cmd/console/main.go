package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"pashen/inventory-console/internal/api"
	"pashen/inventory-console/internal/brand"
	"pashen/inventory-console/internal/config"
	"pashen/inventory-console/internal/dashboard"
	"pashen/inventory-console/internal/localstate"
	"pashen/inventory-console/internal/service"
	"pashen/inventory-console/internal/session"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: console <command> [flags]

commands:
  login         -username -password
  logout
  register      -username -password -role
  users
  dashboard
  products      [-page -size -status -keyword]
  orders        [-page -size -type -status]
  overview      [-keyword]
  stock-in      -product -qty [-price -reason -order]
  stock-out     -product -qty [-price -reason -order]
  stock-adjust  -product -stock [-reason]`)
	os.Exit(2)
}

// tokenStore picks the backing by configuration: redis or postgres when
// configured, the state-dir file store otherwise.
func tokenStore(ctx context.Context, cfg *config.Config, state *localstate.Store) (session.TokenStore, func(), error) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return session.NewRedisStore(client), func() { _ = client.Close() }, nil
	}
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store := session.NewPostgresStore(pool)
		if err := store.Init(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	}
	return session.NewFileStore(state), func() {}, nil
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}
	mode := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	state, err := localstate.New(cfg.StateDir)
	if err != nil {
		log.Fatalf("failed to open state dir: %v", err)
	}

	ctx := context.Background()

	store, closeStore, err := tokenStore(ctx, cfg, state)
	if err != nil {
		log.Fatalf("failed to open token store: %v", err)
	}
	defer closeStore()

	client := api.NewClient(cfg.APIBaseURL)
	authSvc := service.NewAuth(client)
	catalogSvc := service.NewCatalog(client)
	productSvc := service.NewProducts(client)
	orderSvc := service.NewOrders(client)
	stockSvc := service.NewStock(client)
	reportSvc := service.NewReports(client)

	sess, err := session.New(authSvc, store)
	if err != nil {
		log.Fatalf("failed to restore session: %v", err)
	}

	switch mode {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		username := fs.String("username", "", "username")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		_, err := sess.Login(ctx, service.LoginPayload{Username: *username, Password: *password})
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		fmt.Println(sess.StatusMessage())

	case "logout":
		if err := sess.Logout(); err != nil {
			log.Fatalf("logout failed: %v", err)
		}
		fmt.Println(sess.StatusMessage())

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		username := fs.String("username", "", "username")
		password := fs.String("password", "", "password")
		role := fs.String("role", "viewer", "role")
		_ = fs.Parse(args)

		result, err := sess.Register(ctx, service.RegisterPayload{
			Username: *username,
			Password: *password,
			Role:     service.UserRole(*role),
		})
		if err != nil {
			log.Fatalf("register failed: %v", err)
		}
		fmt.Printf("user_id=%d\n", result.UserID)

	case "users":
		users, err := sess.FetchUsers(ctx)
		if err != nil {
			log.Fatalf("fetch users failed: %v", err)
		}
		for _, u := range users {
			fmt.Printf("#%d\t%s\t%s\t%s\n", u.UserID, u.Username, u.Role, u.CreatedAt)
		}
		fmt.Println(sess.StatusMessage())

	case "dashboard":
		fmt.Printf("== %s ==\n", brand.Resolve(state).Name())
		d := dashboard.New(reportSvc, productSvc, sess.Token)
		d.Refresh(ctx)

		if !d.HasData() {
			fmt.Println("暂无数据")
		}
		for _, stat := range d.Stats() {
			fmt.Printf("%s\t%s\t(%s)\n", stat.Title, stat.Value, stat.Meta)
		}
		for _, row := range d.Alerts() {
			fmt.Printf("%s\t%s\n", row.Label, row.Value)
		}
		for _, item := range d.Schedule() {
			fmt.Printf("%s\t%s\t%s\n", item.Time, item.Label, item.Detail)
		}
		for _, p := range d.Products() {
			fmt.Printf("%s\t%s\tstock=%d min=%d\t%s\n", p.Code, p.Name, p.Stock, p.Min, p.Status)
		}
		if msg := d.ErrorMessage(); msg != "" {
			fmt.Println(msg)
		}

	case "products":
		fs := flag.NewFlagSet("products", flag.ExitOnError)
		pageNum := fs.Int("page", 1, "page")
		size := fs.Int("size", 10, "page size")
		status := fs.String("status", "", "status filter")
		keyword := fs.String("keyword", "", "keyword filter")
		_ = fs.Parse(args)

		result, err := productSvc.FetchProducts(ctx, service.ProductQuery{
			Page: *pageNum, Size: *size, Status: *status, Keyword: *keyword,
		}, sess.Token())
		if err != nil {
			log.Fatalf("fetch products failed: %v", err)
		}
		fmt.Printf("total=%d page=%d\n", result.Total, result.Page)
		for _, p := range result.Items {
			stock := 0
			if p.Stock != nil {
				stock = *p.Stock
			}
			fmt.Printf("#%d\t%s\t%s\tstock=%d\n", p.ProductID, p.ProductCode, p.ProductName, stock)
		}

	case "orders":
		fs := flag.NewFlagSet("orders", flag.ExitOnError)
		pageNum := fs.Int("page", 1, "page")
		size := fs.Int("size", 10, "page size")
		orderType := fs.String("type", "", "order type filter")
		status := fs.String("status", "", "status filter")
		_ = fs.Parse(args)

		result, err := orderSvc.FetchOrders(ctx, sess.Token(), service.OrderQuery{
			Page: *pageNum, Size: *size,
			OrderType: service.OrderType(*orderType),
			Status:    service.OrderStatus(*status),
		})
		if err != nil {
			log.Fatalf("fetch orders failed: %v", err)
		}
		fmt.Printf("total=%d\n", result.Total)
		for _, o := range result.Items {
			status := "-"
			if o.Status != nil {
				status = string(*o.Status)
			}
			fmt.Printf("%s\t%s\t%s\n", o.OrderID, o.OrderType, status)
		}

	case "overview":
		fs := flag.NewFlagSet("overview", flag.ExitOnError)
		keyword := fs.String("keyword", "", "keyword filter")
		_ = fs.Parse(args)

		overview, err := catalogSvc.FetchOverview(ctx, service.CatalogQuery{Keyword: *keyword})
		if err != nil {
			log.Fatalf("fetch overview failed: %v", err)
		}
		fmt.Printf("categories (%d):\n", overview.Categories.Total)
		for _, c := range overview.Categories.Items {
			fmt.Printf("  #%d\t%s\n", c.CategoryID, c.CategoryName)
		}
		fmt.Printf("suppliers (%d):\n", overview.Suppliers.Total)
		for _, sup := range overview.Suppliers.Items {
			fmt.Printf("  #%d\t%s\n", sup.SupplierID, sup.SupplierName)
		}

	case "stock-in", "stock-out":
		fs := flag.NewFlagSet(mode, flag.ExitOnError)
		product := fs.Int("product", 0, "product id")
		qty := fs.Int("qty", 0, "quantity")
		price := fs.Float64("price", 0, "unit price")
		reason := fs.String("reason", "", "reason")
		orderID := fs.String("order", "", "order reference")
		_ = fs.Parse(args)

		payload := service.StockMovePayload{ProductID: *product, Quantity: *qty}
		if *price > 0 {
			payload.UnitPrice = price
		}
		if *reason != "" {
			payload.Reason = reason
		}
		if *orderID != "" {
			payload.OrderID = orderID
		}

		var result *service.StockOperationID
		if mode == "stock-in" {
			result, err = stockSvc.In(ctx, sess.Token(), payload)
		} else {
			result, err = stockSvc.Out(ctx, sess.Token(), payload)
		}
		if err != nil {
			log.Fatalf("%s failed: %v", mode, err)
		}
		fmt.Printf("op_id=%d\n", result.OpID)

	case "stock-adjust":
		fs := flag.NewFlagSet("stock-adjust", flag.ExitOnError)
		product := fs.Int("product", 0, "product id")
		newStock := fs.Int("stock", 0, "absolute new stock value")
		reason := fs.String("reason", "", "reason")
		_ = fs.Parse(args)

		payload := service.StockAdjustPayload{ProductID: *product, NewStock: *newStock}
		if *reason != "" {
			payload.Reason = reason
		}
		result, err := stockSvc.Adjust(ctx, sess.Token(), payload)
		if err != nil {
			log.Fatalf("stock-adjust failed: %v", err)
		}
		fmt.Printf("op_id=%d\n", result.OpID)

	default:
		usage()
	}
}
