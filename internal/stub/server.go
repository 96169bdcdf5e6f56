package stub

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// Server is an in-memory rendition of the inventory backend, close enough
// for local development and integration tests: same routes, same envelope,
// same bearer-token discipline.
type Server struct {
	store  *Store
	secret []byte
	router *chi.Mux
}

func NewServer(secret string) *Server {
	s := &Server{
		store:  NewStore(),
		secret: []byte(secret),
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.registerRoutes()
	return s
}

func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// Unauthenticated reads.
		r.Get("/categories", s.handleListCategories)
		r.Get("/suppliers", s.handleListSuppliers)
		r.Get("/products", s.handleListProducts)
		r.Get("/products/{id}", s.handleGetProduct)
		r.Get("/products/{id}/stock", s.handleGetProductStock)
		r.Get("/reports/inventory_alerts", s.handleInventoryAlerts)
		r.Get("/reports/inventory_report", s.handleInventoryReport)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/users", s.handleListUsers)
			r.Get("/auth/users/{id}", s.handleGetUser)
			r.Put("/auth/users/{id}", s.handleUpdateUser)
			r.Delete("/auth/users/{id}", s.handleDeleteUser)

			r.Post("/categories", s.handleCreateCategory)
			r.Put("/categories/{id}", s.handleUpdateCategory)
			r.Delete("/categories/{id}", s.handleDeleteCategory)

			r.Post("/suppliers", s.handleCreateSupplier)
			r.Put("/suppliers/{id}", s.handleUpdateSupplier)
			r.Delete("/suppliers/{id}", s.handleDeleteSupplier)

			r.Post("/products", s.handleCreateProduct)
			r.Put("/products/{id}", s.handleUpdateProduct)
			r.Delete("/products/{id}", s.handleDeleteProduct)

			r.Get("/orders", s.handleListOrders)

			r.Get("/stock/operations", s.handleListOperations)
			r.Get("/stock/operations/{id}", s.handleGetOperation)
			r.Post("/stock/in", s.handleStockIn)
			r.Post("/stock/out", s.handleStockOut)
			r.Post("/stock/adjust", s.handleStockAdjust)
		})
	})
}

type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(envelope{Code: 0, Message: "ok", Data: data})
}

// writeError mirrors the HTTP status into the envelope code so clients see
// the same number at both layers.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Code: status, Message: message, Data: nil})
}

type contextKey string

const operatorKey contextKey = "operator_id"

func (s *Server) issueToken(userID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			writeError(w, http.StatusUnauthorized, "invalid Authorization format (use Bearer token)")
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid token payload")
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid token payload")
			return
		}

		ctx := context.WithValue(r.Context(), operatorKey, int(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func operatorFrom(ctx context.Context) int {
	if id, ok := ctx.Value(operatorKey).(int); ok {
		return id
	}
	return 0
}
