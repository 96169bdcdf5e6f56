package service

import (
	"context"
	"fmt"
	"net/http"

	"pashen/inventory-console/internal/api"
)

type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleStockOperator UserRole = "stock_operator"
	RolePurchaser     UserRole = "purchaser"
	RoleCashier       UserRole = "cashier"
	RoleFinance       UserRole = "finance"
	RoleViewer        UserRole = "viewer"
)

// Roles lists every role the backend accepts on registration.
var Roles = []UserRole{
	RoleAdmin,
	RoleStockOperator,
	RolePurchaser,
	RoleCashier,
	RoleFinance,
	RoleViewer,
}

func ValidRole(role UserRole) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type UserSummary struct {
	UserID    int      `json:"user_id"`
	Username  string   `json:"username"`
	Role      UserRole `json:"role"`
	CreatedAt string   `json:"created_at"`
}

type RegisterPayload struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserPayload struct {
	Password *string   `json:"password,omitempty"`
	Role     *UserRole `json:"role,omitempty"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
}

type RegisterResult struct {
	UserID int `json:"user_id"`
}

type UserIdentifier struct {
	UserID int `json:"user_id"`
}

// Auth maps the /api/auth endpoints. Role validation is the caller's job
// (the session layer checks it before any network call); the service itself
// is a pure endpoint mapping.
type Auth struct {
	client *api.Client
}

func NewAuth(client *api.Client) *Auth {
	return &Auth{client: client}
}

func (s *Auth) Register(ctx context.Context, payload RegisterPayload) (*RegisterResult, error) {
	resp, err := api.Request[RegisterResult](ctx, s.client, "/api/auth/register", api.Options{
		Method: http.MethodPost,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Auth) Login(ctx context.Context, payload LoginPayload) (*LoginResult, error) {
	resp, err := api.Request[LoginResult](ctx, s.client, "/api/auth/login", api.Options{
		Method: http.MethodPost,
		JSON:   payload,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Auth) FetchUsers(ctx context.Context, token string) ([]UserSummary, error) {
	resp, err := api.Request[[]UserSummary](ctx, s.client, "/api/auth/users", api.Options{
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *Auth) FetchUser(ctx context.Context, userID int, token string) (*UserSummary, error) {
	resp, err := api.Request[UserSummary](ctx, s.client, fmt.Sprintf("/api/auth/users/%d", userID), api.Options{
		Token: token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Auth) UpdateUser(ctx context.Context, userID int, payload UpdateUserPayload, token string) (*UserSummary, error) {
	resp, err := api.Request[UserSummary](ctx, s.client, fmt.Sprintf("/api/auth/users/%d", userID), api.Options{
		Method: http.MethodPut,
		JSON:   payload,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *Auth) DeleteUser(ctx context.Context, userID int, token string) (*UserIdentifier, error) {
	resp, err := api.Request[UserIdentifier](ctx, s.client, fmt.Sprintf("/api/auth/users/%d", userID), api.Options{
		Method: http.MethodDelete,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
