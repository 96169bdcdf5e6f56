package session

import (
	"context"
	"fmt"
	"sync"

	"pashen/inventory-console/internal/api"
	"pashen/inventory-console/internal/service"
)

// Session holds exactly one persisted token plus the operation state the
// views render: a loading flag and the last status/error messages. It is an
// explicitly injected object, not a global; the persistence mechanism hides
// behind TokenStore.
type Session struct {
	auth  *service.Auth
	store TokenStore

	mu            sync.Mutex
	token         string
	loading       bool
	statusMessage string
	errorMessage  string
}

func New(auth *service.Auth, store TokenStore) (*Session, error) {
	token, err := store.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load session token: %w", err)
	}
	return &Session{auth: auth, store: store, token: token}, nil
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) StatusMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusMessage
}

func (s *Session) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMessage
}

// begin clears prior messages and raises the loading flag, which stays up
// only while the current operation's work is outstanding.
func (s *Session) begin() {
	s.mu.Lock()
	s.loading = true
	s.statusMessage = ""
	s.errorMessage = ""
	s.mu.Unlock()
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.errorMessage = err.Error()
	s.mu.Unlock()
}

func (s *Session) succeed(status string) {
	s.mu.Lock()
	s.loading = false
	s.statusMessage = status
	s.mu.Unlock()
}

// Login exchanges credentials for a token, overwrites the persisted token and
// records a status message. On failure the error message is recorded and the
// error returned unmodified.
func (s *Session) Login(ctx context.Context, payload service.LoginPayload) (*service.LoginResult, error) {
	s.begin()
	result, err := s.auth.Login(ctx, payload)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	if err := s.store.Save(ctx, result.AccessToken); err != nil {
		s.fail(err)
		return nil, err
	}
	s.mu.Lock()
	s.token = result.AccessToken
	s.mu.Unlock()
	s.succeed("登录成功，token 已刷新。")
	return result, nil
}

// Register validates the role locally; an unknown role fails before any
// network call and leaves the loading flag and messages untouched.
func (s *Session) Register(ctx context.Context, payload service.RegisterPayload) (*service.RegisterResult, error) {
	if !service.ValidRole(payload.Role) {
		return nil, api.NewApplicationError(500, "憨批角色别乱传。")
	}

	s.begin()
	result, err := s.auth.Register(ctx, payload)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.succeed(fmt.Sprintf("用户 #%d 创建好了。", result.UserID))
	return result, nil
}

// FetchUsers requires a token; without one it fails with status 401 and
// never reaches the network.
func (s *Session) FetchUsers(ctx context.Context) ([]service.UserSummary, error) {
	token := s.Token()
	if token == "" {
		return nil, api.NewApplicationError(401, "没登录你查个屁用户列表。")
	}

	s.begin()
	users, err := s.auth.FetchUsers(ctx, token)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.succeed(fmt.Sprintf("拉到 %d 个用户。", len(users)))
	return users, nil
}

// Logout clears the token synchronously; no network call is involved.
func (s *Session) Logout() error {
	err := s.store.Clear(context.Background())
	s.mu.Lock()
	s.token = ""
	s.statusMessage = "token 清空了，重新登录吧。"
	s.mu.Unlock()
	return err
}
