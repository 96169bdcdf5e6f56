package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pashen/inventory-console/internal/api"
	"pashen/inventory-console/internal/localstate"
	"pashen/inventory-console/internal/service"
)

func newSession(t *testing.T, baseURL string) (*Session, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	sess, err := New(service.NewAuth(api.NewClient(baseURL)), store)
	require.NoError(t, err)
	return sess, store
}

func TestLogin_PersistsToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0, "message": "ok",
			"data": map[string]string{"access_token": "tok-xyz"},
		})
	}))
	defer ts.Close()

	sess, store := newSession(t, ts.URL)
	result, err := sess.Login(context.Background(), service.LoginPayload{Username: "admin", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", result.AccessToken)
	assert.Equal(t, "tok-xyz", sess.Token())
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "登录成功，token 已刷新。", sess.StatusMessage())
	assert.False(t, sess.Loading())

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", persisted)
}

func TestLogin_FailureRecordsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"code": 401, "message": "invalid credentials", "data": nil})
	}))
	defer ts.Close()

	sess, _ := newSession(t, ts.URL)
	_, err := sess.Login(context.Background(), service.LoginPayload{Username: "admin", Password: "nope"})

	require.Error(t, err)
	assert.Equal(t, "invalid credentials", sess.ErrorMessage())
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.Loading())
}

func TestRegister_InvalidRoleSkipsNetwork(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer ts.Close()

	sess, _ := newSession(t, ts.URL)
	_, err := sess.Register(context.Background(), service.RegisterPayload{
		Username: "eve", Password: "pw", Role: "superuser",
	})

	require.Error(t, err)
	assert.Equal(t, 0, requests, "invalid role must be rejected before any network call")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindApplication, apiErr.Kind)
	assert.Equal(t, "憨批角色别乱传。", apiErr.Message)
}

func TestFetchUsers_WithoutTokenSkipsNetwork(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer ts.Close()

	sess, _ := newSession(t, ts.URL)
	_, err := sess.FetchUsers(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, requests)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindApplication, apiErr.Kind)
	assert.Equal(t, 401, apiErr.Code)
	assert.Equal(t, 401, apiErr.Status)
}

func TestFetchUsers_RecordsCount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0, "message": "ok",
			"data": []map[string]any{
				{"user_id": 1, "username": "admin", "role": "admin"},
				{"user_id": 2, "username": "viewer", "role": "viewer"},
			},
		})
	}))
	defer ts.Close()

	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "tok"))
	sess, err := New(service.NewAuth(api.NewClient(ts.URL)), store)
	require.NoError(t, err)

	users, err := sess.FetchUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "拉到 2 个用户。", sess.StatusMessage())
}

func TestLogout_IsSynchronous(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer ts.Close()

	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "tok"))
	sess, err := New(service.NewAuth(api.NewClient(ts.URL)), store)
	require.NoError(t, err)
	require.True(t, sess.IsAuthenticated())

	require.NoError(t, sess.Logout())

	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "token 清空了，重新登录吧。", sess.StatusMessage())
	assert.Equal(t, 0, requests)

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestFileStore_TreatsNullLiteralsAsAbsent(t *testing.T) {
	state, err := localstate.New(t.TempDir())
	require.NoError(t, err)
	store := NewFileStore(state)

	for _, literal := range []string{"null", "undefined"} {
		require.NoError(t, state.Set(TokenKey, literal))
		token, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, token)
	}

	require.NoError(t, store.Save(context.Background(), "tok-1"))
	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, store.Clear(context.Background()))
	token, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}
