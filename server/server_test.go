package server

import (
	"encoding/json"
	"github.com/dinerozz/user-registry/config"
	"github.com/dinerozz/user-registry/internal/entity"
	"github.com/dinerozz/user-registry/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	db, err := repository.NewRepository(config.DatabaseConfig{
		Path:          filepath.Join(t.TempDir(), "user.db"),
		BusyTimeoutMs: 5000,
		MaxOpenConns:  4,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repository.Migrate(db, false))

	return setupRouter(newRouterHandler(db, log), config.ServerConfig{BaseURL: "http://localhost:8080"}, log)
}

func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func listUsers(t *testing.T, h http.Handler) []entity.User {
	t.Helper()
	rec := call(t, h, http.MethodGet, "/get_users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []entity.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	return users
}

func TestServer_ExampleScenario(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/add_user", `{"username":"alice"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User added successfully"}`, rec.Body.String())

	rec = call(t, h, http.MethodPost, "/add_user", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/get_users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"username":"alice"}]`, rec.Body.String())

	rec = call(t, h, http.MethodDelete, "/delete_user/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/get_users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = call(t, h, http.MethodDelete, "/delete_user/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestServer_EmptyUsernameCreatesNothing(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/add_user", `{"username":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Username is required"}`, rec.Body.String())
	assert.Empty(t, listUsers(t, h))
}

func TestServer_UsernameStoredAsSubmitted(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/add_user", `{"username":" alice "}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, h, http.MethodPost, "/add_user", `{"username":"alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, h, http.MethodPost, "/add_user", `{"username":" alice "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/get_users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"username":" alice "},{"id":2,"username":"alice"}]`, rec.Body.String())
}

func TestServer_DeleteRejectsSignedID(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodPost, "/add_user", `{"username":"alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, id := range []string{"+1", "-1"} {
		rec = call(t, h, http.MethodDelete, "/delete_user/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.JSONEq(t, `{"message":"Invalid user ID"}`, rec.Body.String(), id)
	}
	assert.Len(t, listUsers(t, h), 1)
}

func TestServer_ListKeepsOriginalIDs(t *testing.T) {
	h := newTestServer(t)

	names := []string{"alice", "bob", "carol", "dave"}
	for _, name := range names {
		rec := call(t, h, http.MethodPost, "/add_user", `{"username":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	before := listUsers(t, h)
	require.Len(t, before, len(names))
	seen := map[int64]bool{}
	for i, u := range before {
		assert.Equal(t, names[i], u.Username)
		assert.False(t, seen[u.ID], "id %d reused", u.ID)
		seen[u.ID] = true
	}

	rec := call(t, h, http.MethodDelete, "/delete_user/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	after := listUsers(t, h)
	assert.Equal(t, []entity.User{before[0], before[2], before[3]}, after)

	rec = call(t, h, http.MethodPost, "/add_user", `{"username":"erin"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	latest := listUsers(t, h)
	assert.Greater(t, latest[len(latest)-1].ID, before[len(before)-1].ID)
}

func TestServer_ConcurrentCreates(t *testing.T) {
	h := newTestServer(t)

	const n = 10
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = call(t, h, http.MethodPost, "/add_user", `{"username":"same"}`).Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, created)
	assert.Len(t, listUsers(t, h), 1)
}

func TestServer_PageAndHealth(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User Database")

	rec = call(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_MethodsAreRouteSpecific(t *testing.T) {
	h := newTestServer(t)

	rec := call(t, h, http.MethodGet, "/add_user", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, h, http.MethodPost, "/delete_user/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
