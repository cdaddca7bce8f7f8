package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aarya-club/backend/internal/models"
	"github.com/aarya-club/backend/pkg/utils"
)

type fakeAdminStore struct {
	admins    map[string]*models.Admin // keyed by username
	nextID    int64
	createErr error
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	a, ok := f.admins[username]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAdminStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.admins[username]
	return ok, nil
}

func (f *fakeAdminStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	admin.ID = f.nextID
	copied := *admin
	f.admins[admin.Username] = &copied
	return nil
}

func authRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(store, NewJWTService("test-secret", 1), zap.NewNop())
	router := gin.New()
	router.POST("/api/auth/register", handler.Register)
	router.POST("/api/auth/login", handler.Login)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerBody(username, email, password string) map[string]string {
	return map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"fullName": "Test Admin",
	}
}

func TestRegisterSuccess(t *testing.T) {
	store := newFakeAdminStore()
	router := authRouter(store)

	w := postJSON(router, "/api/auth/register", registerBody("a", "a@x.com", "pw1secret"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Admin registered successfully", resp.Message)

	stored := store.admins["a"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1secret", stored.Password, "password must never be stored in plaintext")
	assert.True(t, utils.CheckPassword("pw1secret", stored.Password))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeAdminStore()
	router := authRouter(store)

	w := postJSON(router, "/api/auth/register", registerBody("a", "a@x.com", "pw1secret"))
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/auth/register", registerBody("a", "other@x.com", "pw2secret"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")
	assert.Len(t, store.admins, 1, "duplicate register must not alter stored admins")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeAdminStore()
	router := authRouter(store)

	w := postJSON(router, "/api/auth/register", registerBody("a", "a@x.com", "pw1secret"))
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/auth/register", registerBody("b", "a@x.com", "pw2secret"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")
}

func TestRegisterConcurrentDuplicate(t *testing.T) {
	// Pre-checks pass but the insert trips the uniqueness constraint, as a
	// concurrent registration would.
	store := newFakeAdminStore()
	store.createErr = ErrDuplicate
	router := authRouter(store)

	w := postJSON(router, "/api/auth/register", registerBody("a", "a@x.com", "pw1secret"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterValidation(t *testing.T) {
	router := authRouter(newFakeAdminStore())

	w := postJSON(router, "/api/auth/register", map[string]string{
		"username": "a",
		"password": "pw1secret",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeAdminStore()
	router := authRouter(store)

	w := postJSON(router, "/api/auth/register", registerBody("a", "a@x.com", "pw1secret"))
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/auth/login", map[string]string{"username": "a", "password": "pw1secret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "a", resp.User.Username)
	assert.Equal(t, "a@x.com", resp.User.Email)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	store := newFakeAdminStore()
	router := authRouter(store)

	w := postJSON(router, "/api/auth/register", registerBody("a", "a@x.com", "pw1secret"))
	require.Equal(t, http.StatusOK, w.Code)

	for name, body := range map[string]map[string]string{
		"wrong password": {"username": "a", "password": "wrong"},
		"unknown user":   {"username": "nobody", "password": "pw1secret"},
		"empty body":     {},
	} {
		t.Run(name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/login", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid username or password")
		})
	}
}
