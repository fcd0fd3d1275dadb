package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/models"
	"github.com/careercompass/backend/internal/store"
)

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]*models.User{}}
}

func (m *memoryUsers) CreateUser(_ context.Context, username, email, hashedPw string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return nil, store.ErrUserExists
		}
	}
	u := &models.User{ID: uuid.NewString(), Username: username, Email: email, Password: hashedPw, CreatedAt: time.Now()}
	m.users[username] = u
	out := *u
	out.Password = ""
	return &out, nil
}

func (m *memoryUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *u
	return &out, nil
}

func newRouter(t *testing.T) (chi.Router, *memoryUsers) {
	ts, _ := newTokenStore(t)
	users := newMemoryUsers()
	h := NewHandler(users, NewJWTStrategy([]byte("secret"), ts, time.Minute, time.Hour))

	log := zap.NewNop()
	r := chi.NewRouter()
	r.Post("/register", httpx.RestHandler(log, h.Register))
	r.Post("/login", httpx.RestHandler(log, h.Login))
	r.Post("/refresh", httpx.RestHandler(log, h.Refresh))
	r.Post("/logout", httpx.RestHandler(log, h.Logout))
	return r, users
}

func post(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	r, users := newRouter(t)

	rec := post(r, "/register", map[string]string{
		"username": "asha", "email": "asha@example.com", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "asha", body["username"])
	assert.Equal(t, "asha@example.com", body["email"])
	assert.NotContains(t, body, "password")

	stored, err := users.GetUserByUsername(context.Background(), "asha")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newRouter(t)

	tests := []struct {
		name string
		body any
		msg  string
	}{
		{"missing email", map[string]string{"username": "a", "password": "p"}, "email: this field is required"},
		{"bad email", map[string]string{"username": "a", "email": "nope", "password": "p"}, "email: enter a valid email address"},
		{"missing password", map[string]string{"username": "a", "email": "a@example.com"}, "password: this field is required"},
		{"long username", map[string]string{"username": strings.Repeat("x", 151), "email": "a@example.com", "password": "p"}, "no more than 150"},
		{"password too long", map[string]string{"username": "a", "email": "a@example.com", "password": strings.Repeat("p", 80)}, "no more than 72 bytes"},
		{"multibyte password too long", map[string]string{"username": "a", "email": "a@example.com", "password": strings.Repeat("é", 37)}, "no more than 72 bytes"},
		{"not json", "{", "invalid request body"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(r, "/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.msg)
		})
	}
}

func TestRegisterLongestPassword(t *testing.T) {
	r, _ := newRouter(t)
	password := strings.Repeat("p", 72)

	rec := post(r, "/register", map[string]string{"username": "asha", "email": "asha@example.com", "password": password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = post(r, "/login", map[string]string{"username": "asha", "password": password})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	r, _ := newRouter(t)
	body := map[string]string{"username": "asha", "email": "asha@example.com", "password": "p"}

	require.Equal(t, http.StatusCreated, post(r, "/register", body).Code)
	rec := post(r, "/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestLoginRefreshLogout(t *testing.T) {
	r, _ := newRouter(t)
	require.Equal(t, http.StatusCreated, post(r, "/register", map[string]string{
		"username": "asha", "email": "asha@example.com", "password": "s3cret-pass",
	}).Code)

	rec := post(r, "/login", map[string]string{"username": "asha", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Access)
	assert.NotEmpty(t, login.Refresh)
	require.NotNil(t, login.User)
	assert.Equal(t, "asha", login.User.Username)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = post(r, "/refresh", map[string]string{"refresh": login.Refresh})
	require.Equal(t, http.StatusOK, rec.Code)
	var refreshed models.RefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed.Access)

	assert.Equal(t, http.StatusOK, post(r, "/logout", map[string]string{"refresh": login.Refresh}).Code)
	assert.Equal(t, http.StatusUnauthorized, post(r, "/refresh", map[string]string{"refresh": login.Refresh}).Code)
}

func TestLoginFailures(t *testing.T) {
	r, _ := newRouter(t)
	require.Equal(t, http.StatusCreated, post(r, "/register", map[string]string{
		"username": "asha", "email": "asha@example.com", "password": "s3cret-pass",
	}).Code)

	rec := post(r, "/login", map[string]string{"username": "asha"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username and password are required")

	rec = post(r, "/login", map[string]string{"username": "asha", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = post(r, "/login", map[string]string{"username": "ghost", "password": "s3cret-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRequiresToken(t *testing.T) {
	r, _ := newRouter(t)
	assert.Equal(t, http.StatusBadRequest, post(r, "/refresh", map[string]string{}).Code)
	assert.Equal(t, http.StatusUnauthorized, post(r, "/refresh", map[string]string{"refresh": "junk"}).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, "/logout", map[string]string{}).Code)
}
