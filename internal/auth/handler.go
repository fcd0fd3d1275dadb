package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/models"
	"github.com/careercompass/backend/internal/store"
)

const maxPasswordBytes = 72

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, hashedPw string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users    UserStore
	tokens   Strategy
	validate *validator.Validate
}

func NewHandler(users UserStore, tokens Strategy) *Handler {
	return &Handler{
		users:    users,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register creates a new user.
func (h *Handler) Register(r *http.Request) (int, any, error) {
	req, err := httpx.ParseRequest[models.RegisterRequest](r)
	if err != nil {
		return 0, nil, err
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(req); err != nil {
		return 0, nil, httpx.Validationf("%s", validationMessage(err))
	}
	// bcrypt only hashes the first 72 bytes and refuses anything longer.
	if len(req.Password) > maxPasswordBytes {
		return 0, nil, httpx.Validationf("password: ensure this field has no more than %d bytes", maxPasswordBytes)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := h.users.CreateUser(r.Context(), req.Username, req.Email, string(hashed))
	if errors.Is(err, store.ErrUserExists) {
		return 0, nil, httpx.Validationf("%s", err.Error())
	}
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, user, nil
}

// Login checks credentials and issues an access/refresh pair.
func (h *Handler) Login(r *http.Request) (int, any, error) {
	req, err := httpx.ParseRequest[models.LoginRequest](r)
	if err != nil {
		return 0, nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return 0, nil, httpx.Validationf("Username and password are required")
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil, httpx.Unauthorizedf("Invalid credentials")
	}
	if err != nil {
		return 0, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return 0, nil, httpx.Unauthorizedf("Invalid credentials")
	}

	pair, err := h.tokens.Issue(r.Context(), user.ID)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, models.LoginResponse{TokenPair: pair, User: user}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (h *Handler) Refresh(r *http.Request) (int, any, error) {
	req, err := httpx.ParseRequest[models.RefreshRequest](r)
	if err != nil {
		return 0, nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return 0, nil, httpx.Validationf("refresh: this field is required")
	}

	access, err := h.tokens.Refresh(r.Context(), req.Refresh)
	if errors.Is(err, ErrInvalidToken) {
		return 0, nil, httpx.Unauthorizedf("Token is invalid or expired")
	}
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, models.RefreshResponse{Access: access}, nil
}

// Logout revokes the given refresh token. Revoking twice is fine.
func (h *Handler) Logout(r *http.Request) (int, any, error) {
	req, err := httpx.ParseRequest[models.RefreshRequest](r)
	if err != nil {
		return 0, nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return 0, nil, httpx.Validationf("refresh: this field is required")
	}

	if err := h.tokens.Revoke(r.Context(), req.Refresh); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, map[string]string{"message": "logged out"}, nil
}

// Home is the authenticated landing endpoint.
func (h *Handler) Home(r *http.Request) (int, any, error) {
	return http.StatusOK, map[string]string{"message": "Hello, World!"}, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+": this field is required")
		case "email":
			msgs = append(msgs, field+": enter a valid email address")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: ensure this field has no more than %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, field+": invalid value")
		}
	}
	return strings.Join(msgs, "; ")
}
