package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/config"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/dto"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/handler"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/middleware"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/model"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/service"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	r.users[strings.ToLower(u.Email)] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func newUserAPI(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret, JWTExpirationHours: 24}
	svc := service.NewAuthService(repo, cfg)
	h := handler.NewUsersHandler(svc)

	r := gin.New()
	g := r.Group("/api/users")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("", middleware.JWTAuth(testSecret), middleware.RequireRole("admin"), h.List)
	return r
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	r := newUserAPI(repo)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", dto.RegisterRequest{
		Username: "admin", Email: "admin@x.com", Password: "pw1234", Role: "admin",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg dto.TokenResponse
	decode(t, w, &reg)
	assert.NotEmpty(t, reg.Token)

	w = doJSON(t, r, http.MethodPost, "/api/users/login", dto.LoginRequest{
		Email: "admin@x.com", Password: "pw1234",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login dto.TokenResponse
	decode(t, w, &login)
	assert.NotEmpty(t, login.Token)

	// The issued token is accepted by the admin-only listing.
	w = doJSON(t, r, http.MethodGet, "/api/users", nil, login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var users []dto.UserResponse
	decode(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@x.com", users[0].Email)
}

func TestRegister_MissingFields(t *testing.T) {
	r := newUserAPI(newStubUserRepo())

	w := doJSON(t, r, http.MethodPost, "/api/users/register",
		map[string]any{"email": "no-pass@x.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	r := newUserAPI(repo)

	body := dto.RegisterRequest{Username: "a", Email: "dup@x.com", Password: "pw1234"}
	w := doJSON(t, r, http.MethodPost, "/api/users/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, repo.users, 1)
}

func TestLogin_WrongPassword_SameBodyAsUnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	r := newUserAPI(repo)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", dto.RegisterRequest{
		Username: "u", Email: "real@x.com", Password: "correct1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPass := doJSON(t, r, http.MethodPost, "/api/users/login", dto.LoginRequest{
		Email: "real@x.com", Password: "wrong111",
	}, "")
	unknown := doJSON(t, r, http.MethodPost, "/api/users/login", dto.LoginRequest{
		Email: "fake@x.com", Password: "correct1",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String(),
		"login failures must not reveal whether the email exists")
}

func TestListUsers_RequiresAdmin(t *testing.T) {
	repo := newStubUserRepo()
	r := newUserAPI(repo)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users", nil, signToken(t, "manager"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListUsers_NeverReturnsPasswordHash(t *testing.T) {
	repo := newStubUserRepo()
	r := newUserAPI(repo)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", dto.RegisterRequest{
		Username: "u", Email: "u@x.com", Password: "secret99",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users", nil, signToken(t, "admin"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$") // bcrypt prefix
}
