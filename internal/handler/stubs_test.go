package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/model"
)

// In-memory repository stubs. They mimic what the store guarantees: generated
// ids and maintained timestamps.

type stubFoodRepo struct {
	foods map[uuid.UUID]*model.Food
}

func newStubFoodRepo() *stubFoodRepo {
	return &stubFoodRepo{foods: make(map[uuid.UUID]*model.Food)}
}

func (r *stubFoodRepo) Create(_ context.Context, f *model.Food) error {
	f.ID = uuid.New()
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	cp := *f
	r.foods[f.ID] = &cp
	return nil
}

func (r *stubFoodRepo) List(_ context.Context) ([]model.Food, error) {
	out := make([]model.Food, 0, len(r.foods))
	for _, f := range r.foods {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFoodRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Food, error) {
	f, ok := r.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFoodRepo) Update(_ context.Context, f *model.Food) error {
	if _, ok := r.foods[f.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.UpdatedAt = time.Now()
	cp := *f
	r.foods[f.ID] = &cp
	return nil
}

func (r *stubFoodRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.foods, id)
	return nil
}

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	c.ID = uuid.New()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.UpdatedAt = time.Now()
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

// ── HTTP helpers ──────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(), "role": role,
		"exp": time.Now().Add(time.Hour).Unix(), "iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
