package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mzhuravlev/shop_api/internal/events"
	"github.com/mzhuravlev/shop_api/internal/models"
	"github.com/mzhuravlev/shop_api/internal/repo"
	"github.com/mzhuravlev/shop_api/internal/service"
)

type testEnv struct {
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Rating{},
	))

	r := &repo.GormRepo{DB: db}
	producer := events.NewProducer(nil)

	e := echo.New()
	Register(e, &Deps{
		UserHandler:    &UserHTTP{Svc: &service.UserService{Repo: r}, Producer: producer},
		ProductHandler: &ProductHTTP{Svc: &service.ProductService{Repo: r}, Producer: producer},
		CartHandler:    &CartHTTP{Svc: &service.CartService{Repo: r}, Producer: producer},
		RatingHandler:  &RatingHTTP{Svc: &service.RatingService{Repo: r}, Producer: producer},
	})

	return &testEnv{E: e, DB: db}
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func TestCreateUser_Handler(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/users", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"balance":  12.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.NotZero(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, 12.5, user.Balance)
}

func TestCreateUser_Handler_BadEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/users", map[string]any{
		"username": "alice",
		"email":    "bad-email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_Handler_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"username": "alice", "email": "alice@example.com"}
	rec := env.doJSON(t, http.MethodPost, "/users", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	body["username"] = "alice2"
	rec = env.doJSON(t, http.MethodPost, "/users", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUser_Handler_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/users/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser_Handler_BadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/users/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_Handler_CompositeView(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	env.DB.Create(&models.User{Username: "bob", Email: "bob@example.com"})
	env.DB.Create(&models.Product{Name: "widget", Description: "a widget", Price: 9.99})
	env.DB.Create(&models.Rating{UserID: 1, ProductID: 1, Score: 4})
	env.DB.Create(&models.Rating{UserID: 2, ProductID: 1, Score: 5})

	rec := env.doJSON(t, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "widget", view["name"])
	require.EqualValues(t, 4.5, view["average_rating"])
	require.EqualValues(t, 2, view["total_ratings"])
}

func TestAddToCart_Handler_DefaultsQuantityToOne(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	env.DB.Create(&models.Product{Name: "widget", Description: "a widget", Price: 9.99})

	rec := env.doJSON(t, http.MethodPost, "/cart", map[string]any{
		"user_id":    1,
		"product_id": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.Equal(t, uint(1), item.Quantity)
}

func TestAddToCart_Handler_ExplicitZeroRejected(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	env.DB.Create(&models.Product{Name: "widget", Description: "a widget", Price: 9.99})

	rec := env.doJSON(t, http.MethodPost, "/cart", map[string]any{
		"user_id":    1,
		"product_id": 1,
		"quantity":   0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddToCart_Handler_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})

	rec := env.doJSON(t, http.MethodPost, "/cart", map[string]any{
		"user_id":    1,
		"product_id": 42,
		"quantity":   1,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearCart_Handler(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	env.DB.Create(&models.Product{Name: "widget", Description: "a widget", Price: 9.99})
	env.DB.Create(&models.CartItem{UserID: 1, ProductID: 1, Quantity: 3})

	rec := env.doJSON(t, http.MethodDelete, "/cart/user/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	env.DB.Model(&models.CartItem{}).Count(&count)
	require.Zero(t, count)
}

func TestCreateRating_Handler_Conflict(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	env.DB.Create(&models.Product{Name: "widget", Description: "a widget", Price: 9.99})

	body := map[string]any{"user_id": 1, "product_id": 1, "score": 5}
	rec := env.doJSON(t, http.MethodPost, "/ratings", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	body["score"] = 3
	rec = env.doJSON(t, http.MethodPost, "/ratings", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRating_Handler_ScoreOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	env.DB.Create(&models.Product{Name: "widget", Description: "a widget", Price: 9.99})

	rec := env.doJSON(t, http.MethodPost, "/ratings", map[string]any{
		"user_id":    1,
		"product_id": 1,
		"score":      6,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRating_Handler(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{Username: "alice", Email: "alice@example.com"})
	env.DB.Create(&models.Product{Name: "widget", Description: "a widget", Price: 9.99})
	env.DB.Create(&models.Rating{UserID: 1, ProductID: 1, Score: 5})

	rec := env.doJSON(t, http.MethodDelete, "/ratings/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodDelete, "/ratings/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth_Handler(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := env.doJSON(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, fmt.Sprintf("path %s", path))
	}
}
