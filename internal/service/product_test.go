package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhuravlev/shop_api/internal/transport"
)

func TestProductService_CreateProduct_ThenList(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)
	require.NotZero(t, product.ID)

	products, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "widget", products[0].Name)
	assert.Equal(t, 9.99, products[0].Price)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name        string
		productName string
		description string
		price       float64
	}{
		{name: "empty name", productName: "", description: "desc", price: 1},
		{name: "empty description", productName: "widget", description: "", price: 1},
		{name: "zero price", productName: "widget", description: "desc", price: 0},
		{name: "negative price", productName: "widget", description: "desc", price: -5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product, err := svc.CreateProduct(ctx, tt.productName, tt.description, tt.price)
			require.Error(t, err)
			assert.Nil(t, product)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductService_CreateProduct_DuplicateName(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)

	product, err := svc.CreateProduct(ctx, "widget", "another widget", 1.99)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestProductService_GetProductWithRating_NoRatings(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)

	view, err := svc.GetProductWithRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, view.ID)
	assert.Equal(t, "widget", view.Name)
	assert.Equal(t, 0.0, view.AverageRating)
	assert.Equal(t, 0, view.TotalRatings)
}

func TestProductService_GetProductWithRating_Average(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	products := &ProductService{Repo: r}
	users := &UserService{Repo: r}
	ratings := &RatingService{Repo: r}
	ctx := context.Background()

	product, err := products.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)

	u1, err := users.CreateUser(ctx, "alice", "alice@example.com", 0)
	require.NoError(t, err)
	u2, err := users.CreateUser(ctx, "bob", "bob@example.com", 0)
	require.NoError(t, err)

	_, err = ratings.CreateRating(ctx, u1.ID, product.ID, 4, "")
	require.NoError(t, err)
	_, err = ratings.CreateRating(ctx, u2.ID, product.ID, 5, "nice")
	require.NoError(t, err)

	view, err := products.GetProductWithRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, view.AverageRating)
	assert.Equal(t, 2, view.TotalRatings)
}

func TestProductService_GetProductWithRating_RoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	products := &ProductService{Repo: r}
	users := &UserService{Repo: r}
	ratings := &RatingService{Repo: r}
	ctx := context.Background()

	product, err := products.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)

	scores := []int{4, 4, 5}
	for i, score := range scores {
		u, err := users.CreateUser(ctx, string(rune('a'+i)), string(rune('a'+i))+"@example.com", 0)
		require.NoError(t, err)
		_, err = ratings.CreateRating(ctx, u.ID, product.ID, score, "")
		require.NoError(t, err)
	}

	view, err := products.GetProductWithRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.33, view.AverageRating)
	assert.Equal(t, 3, view.TotalRatings)
}

func TestProductService_GetProductWithRating_NotFound(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}

	view, err := svc.GetProductWithRating(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_PatchProduct(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)

	newPrice := 19.99
	patched, err := svc.PatchProduct(ctx, product.ID, transport.PatchProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "widget", patched.Name)
	assert.Equal(t, "a widget", patched.Description)
	assert.Equal(t, 19.99, patched.Price)
}

func TestProductService_PatchProduct_InvalidPrice(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)

	zero := 0.0
	patched, err := svc.PatchProduct(ctx, product.ID, transport.PatchProductRequest{Price: &zero})
	require.Error(t, err)
	assert.Nil(t, patched)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductService_PatchProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}

	name := "gadget"
	patched, err := svc.PatchProduct(context.Background(), 999, transport.PatchProductRequest{Name: &name})
	require.Error(t, err)
	assert.Nil(t, patched)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))
	assert.ErrorIs(t, svc.DeleteProduct(ctx, product.ID), ErrNotFound)
}

// Deleting a product does not cascade to dependent rows.
func TestProductService_DeleteProduct_LeavesRatings(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	products := &ProductService{Repo: r}
	users := &UserService{Repo: r}
	ratings := &RatingService{Repo: r}
	ctx := context.Background()

	product, err := products.CreateProduct(ctx, "widget", "a widget", 9.99)
	require.NoError(t, err)
	u, err := users.CreateUser(ctx, "alice", "alice@example.com", 0)
	require.NoError(t, err)
	_, err = ratings.CreateRating(ctx, u.ID, product.ID, 5, "")
	require.NoError(t, err)

	require.NoError(t, products.DeleteProduct(ctx, product.ID))

	left, err := r.GetProductRatings(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}
