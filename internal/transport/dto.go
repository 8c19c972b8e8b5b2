package transport

type CreateUserRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
}

type PatchUserRequest struct {
	Username *string  `json:"username"`
	Email    *string  `json:"email"`
	Balance  *float64 `json:"balance"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// ProductWithRating is the composite product view: catalog fields plus
// aggregated rating stats. It is never stored.
type ProductWithRating struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}

// Quantity is a pointer so an omitted field (defaults to 1) is
// distinguishable from an explicit zero (rejected).
type AddToCartRequest struct {
	UserID    uint `json:"user_id"`
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CreateRatingRequest struct {
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Score     int    `json:"score"`
	Review    string `json:"review"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
