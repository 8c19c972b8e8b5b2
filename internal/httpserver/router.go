package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	UserHandler    *UserHTTP
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	RatingHandler  *RatingHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	users := e.Group("/users")
	users.POST("", d.UserHandler.CreateUser)
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PUT("/:id", d.UserHandler.PatchUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	products := e.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.PatchProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	cart := e.Group("/cart")
	cart.POST("", d.CartHandler.AddToCart)
	cart.GET("/:user_id", d.CartHandler.GetUserCart)
	cart.PUT("/:cart_item_id", d.CartHandler.UpdateCartItem)
	cart.DELETE("/user/:user_id", d.CartHandler.ClearCart)
	cart.DELETE("/:cart_item_id", d.CartHandler.RemoveFromCart)

	ratings := e.Group("/ratings")
	ratings.POST("", d.RatingHandler.CreateRating)
	ratings.GET("/product/:product_id", d.RatingHandler.GetProductRatings)
	ratings.GET("/user/:user_id", d.RatingHandler.GetUserRatings)
	ratings.DELETE("/:rating_id", d.RatingHandler.DeleteRating)
}
