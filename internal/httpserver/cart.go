package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mzhuravlev/shop_api/internal/events"
	"github.com/mzhuravlev/shop_api/internal/logging"
	"github.com/mzhuravlev/shop_api/internal/service"
	"github.com/mzhuravlev/shop_api/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.Svc.AddToCart(ctx, req.UserID, req.ProductID, quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add item to cart")
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(item.UserID), map[string]any{
		"type":      "cart_item_added",
		"userID":    item.UserID,
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})
	l.Info("add_to_cart_success", "cart_item_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) GetUserCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := parseID(c, "user_id")
	if err != nil {
		l.Warn("get_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.Svc.GetUserCart(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get cart")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	cartItemID, err := parseID(c, "cart_item_id")
	if err != nil {
		l.Warn("update_cart_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateCartItem(ctx, cartItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("update_cart_item_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_cart_item_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("update_cart_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart item")
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(item.UserID), map[string]any{
		"type":      "cart_item_updated",
		"userID":    item.UserID,
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})
	l.Info("update_cart_item_success", "cart_item_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	cartItemID, err := parseID(c, "cart_item_id")
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.RemoveFromCart(ctx, cartItemID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove cart item")
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(cartItemID), map[string]any{
		"type":       "cart_item_removed",
		"cartItemID": cartItemID,
	})
	l.Info("remove_from_cart_success", "cart_item_id", cartItemID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item removed from cart"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	userID, err := parseID(c, "user_id")
	if err != nil {
		l.Warn("clear_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.ClearCart(ctx, userID); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	publish(c, h.Producer, events.TopicCartEvents, fmt.Sprint(userID), map[string]any{
		"type":   "cart_cleared",
		"userID": userID,
	})
	l.Info("clear_cart_success", "user_id", userID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart cleared successfully"})
}
