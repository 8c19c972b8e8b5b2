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

type RatingHTTP struct {
	Svc      *service.RatingService
	Producer *events.Producer
}

func (h *RatingHTTP) CreateRating(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rating.create")

	var req transport.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_rating_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	rating, err := h.Svc.CreateRating(ctx, req.UserID, req.ProductID, req.Score, req.Review)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrConflict) {
			l.Warn("create_rating_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("create_rating_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("create_rating_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create rating")
	}

	publish(c, h.Producer, events.TopicRatingEvents, fmt.Sprint(rating.ProductID), map[string]any{
		"type":      "rating_created",
		"ratingID":  rating.ID,
		"userID":    rating.UserID,
		"productID": rating.ProductID,
		"score":     rating.Score,
	})
	l.Info("create_rating_success", "rating_id", rating.ID)
	return c.JSON(http.StatusCreated, rating)
}

func (h *RatingHTTP) GetProductRatings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rating.by_product")

	productID, err := parseID(c, "product_id")
	if err != nil {
		l.Warn("get_product_ratings_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ratings, err := h.Svc.GetProductRatings(ctx, productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_ratings_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("get_product_ratings_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get ratings")
	}

	return c.JSON(http.StatusOK, ratings)
}

func (h *RatingHTTP) GetUserRatings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rating.by_user")

	userID, err := parseID(c, "user_id")
	if err != nil {
		l.Warn("get_user_ratings_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ratings, err := h.Svc.GetUserRatings(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_user_ratings_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("get_user_ratings_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get ratings")
	}

	return c.JSON(http.StatusOK, ratings)
}

func (h *RatingHTTP) DeleteRating(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rating.delete")

	ratingID, err := parseID(c, "rating_id")
	if err != nil {
		l.Warn("delete_rating_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.DeleteRating(ctx, ratingID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_rating_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		l.Error("delete_rating_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete rating")
	}

	publish(c, h.Producer, events.TopicRatingEvents, fmt.Sprint(ratingID), map[string]any{
		"type":     "rating_deleted",
		"ratingID": ratingID,
	})
	l.Info("delete_rating_success", "rating_id", ratingID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Rating deleted successfully"})
}
