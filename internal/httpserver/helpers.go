package httpserver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mzhuravlev/shop_api/internal/events"
	"github.com/mzhuravlev/shop_api/internal/logging"
)

func parseID(c echo.Context, name string) (uint, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer", name)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s cannot be negative", name)
	}
	return uint(v), nil
}

// publish sends an entity change event, best effort. Failures are logged and
// never surfaced to the client.
func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	if !p.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event publish failed", "topic", topic, "error", err)
	}
}
