package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/delivery"
	hcdomain "github.com/x-xyz/gallery/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/health", handler.check)
}

// @Summary health check
// @Description snapshot source, age and rpc block; 503 when the collection is not loaded or the rpc node is down
// @Tags health
// @Produce json
// @Success 200 {object} hcdomain.Status
// @Failure 503
// @Router /health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	status, err := h.healthCheck.Check(context)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, status)
}
