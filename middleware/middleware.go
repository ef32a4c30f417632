package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/delivery"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/base/metrics"
	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
)

type GoMiddleware struct {
	mtr metrics.Service
}

func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{mtr: metrics.New("http")}
}

// AddContext stores a ctx.Ctx under "ctx" whose logger carries the request id.
// The id is taken from X-Request-Id or generated.
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			cont := ctx.WithValue(ctx.From(c.Request().Context()), "requestID", requestID)
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs one line per request, warn for 4xx and error for 5xx
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			elapsed := time.Since(start)
			class := strconv.Itoa(res.Status/100) + "xx"
			m.mtr.BumpHistogram("request.time", float64(elapsed)/float64(time.Millisecond),
				"method", req.Method, "path", c.Path(), "status", class)

			cont, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				cont = ctx.Background()
			}
			logger := cont.WithFields(log.Fields{
				"ms":         float64(elapsed) / float64(time.Millisecond),
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"route":      c.Path(),
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			})

			switch {
			case res.Status >= 500:
				logger.WithField("nextErr", err).Error("response")
			case res.Status >= 400:
				logger.WithField("nextErr", err).Warn("response")
			default:
				logger.Info("response")
			}
			return nil
		}
	}
}

// IsValidAddress rejects requests whose path param is not a hex address
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%s: %w", param, domain.ErrInvalidAddress))
			}
			return next(c)
		}
	}
}
