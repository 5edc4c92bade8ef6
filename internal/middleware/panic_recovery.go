package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. Each panic is
// logged with its stack on the "http" component and counted in
// http_panics_recovered_total{method,route} on reg. A nil reg uses the default
// registerer.
func PanicRecovery(logger *slog.Logger, reg prometheus.Registerer) echo.MiddlewareFunc {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	log := logging.Component(logger, "http")
	recovered := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Total number of handler panics recovered, by method and route",
		},
		[]string{"method", "route"},
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				req := c.Request()
				ctx := req.Context()
				traceID := logging.TraceID(ctx)
				if traceID == "" {
					traceID = GetTraceID(c)
				}
				if traceID == "" {
					traceID = "unknown"
				}

				route := c.Path()
				if route == "" {
					route = req.URL.Path
				}
				recovered.WithLabelValues(req.Method, route).Inc()

				log.ErrorContext(ctx, "Panic recovered",
					slog.String(logging.FieldTraceID, traceID),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("route", route),
					slog.String("method", req.Method),
					slog.String("stack_trace", string(debug.Stack())),
				)

				if c.Response().Committed {
					return
				}
				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				err = c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
			}()

			return next(c)
		}
	}
}
