package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request and tags the response
// with an X-Request-ID, reusing the caller's when supplied.
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final.
				c.Error(err)
			}

			statusCode := c.Response().Status
			entry := log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"http_method": c.Request().Method,
				"uri":         c.Request().RequestURI,
				"status_code": statusCode,
				"latency_ms":  time.Since(start).Milliseconds(),
				"client_ip":   c.RealIP(),
				"user_agent":  c.Request().UserAgent(),
			})
			if user := CurrentUser(c); user != nil {
				entry = entry.WithField("user_id", user.ID)
			}

			switch {
			case err != nil && statusCode >= 500:
				entry.WithError(err).Error("Request processing failed")
			case statusCode >= 500:
				entry.Error("Request completed with server error")
			case statusCode >= 400:
				entry.Warn("Request completed with client error")
			default:
				entry.Info("Request completed successfully")
			}
			return nil
		}
	}
}
