package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const fallbackMessage = "An unexpected error occurred."

var errorCodes = map[int]string{
	http.StatusBadRequest:            "VALIDATION_ERROR",
	http.StatusUnauthorized:          "UNAUTHORIZED",
	http.StatusForbidden:             "FORBIDDEN",
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusNotAcceptable:         "NOT_ACCEPTABLE",
	http.StatusRequestTimeout:        "REQUEST_TIMEOUT",
	http.StatusConflict:              "CONFLICT",
	http.StatusGone:                  "GONE",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusUnprocessableEntity:   "UNPROCESSABLE_ENTITY",
	http.StatusTooManyRequests:       "RATE_LIMIT_EXCEEDED",
	http.StatusInternalServerError:   "INTERNAL_SERVER_ERROR",
	http.StatusNotImplemented:        "NOT_IMPLEMENTED",
	http.StatusBadGateway:            "BAD_GATEWAY",
	http.StatusServiceUnavailable:    "SERVICE_UNAVAILABLE",
	http.StatusGatewayTimeout:        "GATEWAY_TIMEOUT",
}

// ErrorCode maps an HTTP status to its machine-readable code.
func ErrorCode(status int) string {
	if code, ok := errorCodes[status]; ok {
		return code
	}
	return "UNKNOWN_ERROR"
}

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

type errorEnvelope struct {
	Error ErrorBody `json:"error"`
}

var priorityKeys = []string{"detail", "message", "error", "non_field_errors"}

// ErrorMessage extracts a human-readable message from an error payload.
func ErrorMessage(payload interface{}) string {
	switch v := payload.(type) {
	case nil:
		return fallbackMessage
	case string:
		if v == "" {
			return fallbackMessage
		}
		return v
	case error:
		return ErrorMessage(v.Error())
	case []string:
		return joinList(v)
	case []interface{}:
		return joinList(stringify(v))
	}

	fields, ok := toMapping(payload)
	if !ok {
		return fmt.Sprint(payload)
	}
	for _, key := range priorityKeys {
		if val, ok := fields[key]; ok {
			return ErrorMessage(val)
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return fallbackMessage
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+ErrorMessage(fields[k]))
	}
	return strings.Join(parts, "; ")
}

func joinList(items []string) string {
	if len(items) == 0 {
		return fallbackMessage
	}
	return strings.Join(items, " ")
}

func stringify(items []interface{}) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprint(item)
	}
	return out
}

func toMapping(payload interface{}) (map[string]interface{}, bool) {
	switch v := payload.(type) {
	case map[string]interface{}:
		return v, true
	case echo.Map:
		return v, true
	case map[string][]string:
		out := make(map[string]interface{}, len(v))
		for k, msgs := range v {
			out[k] = msgs
		}
		return out, true
	case map[string]string:
		out := make(map[string]interface{}, len(v))
		for k, msg := range v {
			out[k] = msg
		}
		return out, true
	}
	return nil, false
}

// resolve turns any handler error into a status and payload.
func resolve(err error) (int, interface{}) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code, he.Message
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "Not found."
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict, "A record with this value already exists."
	}
	return http.StatusInternalServerError, nil
}

// ErrorHandler renders every error as {"error": {code, message, details}}.
// Server errors are logged and never expose their cause.
func ErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, payload := resolve(err)
		body := ErrorBody{Code: ErrorCode(status)}
		if status >= http.StatusInternalServerError {
			body.Message = fallbackMessage
			log.WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"uri":        c.Request().RequestURI,
				"status":     status,
			}).WithError(err).Error("Unhandled error")
		} else {
			body.Message = ErrorMessage(payload)
			if fields, ok := toMapping(payload); ok {
				body.Details = fields
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorEnvelope{Error: body})
		}
		if writeErr != nil {
			log.WithError(writeErr).Error("Failed to write error response")
		}
	}
}
