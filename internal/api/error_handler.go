package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/selvanails/selva-api/internal/api/handler"
	"github.com/selvanails/selva-api/internal/core/domain"
)

// errorResponse is the envelope returned for every non-validation failure.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// validationResponse lists the individual field failures of a bad request.
type validationResponse struct {
	Errors []string `json:"errors"`
}

// statusFor maps domain sentinel errors to HTTP status codes and client-facing
// messages. Unknown errors fall through to a generic 500.
func statusFor(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", true
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found", true
	case errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound, "Item not found in cart", true
	case errors.Is(err, domain.ErrServiceNotFound):
		return http.StatusNotFound, "Service not found", true
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "Post not found", true
	case errors.Is(err, domain.ErrTestimonialNotFound):
		return http.StatusNotFound, "Testimonial not found", true
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, "Notification not found", true
	}
	return 0, "", false
}

// NewHTTPErrorHandler builds the central echo.HTTPErrorHandler. Handlers
// return raw errors and the mapping to status codes and envelopes lives here.
// Internal error details reach the client only when dev is true.
func NewHTTPErrorHandler(log zerolog.Logger, dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: ve.Fields})
			return
		}

		if code, msg, ok := statusFor(err); ok {
			_ = c.JSON(code, errorResponse{Message: msg})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = c.JSON(he.Code, errorResponse{Message: msg})
			return
		}

		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")

		resp := errorResponse{Message: "Server error"}
		if dev {
			resp.Error = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, resp)
	}
}
