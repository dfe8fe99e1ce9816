package middleware

import (
	"errors"
	"goodsStore/pkg/logger"
	"net/http"
	"strings"

	jsonres "goodsStore/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that never reached a handler's own response:
// unknown routes, wrong methods and recovered panics.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err,
			"method", c.Request().Method, "path", c.Request().URL.Path)
	}

	body := jsonres.Error(errorCode(code), message, nil)

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		logger.Error("Failed to write error response", err)
	}
}

func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
