package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "advisor-edge/pkg/errors"
)

// SetNoStore applies the cache and sniffing headers every JSON response carries.
func SetNoStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("X-Content-Type-Options", "nosniff")
}

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	JSON(c, http.StatusOK, data)
}

// JSON sends body with status and the fixed response headers.
func JSON(c *gin.Context, status int, body any) {
	SetNoStore(c)
	c.JSON(status, body)
}

// Error sends the client-safe form of err. HTTPErrors keep their status,
// code and message; anything else becomes the generic 500.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		JSON(c, httpErr.Status, ErrorResp{Error: httpErr.Message, Code: httpErr.Code})
		return
	}
	InternalError(c)
}

// ErrorWithMessage sends a client error with an explicit message.
func ErrorWithMessage(c *gin.Context, status int, code, message string) {
	JSON(c, status, ErrorResp{Error: message, Code: code})
}

// InternalError sends 500 with the fixed body. Error details never leave the server.
func InternalError(c *gin.Context) {
	JSON(c, http.StatusInternalServerError, ErrorResp{
		Error: DefaultErrorMessage,
		Code:  InternalServerErrorCode,
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context, message string) {
	ErrorWithMessage(c, http.StatusForbidden, "forbidden", message)
}

// NotFound sends 404 response.
func NotFound(c *gin.Context) {
	ErrorWithMessage(c, http.StatusNotFound, "not_found", "Not Found")
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	ErrorWithMessage(c, http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded. Please try again later.")
}
