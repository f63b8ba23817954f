// Package httpx holds the gin middleware and error envelope shared by the
// HTTP handlers.
package httpx

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"novadex/internal/apperr"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
)

type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// RequestID echoes the caller's X-Request-ID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// AbortWithError writes the error envelope for err. Internal errors are
// logged with their cause and answered with a generic message.
func AbortWithError(c *gin.Context, op string, err error) {
	status := apperr.HTTPStatus(err)
	if apperr.KindOf(err) == apperr.KindInternal {
		log.Printf("[api] %s failed (request %s): %v", op, GetRequestID(c), err)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: ErrorBody{
		Message: apperr.PublicMessage(err),
		Status:  status,
	}})
}

// NotFound is the NoRoute/NoMethod handler.
func NotFound(c *gin.Context) {
	AbortWithError(c, "route", apperr.NotFound("Not found"))
}

// Recovery turns panics into the internal error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		AbortWithError(c, c.FullPath(), apperr.Internal("panic", errors.New(toString(recovered))))
	})
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}
