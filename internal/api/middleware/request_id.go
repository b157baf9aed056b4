package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	// SessionIDHeader identifies the dashboard session owning the view state.
	SessionIDHeader = "X-Session-ID"

	ctxKeyRequestID contextKey = "request_id"
	ctxKeySessionID contextKey = "session_id"
)

// RequestID injects a unique request ID into the context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyRequestID, rid),
		)
		c.Next()
	}
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// SessionID resolves the session ID for the request. Clients without one get
// a fresh ID assigned; the response header echoes it either way so the client
// can pin it for subsequent requests.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionIDHeader)
		if sid == "" {
			id, _ := uuid.NewV7()
			sid = id.String()
		}
		c.Set(string(ctxKeySessionID), sid)
		c.Writer.Header().Set(SessionIDHeader, sid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeySessionID, sid),
		)
		c.Next()
	}
}

// GetSessionID extracts the session ID from context.
func GetSessionID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeySessionID).(string); ok {
		return v
	}
	return ""
}
