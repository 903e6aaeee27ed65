package shared

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID on requests and responses.
	TraceIDHeader = "X-Trace-ID"

	// TraceIDLength is the length of a trace ID in hex characters.
	TraceIDLength = 32
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, generateTraceID())
}

// WithTraceID adds the given trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// IsValidTraceID reports whether s is a 32 character hex string.
func IsValidTraceID(s string) bool {
	if len(s) != TraceIDLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// generateTraceID returns 32 hex characters drawn from a random (v4) UUID.
func generateTraceID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
