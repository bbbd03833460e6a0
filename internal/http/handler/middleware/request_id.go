package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const (
	RequestIDKey ctxKey = iota
	SubjectKey
)

const RequestIDHeader = "X-Request-Id"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() RequestIDMiddleware {
	return RequestIDMiddleware{}
}

// RequestID reuses the caller's X-Request-Id or mints a new one, echoes it
// back and stores it in the request context.
func (RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RequestIDKey, reqID)))
	})
}

// RequestIDFrom returns the id set by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}
