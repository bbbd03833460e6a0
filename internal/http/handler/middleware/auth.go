package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Require rejects requests without a valid bearer token. The token subject
// is stored in the request context under SubjectKey.
func (m *AuthMiddleware) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestIDFrom(r.Context())

		token, ok := bearer(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w, "Authorization header with a bearer token is required")
			m.logs.Warnw("missing bearer token", "path", r.URL.Path, "request_id", requestId)
			return
		}

		sub, err := m.verifier.VerifyToken(token)
		if err != nil {
			unauthorized(w, "token is not valid")
			m.logs.Warnw("rejected bearer token", "error", err, "path", r.URL.Path, "request_id", requestId)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), SubjectKey, sub)))
	}
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="marketsync"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication required",
		"error":   detail,
	})
}
