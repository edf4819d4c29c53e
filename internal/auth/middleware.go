package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const principalKey ctxKey = "auth_principal"

var tracer = otel.Tracer("github.com/alx-crm/crm-service/auth")

// MetricsRecorder interface for recording auth metrics
type MetricsRecorder interface {
	RecordAuthFailure(ctx context.Context, reason string)
}

// Middleware validates token, injects Principal into request context.
// verifier should be created with NewVerifier.
func Middleware(ver *Verifier) func(http.Handler) http.Handler {
	return MiddlewareWithMetrics(ver, nil)
}

// MiddlewareWithMetrics validates token with metrics recording
func MiddlewareWithMetrics(ver *Verifier, metrics MetricsRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx, span := tracer.Start(ctx, "auth.Middleware",
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			authz := r.Header.Get("Authorization")
			if authz == "" {
				span.SetStatus(codes.Error, "missing authorization")
				span.SetAttributes(attribute.String("error.type", "missing_authorization"))
				if metrics != nil {
					metrics.RecordAuthFailure(ctx, "missing_authorization")
				}
				http.Error(w, "missing authorization", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				span.SetStatus(codes.Error, "invalid authorization header")
				span.SetAttributes(attribute.String("error.type", "invalid_header_format"))
				if metrics != nil {
					metrics.RecordAuthFailure(ctx, "invalid_header_format")
				}
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			tok := parts[1]
			pr, err := ver.ParseAndVerifyToken(tok)
			if err != nil {
				log.Printf("[ERROR] Token validation failed: %v", err)
				span.SetStatus(codes.Error, "token validation failed")
				span.SetAttributes(
					attribute.String("error.type", "invalid_token"),
					attribute.String("error.message", err.Error()),
				)
				if metrics != nil {
					metrics.RecordAuthFailure(ctx, "invalid_token")
				}
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			span.SetAttributes(
				attribute.String("user.id", pr.UserID),
				attribute.String("user.email", pr.Email),
				attribute.StringSlice("user.roles", pr.Roles),
			)
			span.SetStatus(codes.Ok, "authentication successful")

			ctx = context.WithValue(ctx, principalKey, pr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that ensures the principal carries the given role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx, span := tracer.Start(ctx, "auth.RequireRole",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attribute.String("role.required", role)),
			)
			defer span.End()

			pr, ok := FromContext(ctx)
			if !ok {
				span.SetStatus(codes.Error, "unauthenticated")
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			allowed := HasRole(pr, role)
			span.SetAttributes(
				attribute.Bool("role.allowed", allowed),
				attribute.String("user.id", pr.UserID),
				attribute.StringSlice("user.roles", pr.Roles),
			)

			if !allowed {
				log.Printf("[ROLE DENIED] User: %s, Roles: %v, Required Role: %s", pr.UserID, pr.Roles, role)
				span.SetStatus(codes.Error, "forbidden")
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			span.SetStatus(codes.Ok, "role granted")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext extracts Principal from context.
func FromContext(ctx context.Context) (*Principal, bool) {
	pr, ok := ctx.Value(principalKey).(*Principal)
	return pr, ok
}

// HasRole checks the principal's roles case-insensitively.
func HasRole(pr *Principal, role string) bool {
	for _, r := range pr.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
