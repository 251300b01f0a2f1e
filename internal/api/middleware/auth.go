package middleware

import (
	"context"
	"net/http"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

const (
	// HeaderUserID identity set by the gateway
	HeaderUserID = "X-User-ID"
	// HeaderUserRole role of the caller: admin, barber or customer
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "missing X-User-ID header"
	msgInvalidRole   = "missing or unknown X-User-Role header"
)

// Auth reads the caller identity set by the gateway and stores it in the request context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role, err := domain.ParseRole(r.Header.Get(HeaderUserRole))
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		ctx := WithActor(r.Context(), domain.Actor{ID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithActor stores the actor in ctx
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor returns the actor stored by Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
