package controller

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/service"
)

type contextKey string

const actorKey contextKey = "actor"

// protected wraps a handler with bearer-token authentication and stores
// the acting user's id in the request context.
func (h *Handler) protected(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, service.ErrAuth)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, service.ErrAuth)
			return
		}

		user, err := h.auth.Authenticate(r.Context(), parts[1])
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, user.ID)
		next(w, r.WithContext(ctx))
	}
}

// actorID returns the authenticated user's id set by protected.
func actorID(r *http.Request) primitive.ObjectID {
	id, _ := r.Context().Value(actorKey).(primitive.ObjectID)
	return id
}

// CORS allows cross-origin browser clients. The pack's only CORS helper is
// gin-specific, so this stays hand-rolled for mux.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
