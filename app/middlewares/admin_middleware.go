package middlewares

import (
	"log"
	"net/http"

	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/unrolled/render"
)

func AdminAuthMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
			if !ok || user == nil {
				helpers.RespondError(rnd, w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if !user.IsAdmin() {
				log.Printf("AdminAuthMiddleware: user %s (%s) attempted to access an admin endpoint", user.ID, user.Email)
				helpers.RespondError(rnd, w, http.StatusForbidden, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
