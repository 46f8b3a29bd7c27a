package middleware

import (
	"net/http"

	"movie-discovery/internal/data/repository"
	"movie-discovery/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession resolves the session cookie before the handler runs.
// Anonymous requests are rejected here, so no protected handler ever
// touches the data store without an authenticated user id in context.
func AuthSession(sessionRepo repository.SessionRepository, cookieCfg utils.CookieConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from the session cookie
			cookie, err := r.Cookie(cookieCfg.Name)
			if err != nil || cookie.Value == "" {
				utils.ResponseBadRequest(w, "Missing userID (user not logged in)")
				return
			}

			token := cookie.Value

			// Find valid session
			session, err := sessionRepo.FindValid(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session cookie",
					zap.String("path", r.URL.Path))
				utils.ResponseBadRequest(w, "Missing userID (user not logged in)")
				return
			}

			// Set context with user info and token
			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
