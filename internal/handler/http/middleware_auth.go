package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
)

// auth is the gate in front of every protected route.
//
// A request without a token is rejected with 401. A request whose token
// cannot be parsed or fails [service.TokenService.Verify] is rejected with
// 403. Otherwise the verified claims are stored under [utils.ClaimsCtxKey]
// and the request continues. The gate never touches the store.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if errors.Is(err, utils.ErrMissingAuthHeader) {
			log.Debug().Err(err).Msg("request without token")
			writeErrorMessage(w, app.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Info().Err(err).Msg("malformed authorization header")
			writeErrorMessage(w, app.MsgForbidden, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			writeErrorMessage(w, app.MsgForbidden, http.StatusForbidden)
			return
		}

		ctx = context.WithValue(ctx, utils.ClaimsCtxKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
