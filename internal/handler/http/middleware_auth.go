// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/service"
	"github.com/ivolkov/accountdesk/internal/utils"
)

// requireAuth is the session gate in front of every protected page.
//
// It reads the session cookie, resolves the token to a user via
// [service.AuthService.Authenticate], and stores the principal and the raw
// token in the request context under [utils.PrincipalCtxKey] and
// [utils.SessionTokenCtxKey] before delegating to the next handler.
//
// A request with no cookie, an unknown token, or an expired session never
// reaches the protected handler: it is flashed "Please log in to view this
// resource" and redirected to /login. Storage failures during the lookup
// render the 500 page instead of silently logging the visitor out.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			h.denyAnonymous(w, r)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.Authenticate(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrInvalidSession) {
				log.Info().Msg("rejected stale or unknown session token")
				h.denyAnonymous(w, r)
				return
			}
			log.Err(err).Msg("session authentication failed")
			h.renderServerError(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, cookie.Value)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) denyAnonymous(w http.ResponseWriter, r *http.Request) {
	setFlash(w, flashNoticeCookie, "Please log in to view this resource")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
