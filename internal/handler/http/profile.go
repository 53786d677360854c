// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/service"
	"github.com/ivolkov/accountdesk/internal/store"
	"github.com/ivolkov/accountdesk/internal/utils"
)

// profile renders the authenticated user's own profile. The principal is
// attached to the context by requireAuth; there is no id in the URL, so a
// user can only ever see themselves here.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		h.renderServerError(w, r)
		return
	}

	h.render(w, r, "profile.gohtml", http.StatusOK, viewData{
		Title: "Profile",
		User:  principal,
	})
}

// updateForm renders the profile edit form. The owner check runs before
// the target lookup so a foreign id yields 403, not information about
// whether the account exists.
func (h *Handler) updateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		h.renderServerError(w, r)
		return
	}

	targetID := chi.URLParam(r, "id")
	if principal.ID != targetID {
		log.Warn().Str("caller", principal.ID).Str("target", targetID).Msg("profile edit form denied: caller is not the owner")
		h.renderForbidden(w, r)
		return
	}

	target, err := h.services.ProfileService.Profile(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.renderNotFound(w, r)
			return
		}
		log.Err(err).Str("id", targetID).Msg("profile lookup failed")
		h.renderServerError(w, r)
		return
	}

	h.render(w, r, "update.gohtml", http.StatusOK, viewData{
		Title: "Edit Profile",
		User:  target,
		Form:  formData{Name: target.Name, Email: target.Email},
	})
}

// update applies a name/email edit to the target profile. Failures are
// surfaced: an unknown target is a 404, a denied caller a 403, and a
// storage fault a 500 page, never a silent success.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		h.renderServerError(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	targetID := chi.URLParam(r, "id")
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	echo := viewData{
		Title: "Edit Profile",
		User:  principal,
		Form:  formData{Name: name, Email: email},
	}

	err := h.services.ProfileService.UpdateProfile(ctx, principal.ID, targetID, name, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotResourceOwner):
			log.Warn().Str("caller", principal.ID).Str("target", targetID).Msg("profile edit denied: caller is not the owner")
			h.renderForbidden(w, r)
		case errors.Is(err, service.ErrInvalidDataProvided):
			echo.Errors = []string{"Name and email are required"}
			h.render(w, r, "update.gohtml", http.StatusUnprocessableEntity, echo)
		case errors.Is(err, store.ErrEmailTaken):
			echo.Errors = []string{"Email is already registered"}
			h.render(w, r, "update.gohtml", http.StatusUnprocessableEntity, echo)
		case errors.Is(err, store.ErrUserNotFound):
			h.renderNotFound(w, r)
		default:
			log.Err(err).Str("id", targetID).Msg("profile update failed")
			h.renderServerError(w, r)
		}
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
