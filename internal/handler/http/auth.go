// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package http

import (
	"errors"
	"net/http"

	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/service"
	"github.com/ivolkov/accountdesk/internal/store"
)

// sessionCookie is the name of the cookie carrying the opaque session token.
const sessionCookie = "session_token"

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.gohtml", http.StatusOK, viewData{Title: "Register"})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	input := service.RegisterInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	echo := formData{Name: input.Name, Email: input.Email}

	// field-level validation happens here so the form can name what is
	// missing; the service repeats the check as a backstop
	var fieldErrors []string
	if input.Name == "" {
		fieldErrors = append(fieldErrors, "Name is required")
	}
	if input.Email == "" {
		fieldErrors = append(fieldErrors, "Email is required")
	}
	if input.Password == "" {
		fieldErrors = append(fieldErrors, "Password is required")
	}
	if len(fieldErrors) > 0 {
		h.render(w, r, "register.gohtml", http.StatusUnprocessableEntity, viewData{
			Title:  "Register",
			Form:   echo,
			Errors: fieldErrors,
		})
		return
	}

	if _, err := h.services.AuthService.Register(ctx, input); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.render(w, r, "register.gohtml", http.StatusUnprocessableEntity, viewData{
				Title:  "Register",
				Form:   echo,
				Errors: []string{"All fields are required"},
			})
			return
		case errors.Is(err, store.ErrEmailTaken):
			log.Info().Str("email", input.Email).Msg("registration rejected: email already registered")
			h.render(w, r, "register.gohtml", http.StatusUnprocessableEntity, viewData{
				Title:  "Register",
				Form:   echo,
				Errors: []string{"Email is already registered"},
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.renderServerError(w, r)
			return
		}
	}

	setFlash(w, flashSuccessCookie, "You are now registered and can log in!")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.gohtml", http.StatusOK, viewData{Title: "Log In"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// one message for unknown email and wrong password alike
			setFlash(w, flashErrorCookie, "Invalid email or password")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user login")
		h.renderServerError(w, r)
		return
	}

	session, err := h.services.AuthService.OpenSession(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("session creation failed")
		h.renderServerError(w, r)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// logout destroys the current session, if any, and always lands on the
// login page. Logging out twice is not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.services.AuthService.Logout(ctx, cookie.Value); err != nil {
			log.Err(err).Msg("session destruction failed")
			h.renderServerError(w, r)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	setFlash(w, flashSuccessCookie, "You are successfully logged out!")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
