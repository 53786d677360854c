// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/models"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// pageTemplates lists the per-page templates; each one is parsed together
// with the shared layout so pages cannot redefine each other's blocks.
var pageTemplates = []string{
	"dashboard.gohtml",
	"login.gohtml",
	"register.gohtml",
	"profile.gohtml",
	"update.gohtml",
	"notfound.gohtml",
	"forbidden.gohtml",
	"error.gohtml",
}

func parseTemplates() map[string]*template.Template {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		templates[page] = template.Must(template.ParseFS(
			templateFS,
			"templates/layout.gohtml",
			"templates/"+page,
		))
	}
	return templates
}

// viewData is the single payload passed into every template execution.
// Flash is the immutable one-shot snapshot popped from the flash cookies;
// Form echoes previously submitted values back into a re-rendered form.
type viewData struct {
	Title  string
	Flash  flashSnapshot
	User   models.User
	Form   formData
	Errors []string
}

// formData carries submitted form values back into a re-rendered page.
// Passwords are never echoed.
type formData struct {
	Name  string
	Email string
}

// render executes the named page template into a buffer first, so a
// template failure produces a clean 500 instead of a half-written page.
// The flash cookies are popped here: rendering a page consumes the notices.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, status int, data viewData) {
	log := logger.FromRequest(r)

	tmpl, ok := h.templates[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data.Flash == (flashSnapshot{}) {
		data.Flash = popFlash(w, r)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("page", page).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "notfound.gohtml", http.StatusNotFound, viewData{Title: "Not Found"})
}

func (h *Handler) renderForbidden(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "forbidden.gohtml", http.StatusForbidden, viewData{Title: "Forbidden"})
}

func (h *Handler) renderServerError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "error.gohtml", http.StatusInternalServerError, viewData{Title: "Something Went Wrong"})
}
