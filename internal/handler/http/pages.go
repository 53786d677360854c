package http

import "net/http"

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "dashboard.gohtml", http.StatusOK, viewData{Title: "Home"})
}
