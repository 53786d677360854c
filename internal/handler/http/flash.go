// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package http

import (
	"encoding/base64"
	"net/http"
)

// Flash cookie names. Each carries one pending notice for the next page
// render; the render layer pops and clears them in the same response.
const (
	flashSuccessCookie = "success_msg"
	flashErrorCookie   = "error_msg"
	flashNoticeCookie  = "error"
)

// flashMaxAge bounds how long an undelivered notice survives, e.g. when
// the client never follows the redirect it was set on.
const flashMaxAge = 300

// flashSnapshot is the immutable per-request view of the pending flash
// notices. It is decoded once, before rendering, and never mutated by
// handlers; concurrent requests therefore cannot observe each other's
// notices.
type flashSnapshot struct {
	Success string
	Error   string
	Notice  string
}

// setFlash queues a one-shot notice for the next rendered page. The value
// is base64-encoded so arbitrary text survives the cookie value charset.
func setFlash(w http.ResponseWriter, name, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
	})
}

// popFlash decodes all pending flash cookies into a snapshot and expires
// them on the outgoing response, so each notice is shown exactly once.
func popFlash(w http.ResponseWriter, r *http.Request) flashSnapshot {
	return flashSnapshot{
		Success: popFlashCookie(w, r, flashSuccessCookie),
		Error:   popFlashCookie(w, r, flashErrorCookie),
		Notice:  popFlashCookie(w, r, flashNoticeCookie),
	}
}

func popFlashCookie(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		// a mangled cookie is dropped, not surfaced
		return ""
	}
	return string(decoded)
}
