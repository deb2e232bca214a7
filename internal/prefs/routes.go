package prefs

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karimzidan/devatlas/internal/config"
)

type langPayload struct {
	Page string      `json:"page"`
	Lang config.Lang `json:"lang"`
}

// RegisterRoutes mounts the preference endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/prefs/{page}", getLangHandler(store))
	r.Put("/api/prefs/{page}", setLangHandler(store))
}

func getLangHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := chi.URLParam(r, "page")
		lang, err := store.Lang(r.Context(), page)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, langPayload{Page: page, Lang: lang})
	}
}

func setLangHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := chi.URLParam(r, "page")
		var p langPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := store.SetLang(r.Context(), page, p.Lang); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, langPayload{Page: page, Lang: p.Lang})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
