package conjugation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type lookupRequest struct {
	Verb string `json:"verb"`
}

type lookupResponse struct {
	Verb  *Conjugation `json:"verb"`
	Added bool         `json:"added"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes mounts the verb endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store, lookuper Lookuper) {
	r.Get("/api/verbs", listVerbsHandler(store))
	r.Post("/api/verbs/lookup", lookupHandler(store, lookuper))
	r.Delete("/api/verbs/{id}", removeVerbHandler(store))
}

func listVerbsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verbs, err := store.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		if verbs == nil {
			verbs = []Conjugation{}
		}
		writeJSON(w, http.StatusOK, verbs)
	}
}

// lookupHandler fetches a verb and merges it into the saved list. Every
// failure leaves the list exactly as it was; the user may simply retry.
func lookupHandler(store *Store, lookuper Lookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req lookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		conj, err := lookuper.Lookup(r.Context(), req.Verb)
		switch {
		case errors.Is(err, ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		case errors.Is(err, ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		case err != nil:
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}

		added, err := store.Add(r.Context(), conj)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, lookupResponse{Verb: conj, Added: added})
	}
}

func removeVerbHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.Remove(r.Context(), id); err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
