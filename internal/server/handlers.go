package server

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karimzidan/devatlas/internal/conjugation"
	"github.com/karimzidan/devatlas/internal/content"
)

// writePage renders the shell around a body fragment. Status must be
// written before the body.
func (s *Server) writePage(w http.ResponseWriter, status int, title, activePath string, body template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.shell.RenderPage(w, title, activePath, "/", body); err != nil {
		log.Printf("render %s: %v", activePath, err)
	}
}

// renderError shows the not-found style page for any terminal failure.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	section, topic, _ := content.SplitPath(r.URL.Path)
	body, berr := s.shell.NotFoundBody(section, topic, err)
	if berr != nil {
		http.Error(w, "not found", status)
		return
	}
	s.writePage(w, status, "Not Found", r.URL.Path, body)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	body, err := s.shell.HomeBody()
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writePage(w, http.StatusOK, "Home", "/", body)
}

// handleTopic resolves a document by its URL segments and renders it.
// Unknown topics get the terminal error page echoing what was asked for.
func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	topic := chi.URLParam(r, "topic")

	doc, err := s.store.Get(section, topic)
	if err != nil {
		s.renderError(w, r, http.StatusNotFound, err)
		return
	}
	page, err := s.renderer.Render(doc)
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	body, err := s.shell.TopicBody(&page)
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writePage(w, http.StatusOK, page.Title, r.URL.Path, body)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusNotFound, content.ErrNotFound)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results := s.index.Query(r.URL.Query().Get("q"))
	if results == nil {
		results = []content.CatalogEntry{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		log.Printf("encode search results: %v", err)
	}
}

func (s *Server) handleCases(w http.ResponseWriter, r *http.Request) {
	body, err := s.shell.CasesBody(r.URL.Query().Get("case"))
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writePage(w, http.StatusOK, "The Four Cases", "/german/cases", body)
}

func (s *Server) handleAdjectives(w http.ResponseWriter, r *http.Request) {
	body, err := s.shell.AdjectivesBody(r.URL.Query().Get("type"))
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writePage(w, http.StatusOK, "Adjective Endings", "/german/adjectives", body)
}

func (s *Server) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := s.lang(r, "vocabulary")
	body, err := s.shell.VocabBody(lang, q.Get("tab"), q.Get("expand"))
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writePage(w, http.StatusOK, "Vocabulary", "/french/vocabulary", body)
}

// handleBrowse serves the filterable glossary-style pages backed by a
// bundled document.
func (s *Server) handleBrowse(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section, topic, _ := content.SplitPath(path)
		doc, err := s.store.Get(section, topic)
		if err != nil {
			s.renderError(w, r, http.StatusNotFound, err)
			return
		}
		q := r.URL.Query()
		body, err := s.shell.BrowseBody(doc, path, q.Get("q"), q.Get("expand"))
		if err != nil {
			s.renderError(w, r, http.StatusInternalServerError, err)
			return
		}
		s.writePage(w, http.StatusOK, doc.Title, path, body)
	}
}

// handleVerbsPage shows the saved verb list. A lookup failure redirects
// back here with its message in ?error=, rendered as a banner.
func (s *Server) handleVerbsPage(w http.ResponseWriter, r *http.Request) {
	verbs, err := s.verbs.List(r.Context())
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	q := r.URL.Query()
	body, err := s.shell.VerbsBody(verbs, q.Get("error"), q.Get("expand"))
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writePage(w, http.StatusOK, "Verb Conjugations", "/french/verbs", body)
}

// handleVerbLookupForm is the HTML form counterpart of the lookup API:
// post-redirect-get, with errors carried in the redirect query. A failed
// lookup saves nothing.
func (s *Server) handleVerbLookupForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/french/verbs?error="+template.URLQueryEscaper("bad form"), http.StatusSeeOther)
		return
	}
	verb := r.PostFormValue("verb")

	conj, err := s.lookuper.Lookup(r.Context(), verb)
	if err != nil {
		msg := lookupErrMessage(verb, err)
		http.Redirect(w, r, "/french/verbs?error="+template.URLQueryEscaper(msg), http.StatusSeeOther)
		return
	}
	if _, err := s.verbs.Add(r.Context(), conj); err != nil {
		http.Redirect(w, r, "/french/verbs?error="+template.URLQueryEscaper(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/french/verbs?expand="+template.URLQueryEscaper(conj.Infinitive), http.StatusSeeOther)
}

func lookupErrMessage(verb string, err error) string {
	switch {
	case errors.Is(err, conjugation.ErrInvalidInput):
		return "that does not look like a French verb"
	case errors.Is(err, conjugation.ErrNotFound):
		return "no conjugation found for " + verb
	default:
		return "the conjugation service is unavailable, try again"
	}
}

func (s *Server) handleVerbRemoveForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err == nil {
		if err := s.verbs.Remove(r.Context(), r.PostFormValue("id")); err != nil {
			log.Printf("remove verb: %v", err)
		}
	}
	http.Redirect(w, r, "/french/verbs", http.StatusSeeOther)
}
