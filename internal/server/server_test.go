package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/conjugation"
	"github.com/karimzidan/devatlas/internal/content"
	"github.com/karimzidan/devatlas/internal/db"
	"github.com/karimzidan/devatlas/internal/prefs"
)

type fakeLookuper struct {
	conj *conjugation.Conjugation
	err  error
}

func (f fakeLookuper) Lookup(ctx context.Context, verb string) (*conjugation.Conjugation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.conj, nil
}

func newTestServer(t *testing.T, lookuper conjugation.Lookuper) *Server {
	t.Helper()
	store, err := content.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if lookuper == nil {
		lookuper = fakeLookuper{err: conjugation.ErrUnavailable}
	}
	return New(
		Config{Port: 0, SiteName: "DevAtlas"},
		store,
		prefs.NewStore(database, config.LangEnglish),
		conjugation.NewStore(database),
		lookuper,
	)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestTopicPageEndToEnd(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/architecture/solid")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"SOLID Principles",
		"Five design principles",
		"Single Responsibility",
		"Dependency Inversion",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	// Sections render in authored order.
	first := strings.Index(body, "Single Responsibility")
	last := strings.Index(body, "Dependency Inversion")
	if first < 0 || last < 0 || first > last {
		t.Error("sections rendered out of order")
	}
}

func TestUnknownTopicEchoesRequest(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/nope/missing")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "nope") || !strings.Contains(body, "missing") {
		t.Error("error page should echo the requested section and topic")
	}
	// The sidebar survives so the reader can navigate away.
	if !strings.Contains(body, "Collections Framework") {
		t.Error("error page should keep the navigation")
	}
}

func TestDeepUnknownPathIsNotFound(t *testing.T) {
	s := newTestServer(t, nil)
	if rec := get(t, s, "/a/b/c/d"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSearchAPI(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/api/search?q=co")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var results []content.CatalogEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results for \"co\"")
	}
	if results[0].Title != "Collections Framework" {
		t.Errorf("first result = %q, want catalog order", results[0].Title)
	}

	// Below the minimum length the API returns an empty list, not an error.
	rec = get(t, s, "/api/search?q=c")
	var short []content.CatalogEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &short); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(short) != 0 {
		t.Errorf("one-character query returned %d results, want 0", len(short))
	}
}

func TestSpecializedRoutesPrecedeGenericTopic(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/german/cases?case=dativ")
	if rec.Code != http.StatusOK {
		t.Fatalf("cases status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tabs") {
		t.Error("case browser should render its tab bar")
	}

	if rec := get(t, s, "/german/adjectives"); rec.Code != http.StatusOK {
		t.Fatalf("adjectives status = %d, want 200", rec.Code)
	}
	if rec := get(t, s, "/process/scrum?q=sprint"); rec.Code != http.StatusOK {
		t.Fatalf("scrum browse status = %d, want 200", rec.Code)
	}
}

func TestVocabularyLangParamPersists(t *testing.T) {
	s := newTestServer(t, nil)

	get(t, s, "/french/vocabulary?lang=fr")
	rec := get(t, s, "/french/vocabulary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	fr := rec.Body.String()

	get(t, s, "/french/vocabulary?lang=en")
	en := get(t, s, "/french/vocabulary").Body.String()
	if fr == en {
		t.Error("stored language preference should change the page")
	}
}

func TestVerbFormLookupSavesOnSuccess(t *testing.T) {
	s := newTestServer(t, fakeLookuper{conj: &conjugation.Conjugation{
		Infinitive: "parler",
		Tenses:     []conjugation.Tense{{Name: "Présent", Forms: []string{"je parle"}}},
	}})

	rec := postForm(t, s, "/french/verbs", url.Values{"verb": {"parler"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	page := get(t, s, "/french/verbs").Body.String()
	if !strings.Contains(page, "parler") {
		t.Error("saved verb should appear in the list")
	}
	if strings.Contains(page, "error-banner") {
		t.Error("no banner after a successful lookup")
	}
}

func TestVerbFormLookupFailureSavesNothing(t *testing.T) {
	s := newTestServer(t, fakeLookuper{err: conjugation.ErrUnavailable})

	rec := postForm(t, s, "/french/verbs", url.Values{"verb": {"parler"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "error=") {
		t.Fatalf("redirect %q should carry the error", loc)
	}

	page := get(t, s, loc).Body.String()
	if !strings.Contains(page, "error-banner") {
		t.Error("failed lookup should render a banner")
	}
	if !strings.Contains(page, "No saved verbs yet") {
		t.Error("failed lookup must leave the list empty")
	}
}

func TestPanicRendersErrorPage(t *testing.T) {
	s := newTestServer(t, nil)
	s.Router().Get("/boom/now", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	rec := get(t, s, "/boom/now")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Collections Framework") {
		t.Error("panic page should keep the navigation")
	}
}
