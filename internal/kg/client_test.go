package kg

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dbmrq/kgr/internal/config"
	"github.com/dbmrq/kgr/internal/errors"
)

// newTestClient returns a client pointed at a stub API server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewConfig()
	cfg.API.Key = "test-key"
	cfg.API.Endpoint = server.URL

	client, err := NewClient(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return client
}

// searchResponse renders a minimal JSON-LD search response.
func searchResponse(items ...string) string {
	body := "["
	for i, item := range items {
		if i > 0 {
			body += ","
		}
		body += item
	}
	body += "]"
	return fmt.Sprintf(`{"@type": "ItemList", "itemListElement": %s}`, body)
}

func entityItem(name string, score float64) string {
	return fmt.Sprintf(`{
		"@type": "EntitySearchResult",
		"result": {
			"@id": "kg:/m/test",
			"name": %q,
			"@type": ["Thing", "Place"],
			"description": "A test entity"
		},
		"resultScore": %v
	}`, name, score)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	cfg := config.NewConfig()
	_, err := NewClient(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !stderrors.Is(err, errors.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}

func TestSearch_ParsesEntities(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "Mntn View" {
			t.Errorf("expected query 'Mntn View', got %q", got)
		}
		fmt.Fprint(w, searchResponse(entityItem("Mountain View", 1200)))
	})

	entities, err := client.Search(context.Background(), "Mntn View")
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}

	e := entities[0]
	if e.Name != "Mountain View" {
		t.Errorf("expected name 'Mountain View', got %q", e.Name)
	}
	if e.ID != "kg:/m/test" {
		t.Errorf("expected ID 'kg:/m/test', got %q", e.ID)
	}
	if e.Score != 1200 {
		t.Errorf("expected score 1200, got %v", e.Score)
	}
	if e.Description != "A test entity" {
		t.Errorf("expected description, got %q", e.Description)
	}
	if len(e.Types) != 2 || e.Types[0] != "Thing" {
		t.Errorf("expected types [Thing Place], got %v", e.Types)
	}
}

func TestSearch_SkipsMalformedElements(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchResponse(
			`{"resultScore": 500}`,                               // no result object
			`{"result": {"@id": "kg:/m/x"}, "resultScore": 900}`, // no name
			entityItem("Valid", 1500),
		))
	})

	entities, err := client.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 valid entity, got %d", len(entities))
	}
	if entities[0].Name != "Valid" {
		t.Errorf("expected the valid entity, got %q", entities[0].Name)
	}
}

func TestSuggest_AboveMinScore(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchResponse(entityItem("Mountain View", 1500)))
	})

	got, err := client.Suggest(context.Background(), "Mntn View")
	if err != nil {
		t.Fatalf("Suggest() failed: %v", err)
	}
	if got != "Mountain View" {
		t.Errorf("expected suggestion 'Mountain View', got %q", got)
	}
}

func TestSuggest_BelowMinScore(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchResponse(entityItem("Mountain View", 400)))
	})

	got, err := client.Suggest(context.Background(), "Mntn View")
	if err != nil {
		t.Fatalf("Suggest() failed: %v", err)
	}
	// A weak match echoes the input back
	if got != "Mntn View" {
		t.Errorf("expected input echoed back, got %q", got)
	}
}

func TestSuggest_NoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchResponse())
	})

	got, err := client.Suggest(context.Background(), "zzzzz")
	if err != nil {
		t.Fatalf("Suggest() failed: %v", err)
	}
	if got != "zzzzz" {
		t.Errorf("expected input echoed back, got %q", got)
	}
}

func TestSearch_QuotaExceeded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"code": 429, "message": "quota exhausted"}}`)
	})

	_, err := client.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, errors.ErrRateLimit) {
		t.Errorf("expected ErrRateLimit, got %v", err)
	}
}

func TestSearch_InvalidKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"code": 400, "message": "API key not valid"}}`)
	})

	_, err := client.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, errors.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}

func TestSearch_PassesFilters(t *testing.T) {
	var gotLanguages, gotTypes []string
	client := func() *Client {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLanguages = r.URL.Query()["languages"]
			gotTypes = r.URL.Query()["types"]
			fmt.Fprint(w, searchResponse())
		}))
		t.Cleanup(server.Close)

		cfg := config.NewConfig()
		cfg.API.Key = "test-key"
		cfg.API.Endpoint = server.URL
		cfg.API.Languages = []string{"en", "de"}
		cfg.API.Types = []string{"Place"}

		c, err := NewClient(context.Background(), cfg)
		if err != nil {
			t.Fatalf("NewClient() failed: %v", err)
		}
		return c
	}()

	if _, err := client.Search(context.Background(), "anything"); err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(gotLanguages) != 2 {
		t.Errorf("expected 2 language params, got %v", gotLanguages)
	}
	if len(gotTypes) != 1 || gotTypes[0] != "Place" {
		t.Errorf("expected types=[Place], got %v", gotTypes)
	}
}
