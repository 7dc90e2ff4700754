package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newCatalogServer(t *testing.T, handler http.HandlerFunc) (*SupabaseClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSupabaseClient(server.URL, "test-anon-key", NewCache()), server
}

func TestSupabaseClient_FetchCharacters(t *testing.T) {
	requests := 0
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/rest/v1/characters" {
			t.Errorf("path = %q, want /rest/v1/characters", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "eq.featured" {
			t.Errorf("category filter = %q, want eq.featured", got)
		}
		if got := r.URL.Query().Get("order"); got != "popularity.desc" {
			t.Errorf("order = %q, want popularity.desc", got)
		}
		if got := r.Header.Get("apikey"); got != "test-anon-key" {
			t.Errorf("apikey header = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-anon-key" {
			t.Errorf("Authorization header = %q", got)
		}
		w.Write([]byte(`[{"id":"char-1","name":"Alice","category":"featured"}]`))
	})

	characters := client.FetchCharacters(context.Background(), "featured")
	if len(characters) != 1 || characters[0].Name != "Alice" {
		t.Fatalf("FetchCharacters() = %+v", characters)
	}

	// Second call within the TTL is served from cache
	characters = client.FetchCharacters(context.Background(), "featured")
	if len(characters) != 1 {
		t.Fatalf("cached FetchCharacters() = %+v", characters)
	}
	if requests != 1 {
		t.Errorf("remote requests = %d, want 1", requests)
	}
}

func TestSupabaseClient_FetchCharactersFallsBackToSamples(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})

	featured := client.FetchCharacters(context.Background(), "featured")
	if len(featured) != len(SampleFeaturedCharacters) {
		t.Errorf("featured fallback = %d characters, want the %d samples", len(featured), len(SampleFeaturedCharacters))
	}

	private := client.FetchCharacters(context.Background(), "private")
	if len(private) != len(SamplePrivateCharacters) {
		t.Errorf("private fallback = %d characters, want the %d samples", len(private), len(SamplePrivateCharacters))
	}

	other := client.FetchCharacters(context.Background(), "romance")
	if len(other) != 0 {
		t.Errorf("unknown-category fallback = %d characters, want 0", len(other))
	}
}

func TestSupabaseClient_FetchCharactersBadJSONFallsBack(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	})

	characters := client.FetchCharacters(context.Background(), "featured")
	if len(characters) != len(SampleFeaturedCharacters) {
		t.Errorf("bad-JSON fallback = %d characters, want the samples", len(characters))
	}
}

func TestSupabaseClient_FetchStoriesFallsBackToSamples(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	stories := client.FetchStories(context.Background())
	if len(stories) != len(SampleStories) {
		t.Errorf("story fallback = %d stories, want the %d samples", len(stories), len(SampleStories))
	}
}

func TestSupabaseClient_FetchPrivateCharactersEmptyOnFailure(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	characters := client.FetchPrivateCharacters(context.Background(), "user-1")
	if len(characters) != 0 {
		t.Errorf("private fetch failure = %d characters, want 0", len(characters))
	}
}

func TestSupabaseClient_FetchPrivateCharactersFiltersByUser(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "eq.user-1" {
			t.Errorf("user filter = %q, want eq.user-1", got)
		}
		w.Write([]byte(`[{"id":"priv-1","name":"Cleo","user_id":"user-1"}]`))
	})

	characters := client.FetchPrivateCharacters(context.Background(), "user-1")
	if len(characters) != 1 || characters[0].Name != "Cleo" {
		t.Errorf("FetchPrivateCharacters() = %+v", characters)
	}
}

func TestSupabaseClient_SearchPropagatesErrors(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	_, err := client.SearchCharacters(context.Background(), "alice")
	if err == nil {
		t.Fatal("SearchCharacters() against a failing backend succeeded")
	}
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("error = %T, want *RemoteError", err)
	}
	if remoteErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want %d", remoteErr.Status, http.StatusBadGateway)
	}
}

func TestSupabaseClient_SearchStories(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("or"); got != "(title.ilike.*city*,description.ilike.*city*)" {
			t.Errorf("or filter = %q", got)
		}
		w.Write([]byte(`[{"id":"story-1","title":"Lost City"}]`))
	})

	stories, err := client.SearchStories(context.Background(), "city")
	if err != nil {
		t.Fatalf("SearchStories() error = %v", err)
	}
	if len(stories) != 1 || stories[0].Title != "Lost City" {
		t.Errorf("SearchStories() = %+v", stories)
	}
}

func TestSupabaseClient_CreatePrivateCharacter(t *testing.T) {
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if got := r.Header.Get("Prefer"); got != "return=representation" {
			t.Errorf("Prefer header = %q", got)
		}
		w.Write([]byte(`[{"id":"priv-1","name":"Cleo","user_id":"user-1"}]`))
	})

	// Seed the user's cache so the insert's invalidation is observable
	client.cache.PutPrivateCharacters([]PrivateCharacter{}, "user-1")

	created, err := client.CreatePrivateCharacter(context.Background(), PrivateCharacter{Name: "Cleo"}, "user-1")
	if err != nil {
		t.Fatalf("CreatePrivateCharacter() error = %v", err)
	}
	if created.ID != "priv-1" || created.UserID != "user-1" {
		t.Errorf("CreatePrivateCharacter() = %+v", created)
	}
	if _, ok := client.cache.CachedPrivateCharacters("user-1"); ok {
		t.Error("insert did not invalidate the user's cached private characters")
	}
}

func TestSupabaseClient_DeleteUser(t *testing.T) {
	var gotMethod, gotFilter string
	client, _ := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotFilter = r.URL.Query().Get("id")
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteUser(context.Background(), "user-1"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if gotMethod != http.MethodDelete || gotFilter != "eq.user-1" {
		t.Errorf("request = %s id=%s, want DELETE id=eq.user-1", gotMethod, gotFilter)
	}
}

func TestSupabaseClient_UnreachableHostUsesSamples(t *testing.T) {
	client := NewSupabaseClient("http://127.0.0.1:1", "key", NewCache())
	client.http.Timeout = 500 * time.Millisecond

	characters := client.FetchCharacters(context.Background(), "featured")
	if len(characters) != len(SampleFeaturedCharacters) {
		t.Errorf("unreachable host = %d characters, want the samples", len(characters))
	}
}
