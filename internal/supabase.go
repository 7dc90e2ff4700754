package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// SupabaseClient talks to the hosted catalog over PostgREST.
// List fetches consult the cache first and fall back to bundled sample data
// on failure, so browsing never hard-errors. Searches and writes propagate
// RemoteError for the caller to handle.
type SupabaseClient struct {
	baseURL string
	anonKey string
	http    *http.Client
	cache   *Cache
}

// NewSupabaseClient creates a catalog client
func NewSupabaseClient(baseURL, anonKey string, cache *Cache) *SupabaseClient {
	return &SupabaseClient{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
	}
}

func (c *SupabaseClient) restURL(table string, query url.Values) string {
	return fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, query.Encode())
}

func (c *SupabaseClient) do(ctx context.Context, method, rawURL string, body []byte, op string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, &RemoteError{Service: "supabase", Op: op, Err: err}
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Service: "supabase", Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Service: "supabase", Op: op, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{
			Service: "supabase",
			Op:      op,
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("unexpected status: %s", bytes.TrimSpace(data)),
		}
	}
	return data, nil
}

// FetchCharacters returns the characters in a category, most popular first.
// Cache first; on remote failure the bundled samples stand in for the
// "featured" and "private" categories and other categories come back empty.
func (c *SupabaseClient) FetchCharacters(ctx context.Context, category string) []Character {
	if cached, ok := c.cache.CachedCharacters(category); ok {
		LogDebug("using cached characters for category %s", category)
		return cached
	}

	query := url.Values{}
	query.Set("select", "*")
	query.Set("category", "eq."+category)
	query.Set("order", "popularity.desc")

	data, err := c.do(ctx, http.MethodGet, c.restURL("characters", query), nil, "fetch")
	if err == nil {
		var characters []Character
		if jsonErr := json.Unmarshal(data, &characters); jsonErr == nil {
			LogInfo("fetched %d characters (category: %s)", len(characters), category)
			c.cache.PutCharacters(characters, category)
			return characters
		} else {
			err = &ParseError{Source: "catalog", Key: "characters", Err: jsonErr}
		}
	}

	LogWarn("character fetch failed, using sample data: %v", err)
	switch category {
	case "featured":
		return SampleFeaturedCharacters
	case "private":
		return SamplePrivateCharacters
	default:
		return []Character{}
	}
}

// FetchStories returns all stories, most popular first.
// Cache first; sample stories stand in on failure.
func (c *SupabaseClient) FetchStories(ctx context.Context) []Story {
	if cached, ok := c.cache.CachedStories(); ok {
		LogDebug("using cached stories")
		return cached
	}

	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "popularity.desc")

	data, err := c.do(ctx, http.MethodGet, c.restURL("stories", query), nil, "fetch")
	if err == nil {
		var stories []Story
		if jsonErr := json.Unmarshal(data, &stories); jsonErr == nil {
			LogInfo("fetched %d stories", len(stories))
			c.cache.PutStories(stories)
			return stories
		} else {
			err = &ParseError{Source: "catalog", Key: "stories", Err: jsonErr}
		}
	}

	LogWarn("story fetch failed, using sample data: %v", err)
	return SampleStories
}

// FetchPrivateCharacters returns a user's private characters, newest first.
// Cache first; failures come back as an empty list, never an error.
func (c *SupabaseClient) FetchPrivateCharacters(ctx context.Context, userID string) []PrivateCharacter {
	if cached, ok := c.cache.CachedPrivateCharacters(userID); ok {
		LogDebug("using cached private characters for user %s", userID)
		return cached
	}

	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_id", "eq."+userID)
	query.Set("order", "created_at.desc")

	data, err := c.do(ctx, http.MethodGet, c.restURL("private_characters", query), nil, "fetch")
	if err == nil {
		var characters []PrivateCharacter
		if jsonErr := json.Unmarshal(data, &characters); jsonErr == nil {
			LogInfo("fetched %d private characters (user: %s)", len(characters), userID)
			c.cache.PutPrivateCharacters(characters, userID)
			return characters
		} else {
			err = &ParseError{Source: "catalog", Key: "private_characters", Err: jsonErr}
		}
	}

	LogWarn("private character fetch failed: %v", err)
	return []PrivateCharacter{}
}

// SearchCharacters matches the query against character names and descriptions
func (c *SupabaseClient) SearchCharacters(ctx context.Context, queryText string) ([]Character, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("or", fmt.Sprintf("(name.ilike.*%s*,description.ilike.*%s*)", queryText, queryText))

	data, err := c.do(ctx, http.MethodGet, c.restURL("characters", query), nil, "search")
	if err != nil {
		return nil, err
	}
	var characters []Character
	if err := json.Unmarshal(data, &characters); err != nil {
		return nil, &ParseError{Source: "catalog", Key: "characters", Err: err}
	}
	return characters, nil
}

// SearchStories matches the query against story titles and descriptions
func (c *SupabaseClient) SearchStories(ctx context.Context, queryText string) ([]Story, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("or", fmt.Sprintf("(title.ilike.*%s*,description.ilike.*%s*)", queryText, queryText))

	data, err := c.do(ctx, http.MethodGet, c.restURL("stories", query), nil, "search")
	if err != nil {
		return nil, err
	}
	var stories []Story
	if err := json.Unmarshal(data, &stories); err != nil {
		return nil, &ParseError{Source: "catalog", Key: "stories", Err: err}
	}
	return stories, nil
}

// CreateCharacter inserts a character and returns the stored row
func (c *SupabaseClient) CreateCharacter(ctx context.Context, character Character) (Character, error) {
	body, err := json.Marshal(character)
	if err != nil {
		return Character{}, err
	}

	query := url.Values{}
	query.Set("select", "*")
	data, err := c.do(ctx, http.MethodPost, c.restURL("characters", query), body, "create")
	if err != nil {
		return Character{}, err
	}

	var rows []Character
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return Character{}, &ParseError{Source: "catalog", Key: "characters", Err: fmt.Errorf("empty insert response")}
	}
	return rows[0], nil
}

// CreatePrivateCharacter inserts a private character owned by userID
func (c *SupabaseClient) CreatePrivateCharacter(ctx context.Context, character PrivateCharacter, userID string) (PrivateCharacter, error) {
	character.UserID = userID
	body, err := json.Marshal(character)
	if err != nil {
		return PrivateCharacter{}, err
	}

	query := url.Values{}
	query.Set("select", "*")
	data, err := c.do(ctx, http.MethodPost, c.restURL("private_characters", query), body, "create")
	if err != nil {
		return PrivateCharacter{}, err
	}

	var rows []PrivateCharacter
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return PrivateCharacter{}, &ParseError{Source: "catalog", Key: "private_characters", Err: fmt.Errorf("empty insert response")}
	}

	c.cache.Invalidate(privateCharactersCacheKey(userID))
	return rows[0], nil
}

// CreateUser inserts a user record
func (c *SupabaseClient) CreateUser(ctx context.Context, user User) (User, error) {
	body, err := json.Marshal(user)
	if err != nil {
		return User{}, err
	}

	query := url.Values{}
	query.Set("select", "*")
	data, err := c.do(ctx, http.MethodPost, c.restURL("users", query), body, "create")
	if err != nil {
		return User{}, err
	}

	var rows []User
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return User{}, &ParseError{Source: "catalog", Key: "users", Err: fmt.Errorf("empty insert response")}
	}
	return rows[0], nil
}

// DeleteUser removes a user record
func (c *SupabaseClient) DeleteUser(ctx context.Context, userID string) error {
	query := url.Values{}
	query.Set("id", "eq."+userID)
	_, err := c.do(ctx, http.MethodDelete, c.restURL("users", query), nil, "delete")
	return err
}
