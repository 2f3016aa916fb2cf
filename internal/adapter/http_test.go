package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braindrop/internal/config"
	"braindrop/internal/logger"
	"braindrop/models"
)

// newTestAPI builds an httpRaindropAPI pointed at the test server.
func newTestAPI(t *testing.T, serverURL string) *httpRaindropAPI {
	t.Helper()
	cfg := config.API{
		BaseURL:        serverURL,
		Token:          "test-token",
		RequestTimeout: 5 * time.Second,
	}

	api, err := NewHTTPRaindropAPI(cfg, logger.Nop())
	require.NoError(t, err)
	return api.(*httpRaindropAPI)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPRaindropAPI_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPRaindropAPI(config.API{BaseURL: ""}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPRaindropAPI_AddsSchemeWhenMissing(t *testing.T) {
	api, err := NewHTTPRaindropAPI(config.API{BaseURL: "api.raindrop.io/rest/v1"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "https://api.raindrop.io/rest/v1", api.(*httpRaindropAPI).client.BaseURL)
}

// ── User ────────────────────────────────────────────────────────────────────

func TestUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true,"user":{"_id":42,"email":"user@example.com","fullName":"A User","pro":false}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	user, err := api.User(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Unauthorized"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.User(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUser_ResultFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":false}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.User(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

// ── Collections ─────────────────────────────────────────────────────────────

func TestCollections_RootAndChildren(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/collections":
			_, _ = w.Write([]byte(`{"result":true,"items":[{"_id":1,"title":"Root","count":3,"cover":[],"expanded":true,"public":false,"sort":0,"view":"list"}]}`))
		case "/collections/childrens":
			_, _ = w.Write([]byte(`{"result":true,"items":[{"_id":2,"title":"Child","count":1,"cover":[],"expanded":true,"public":false,"sort":0,"view":"list","parent":{"$id":1}}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)

	roots, err := api.Collections(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Root", roots[0].Title)
	assert.Zero(t, roots[0].Parent)

	children, err := api.Collections(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, int64(1), children[0].Parent)
}

// ── Raindrops ───────────────────────────────────────────────────────────────

func TestRaindrops_PagesUntilEmpty(t *testing.T) {
	pages := map[string]string{
		"0": `{"result":true,"items":[{"_id":1,"collection":{"$id":0},"link":"https://one.example.com/","tags":[],"title":"one"},{"_id":2,"collection":{"$id":0},"link":"https://two.example.com/","tags":[],"title":"two"}]}`,
		"1": `{"result":true,"items":[{"_id":3,"collection":{"$id":0},"link":"https://three.example.com/","tags":[],"title":"three"}]}`,
		"2": `{"result":true,"items":[]}`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/raindrops/0", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("perpage"))

		body, ok := pages[r.URL.Query().Get("page")]
		require.True(t, ok, "unexpected page %s", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)

	var progressCalls []int
	raindrops, err := api.Raindrops(context.Background(), 0, func(count int) {
		progressCalls = append(progressCalls, count)
	})

	require.NoError(t, err)
	require.Len(t, raindrops, 3)
	assert.Equal(t, int64(3), raindrops[2].ID)
	assert.Equal(t, []int{2, 3}, progressCalls)
}

func TestRaindrops_RejectsLocalCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)

	for _, collection := range []models.SpecialCollection{
		models.CollectionUntagged, models.CollectionBroken,
	} {
		_, err := api.Raindrops(context.Background(), int64(collection), nil)
		assert.ErrorIs(t, err, ErrLocalCollection, "collection %d", collection)
	}
}

func TestRaindrops_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.Raindrops(context.Background(), 0, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Tags ────────────────────────────────────────────────────────────────────

func TestTags_AllAndScoped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tags":
			_, _ = w.Write([]byte(`{"result":true,"items":[{"_id":"go","count":5},{"_id":"tui","count":2}]}`))
		case "/tags/7":
			_, _ = w.Write([]byte(`{"result":true,"items":[{"_id":"go","count":1}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)

	all, err := api.Tags(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.Tag("go"), all[0].Tag)
	assert.Equal(t, 5, all[0].Count)

	collection := int64(7)
	scoped, err := api.Tags(context.Background(), &collection)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
}

// ── AddRaindrop / UpdateRaindrop / RemoveRaindrop ───────────────────────────

func TestAddRaindrop_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/raindrop", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// A brand-new raindrop must not claim a server ID.
		assert.NotContains(t, body, "_id")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true,"item":{"_id":99,"collection":{"$id":-1},"link":"https://example.com/","tags":[],"title":"Example"}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	saved, err := api.AddRaindrop(context.Background(), models.Raindrop{
		Collection: int64(models.CollectionUnsorted),
		Link:       "https://example.com/",
		Title:      "Example",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(99), saved.ID)
}

func TestUpdateRaindrop_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/raindrop/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true,"item":{"_id":42,"collection":{"$id":0},"link":"https://example.com/","tags":["go"],"title":"Renamed"}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	updated, err := api.UpdateRaindrop(context.Background(), models.Raindrop{ID: 42, Title: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestRemoveRaindrop_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/raindrop/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	require.NoError(t, api.RemoveRaindrop(context.Background(), 42))
}

func TestRemoveRaindrop_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	err := api.RemoveRaindrop(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Suggestions ─────────────────────────────────────────────────────────────

func TestSuggestions_BrandNewUsesLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/raindrop/suggest", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://example.com/", body["link"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true,"item":{"tags":["go","tui"],"collections":[{"$id":7}]}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	suggestions, err := api.Suggestions(context.Background(), models.Raindrop{Link: "https://example.com/"})

	require.NoError(t, err)
	assert.Equal(t, []models.Tag{"go", "tui"}, suggestions.Tags)
	assert.Equal(t, []int64{7}, suggestions.Collections)
}

func TestSuggestions_ExistingUsesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/raindrop/42/suggest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true,"item":{"tags":["go"],"collections":[]}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	suggestions, err := api.Suggestions(context.Background(), models.Raindrop{ID: 42, Link: "https://example.com/"})

	require.NoError(t, err)
	assert.Equal(t, []models.Tag{"go"}, suggestions.Tags)
}

// ── rate limiting ───────────────────────────────────────────────────────────

func TestTooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "rate limited")
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.User(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyRequests)
}
