package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSession struct {
	token string
}

func (s staticSession) Token(context.Context) (string, error) {
	return s.token, nil
}

func (s staticSession) CurrentUser(context.Context) (domain.User, error) {
	return domain.User{}, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.URL, staticSession{token: "tok-123"})
	client.HTTPClient = server.Client()
	return client
}

func TestFetchListingsDecodesDirectoryAndAttachesBearer(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ads", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Bike","description":"A sturdy city bike.","price":50,"city":"Lyon","category":{"id":2,"name":"Vehicles"}}]`))
	})

	listings, err := client.FetchListings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, domain.ListingID(1), listings[0].ID)
	assert.Equal(t, "Vehicles", listings[0].Category.Name)
	assert.Equal(t, 50, listings[0].Price)
}

func TestFetchCategoriesUsesCategoryPath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/category", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":2,"name":"Vehicles"}]`))
	})

	categories, err := client.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, domain.CategoryID(2), categories[0].ID)
}

func TestFetchCommentsMapsAuthorFields(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ads/comments/7", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":3,"comment":"is it available?","username":"bob"}]`))
	})

	comments, err := client.FetchComments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, domain.UserID(3), comments[0].AuthorID)
	assert.Equal(t, "bob", comments[0].Author)
	assert.Equal(t, "is it available?", comments[0].Text)
}

func TestCreateListingSendsDraftAndDecodes201(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ads/add", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Lamp", body["title"])
		assert.Equal(t, float64(2), body["catID"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"title":"Lamp","description":"A desk lamp.","price":20,"city":"Lyon","category":{"id":2,"name":"Vehicles"}}`))
	})

	listing, err := client.CreateListing(context.Background(), domain.ListingDraft{
		Title:       "Lamp",
		Description: "A desk lamp.",
		Price:       20,
		City:        "Lyon",
		CategoryID:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ListingID(9), listing.ID)
}

func TestCreateListingNon201IsRemoteError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateListing(context.Background(), domain.ListingDraft{Title: "Lamp"})
	rerr, ok := domain.IsRemote(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, rerr.Status)
}

func TestCreateListingRejectsUnexpected200(t *testing.T) {
	t.Parallel()

	// 200 instead of 201 means the creation was not confirmed.
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.CreateListing(context.Background(), domain.ListingDraft{Title: "Lamp"})
	rerr, ok := domain.IsRemote(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, rerr.Status)
}

func TestEditListingExpects200(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ads/edit/4", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":4}`))
	})

	require.NoError(t, client.EditListing(context.Background(), 4, domain.ListingDraft{Title: "Lamp"}))
}

func TestDeleteListingExpectsNoContent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/ads/delete/4", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteListing(context.Background(), 4))
}

func TestPostCommentSendsTextAndExpects201(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ads/comments/7", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "still available?", body["comment"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"comment":"still available?","username":"alice"}`))
	})

	require.NoError(t, client.PostComment(context.Background(), 7, "still available?"))
}

func TestSlowResponseClassifiesAsTimeout(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	})
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.FetchListings(context.Background())
	rerr, ok := domain.IsRemote(err)
	require.True(t, ok)
	assert.True(t, rerr.Timeout)
}

func TestMalformedBodyIsRemoteError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.FetchListings(context.Background())
	_, ok := domain.IsRemote(err)
	assert.True(t, ok)
}
