package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestNewValidatesBaseURL(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)

	c, err := New("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}

func TestCreateAuthor(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/blog/authors", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateAuthorRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Albert", req.FirstName)
		assert.Equal(t, "Blanco", req.LastName)

		data, _ := json.Marshal(Author{
			ID:        "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d",
			FirstName: req.FirstName,
			LastName:  req.LastName,
			FullName:  req.FirstName + " " + req.LastName,
			CreatedAt: time.Now().UTC(),
		})
		writeEnvelope(w, http.StatusCreated, envelope{Success: true, Data: data})
	})

	author, err := c.CreateAuthor(context.Background(), CreateAuthorRequest{
		FirstName: "Albert",
		LastName:  "Blanco",
	})
	require.NoError(t, err)
	assert.Equal(t, "Albert Blanco", author.FullName)
}

func TestGetAuthorNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, envelope{
			Success: false,
			Error:   &errorInfo{Code: "ERR_NOT_FOUND", Message: "resource not found"},
		})
	})

	_, err := c.GetAuthor(context.Background(), "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsBadRequest(err))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "resource not found", notFound.Message)
}

func TestCreateAuthorValidationFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, envelope{
			Success: false,
			Error:   &errorInfo{Code: "ERR_VALIDATION", Message: "First name cannot be empty or whitespace."},
		})
	})

	_, err := c.CreateAuthor(context.Background(), CreateAuthorRequest{LastName: "Blanco"})
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))

	var badRequest *BadRequestError
	require.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "First name cannot be empty or whitespace.", badRequest.Message)
	assert.Contains(t, string(badRequest.Body), "ERR_VALIDATION")
}

func TestRateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		writeEnvelope(w, http.StatusTooManyRequests, envelope{
			Success: false,
			Error:   &errorInfo{Code: "ERR_RATE_LIMITED", Message: "Too many requests. Please try again later."},
		})
	})

	_, err := c.GetAuthor(context.Background(), "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d")
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))

	var rateLimited *RateLimitedError
	require.ErrorAs(t, err, &rateLimited)
	require.NotNil(t, rateLimited.RetryAfter)
	assert.Equal(t, 7*time.Second, *rateLimited.RetryAfter)
}

func TestRateLimitedWithoutRetryAfter(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.GetAuthor(context.Background(), "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d")
	require.Error(t, err)

	var rateLimited *RateLimitedError
	require.ErrorAs(t, err, &rateLimited)
	assert.Nil(t, rateLimited.RetryAfter)
}

func TestServerErrorsMapToAPIError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"success":false}`))
		})

		_, err := c.GetPost(context.Background(), "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d")
		require.Error(t, err)
		assert.False(t, IsNotFound(err))
		assert.False(t, IsRateLimited(err))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, status, apiErr.StatusCode)
		assert.NotEmpty(t, apiErr.Body)
	}
}

func TestListAuthorsPassesQueryAndMeta(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/blog/authors", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		assert.Equal(t, "first_name", r.URL.Query().Get("order_by"))
		assert.Equal(t, "asc", r.URL.Query().Get("order_dir"))
		assert.Equal(t, "albert", r.URL.Query().Get("search"))

		data, _ := json.Marshal([]Author{{FullName: "Albert Blanco"}})
		writeEnvelope(w, http.StatusOK, envelope{
			Success: true,
			Data:    data,
			Meta:    &ListMeta{Total: 11, Page: 2, PageSize: 10, TotalPages: 2},
		})
	})

	authors, meta, err := c.ListAuthors(context.Background(), ListOptions{
		Page:     2,
		PageSize: 10,
		OrderBy:  "first_name",
		OrderDir: "asc",
		Search:   "albert",
	})
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Albert Blanco", authors[0].FullName)
	require.NotNil(t, meta)
	assert.Equal(t, int64(11), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestListPostsByAuthor(t *testing.T) {
	authorID := "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/blog/authors/"+authorID+"/posts", r.URL.Path)

		data, _ := json.Marshal([]Post{{
			AuthorID: authorID,
			Title:    "Hello",
			Author:   &AuthorSummary{ID: authorID, Name: "Albert", Surname: "Blanco"},
		}})
		writeEnvelope(w, http.StatusOK, envelope{
			Success: true,
			Data:    data,
			Meta:    &ListMeta{Total: 1, Page: 1, PageSize: 20, TotalPages: 1},
		})
	})

	posts, meta, err := c.ListPostsByAuthor(context.Background(), authorID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "Albert", posts[0].Author.Name)
	assert.Equal(t, int64(1), meta.Total)
}

func TestDeletePostNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.DeletePost(context.Background(), "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d")
	assert.NoError(t, err)
}

func TestContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.GetAuthor(ctx, "4a3f1c1e-8d2b-4f6a-9c0d-1e2f3a4b5c6d")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestParseRetryAfter(t *testing.T) {
	t.Run("seconds", func(t *testing.T) {
		d := parseRetryAfter("30")
		require.NotNil(t, d)
		assert.Equal(t, 30*time.Second, *d)
	})

	t.Run("http date", func(t *testing.T) {
		d := parseRetryAfter(time.Now().Add(time.Minute).UTC().Format(http.TimeFormat))
		require.NotNil(t, d)
		assert.Greater(t, *d, 30*time.Second)
	})

	t.Run("past http date clamps to zero", func(t *testing.T) {
		d := parseRetryAfter(time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat))
		require.NotNil(t, d)
		assert.Equal(t, time.Duration(0), *d)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, parseRetryAfter(""))
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, parseRetryAfter("not-a-delay"))
	})
}
