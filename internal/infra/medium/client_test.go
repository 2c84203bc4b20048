package medium

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medium-mcp/internal/config"
	"medium-mcp/internal/repository"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.Config{
		RapidAPIKey: "test-key-0123456789",
		BaseURL:     srv.URL,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUserMapsResponse(t *testing.T) {
	var gotKey, gotAgent string
	mux := http.NewServeMux()
	mux.HandleFunc("/user/id_for/kenny", func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"id":"u1"}`))
	})
	mux.HandleFunc("/user/u1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "u1",
			"username": "kenny",
			"fullname": "Kenny Writer",
			"bio": "writes things",
			"followers_count": 120,
			"following_count": 15,
			"medium_member_at": "2020-06-01 12:00:00",
			"is_writer_program_enrolled": true
		}`))
	})
	client := newTestClient(t, mux)

	user, err := client.User(context.Background(), "kenny")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "test-key-0123456789", gotKey)
	assert.Equal(t, "MediumMCP/1.0", gotAgent)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "kenny", user.Username)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "writes things", *user.Bio)
	require.NotNil(t, user.FollowingCount)
	assert.Equal(t, 15, *user.FollowingCount)
	require.NotNil(t, user.MediumMemberAt)
	assert.Equal(t, time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC), *user.MediumMemberAt)
	require.NotNil(t, user.IsWriterProgramEnrolled)
	assert.True(t, *user.IsWriterProgramEnrolled)
	assert.Nil(t, user.TwitterUsername)
	assert.Nil(t, user.HasList)
}

func TestUserUnknownHandle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/id_for/ghost", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":null}`))
	})
	client := newTestClient(t, mux)

	user, err := client.User(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStatusErrorSubstrings(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, want: "rate limit"},
		{name: "unauthorized", status: http.StatusUnauthorized, want: "unauthorized"},
		{name: "forbidden", status: http.StatusForbidden, want: "unauthorized"},
		{name: "not found", status: http.StatusNotFound, want: "not found"},
		{name: "server error", status: http.StatusInternalServerError, want: "unexpected HTTP status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := client.User(context.Background(), "kenny")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUserArticlesHydratesAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/id_for/kenny", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"u1"}`))
	})
	mux.HandleFunc("/user/u1/articles", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"associated_articles":["a1","a2","a3"]}`))
	})
	mux.HandleFunc("/article/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/article/"):]
		_, _ = w.Write([]byte(`{"id":"` + id + `","title":"title-` + id + `"}`))
	})
	client := newTestClient(t, mux)

	articles, err := client.UserArticles(context.Background(), "kenny")
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "a1", articles[0].ID)
	assert.Equal(t, "a2", articles[1].ID)
	assert.Equal(t, "a3", articles[2].ID)
	assert.Equal(t, "title-a2", articles[1].Title)
}

func TestUserArticlesUnknownHandle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/id_for/ghost", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	client := newTestClient(t, mux)

	_, err := client.UserArticles(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found: ghost")
}

func TestArticleContentFormats(t *testing.T) {
	tests := []struct {
		format  repository.ContentFormat
		path    string
		payload string
		want    string
	}{
		{format: repository.FormatText, path: "/article/a1/content", payload: `{"content":"plain body"}`, want: "plain body"},
		{format: repository.FormatHTML, path: "/article/a1/html", payload: `{"html":"<p>body</p>"}`, want: "<p>body</p>"},
		{format: repository.FormatMarkdown, path: "/article/a1/markdown", payload: `{"markdown":"# body"}`, want: "# body"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/article/a1", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{
					"id": "a1",
					"title": "Deep Dive",
					"subtitle": "part one",
					"author": "u1",
					"published_at": "2024-03-10 08:15:30"
				}`))
			})
			mux.HandleFunc(tt.path, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.payload))
			})
			client := newTestClient(t, mux)

			content, err := client.ArticleContent(context.Background(), "a1", tt.format)
			require.NoError(t, err)

			assert.Equal(t, "Deep Dive", content.Title)
			assert.Equal(t, tt.want, content.Content)
			require.NotNil(t, content.Author)
			// Identifier-only author references keep the id as handle.
			assert.Equal(t, "u1", content.Author.Username)
			require.NotNil(t, content.PublishedAt)
			assert.Equal(t, time.Date(2024, 3, 10, 8, 15, 30, 0, time.UTC), *content.PublishedAt)
		})
	}
}

func TestTopFeedsQueryParams(t *testing.T) {
	var gotMode, gotTag string
	mux := http.NewServeMux()
	mux.HandleFunc("/topfeeds", func(w http.ResponseWriter, r *http.Request) {
		gotMode = r.URL.Query().Get("mode")
		gotTag = r.URL.Query().Get("tag")
		_, _ = w.Write([]byte(`{"topfeeds":["a1","a2"]}`))
	})
	client := newTestClient(t, mux)

	ids, err := client.TopFeeds(context.Background(), "data-science", "top_week")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, ids)
	assert.Equal(t, "top_week", gotMode)
	assert.Equal(t, "data-science", gotTag)
}

func TestTopFeedsOmitsEmptyTag(t *testing.T) {
	var hasTag bool
	mux := http.NewServeMux()
	mux.HandleFunc("/topfeeds", func(w http.ResponseWriter, r *http.Request) {
		hasTag = r.URL.Query().Has("tag")
		_, _ = w.Write([]byte(`{"topfeeds":[]}`))
	})
	client := newTestClient(t, mux)

	_, err := client.TopFeeds(context.Background(), "", "hot")
	require.NoError(t, err)
	assert.False(t, hasTag)
}

func TestSearchArticlesEscapesQuery(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/search/articles", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"articles":["s1"]}`))
	})
	client := newTestClient(t, mux)

	ids, err := client.SearchArticles(context.Background(), "go concurrency & channels")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, ids)
	assert.Equal(t, "go concurrency & channels", gotQuery)
}

func TestFetchArticlesPreservesOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/article/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/article/"):]
		_, _ = w.Write([]byte(`{"id":"` + id + `"}`))
	})
	client := newTestClient(t, mux)

	articles, err := client.FetchArticles(context.Background(), []string{"c", "a", "b"})
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "c", articles[0].ID)
	assert.Equal(t, "a", articles[1].ID)
	assert.Equal(t, "b", articles[2].ID)
}

func TestFetchArticlesAuthorObjectReference(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/article/a1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"a1","author":{"id":"u1","username":"kenny"},"lang":"fr"}`))
	})
	client := newTestClient(t, mux)

	articles, err := client.FetchArticles(context.Background(), []string{"a1"})
	require.NoError(t, err)
	require.Len(t, articles, 1)

	require.NotNil(t, articles[0].Author)
	assert.Equal(t, "kenny", articles[0].Author.Username)
	require.NotNil(t, articles[0].Language)
	assert.Equal(t, "fr", *articles[0].Language)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{name: "space separated", value: "2022-01-01 10:00:00", want: ptrTime(time.Date(2022, 1, 1, 10, 0, 0, 0, time.UTC))},
		{name: "T separated", value: "2022-01-01T10:00:00", want: ptrTime(time.Date(2022, 1, 1, 10, 0, 0, 0, time.UTC))},
		{name: "rfc3339", value: "2022-01-01T10:00:00Z", want: ptrTime(time.Date(2022, 1, 1, 10, 0, 0, 0, time.UTC))},
		{name: "empty", value: "", want: nil},
		{name: "garbage", value: "yesterday", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTime(&tt.value)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}

	assert.Nil(t, parseTime(nil))
}

func ptrTime(t time.Time) *time.Time { return &t }
