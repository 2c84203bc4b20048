// Package medium implements the upstream Medium API client over the
// RapidAPI medium2 HTTP endpoint. It decodes the API's JSON payloads
// into the raw repository shapes, leaving every omitted field nil so
// the access layer can apply its documented defaults.
package medium

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"medium-mcp/internal/config"
	"medium-mcp/internal/observability/metrics"
	"medium-mcp/internal/repository"
)

const (
	requestTimeout = 30 * time.Second
	maxBodySize    = 10 << 20 // 10MB ceiling on upstream responses
	userAgent      = "MediumMCP/1.0"
)

// Client is a blocking HTTP client for the Medium API. It implements
// repository.MediumAPI and is safe for concurrent use: all fields are
// set at construction and never mutated.
type Client struct {
	baseURL string
	apiKey  string
	logger  *slog.Logger
	http    *http.Client
}

// NewClient creates a Medium API client from the server configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.RapidAPIKey,
		logger:  logger,
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
	}
}

// User fetches a user profile by username. The username is first
// resolved to an internal user id; an empty id in a successful response
// means the platform has no record for the handle, and (nil, nil) is
// returned so callers can distinguish "unknown user" from a failure.
func (c *Client) User(ctx context.Context, username string) (*repository.MediumUser, error) {
	var idResp userIDResponse
	if err := c.getJSON(ctx, "user_id_for", "/user/id_for/"+url.PathEscape(username), &idResp); err != nil {
		return nil, err
	}
	if idResp.ID == "" {
		return nil, nil
	}

	var resp userResponse
	if err := c.getJSON(ctx, "user_info", "/user/"+url.PathEscape(idResp.ID), &resp); err != nil {
		return nil, err
	}
	return resp.toUser(), nil
}

// UserArticles fetches the full, hydrated article list for a user. The
// upstream only exposes identifier lists, so every article is fetched
// individually; cost is proportional to the author's total output.
func (c *Client) UserArticles(ctx context.Context, username string) ([]*repository.MediumArticle, error) {
	var idResp userIDResponse
	if err := c.getJSON(ctx, "user_id_for", "/user/id_for/"+url.PathEscape(username), &idResp); err != nil {
		return nil, err
	}
	if idResp.ID == "" {
		return nil, fmt.Errorf("user not found: %s", username)
	}

	var resp userArticlesResponse
	if err := c.getJSON(ctx, "user_articles", "/user/"+url.PathEscape(idResp.ID)+"/articles", &resp); err != nil {
		return nil, err
	}
	return c.FetchArticles(ctx, resp.AssociatedArticles)
}

// ArticleContent fetches an article body in the given representation,
// along with the metadata fields of the article record.
func (c *Client) ArticleContent(ctx context.Context, articleID string, format repository.ContentFormat) (*repository.MediumArticleContent, error) {
	var info articleResponse
	if err := c.getJSON(ctx, "article_info", "/article/"+url.PathEscape(articleID), &info); err != nil {
		return nil, err
	}

	var path, endpoint string
	switch format {
	case repository.FormatHTML:
		path, endpoint = "/article/"+url.PathEscape(articleID)+"/html", "article_html"
	case repository.FormatMarkdown:
		path, endpoint = "/article/"+url.PathEscape(articleID)+"/markdown", "article_markdown"
	default:
		path, endpoint = "/article/"+url.PathEscape(articleID)+"/content", "article_content"
	}
	var body articleContentResponse
	if err := c.getJSON(ctx, endpoint, path, &body); err != nil {
		return nil, err
	}

	return &repository.MediumArticleContent{
		Title:       info.Title,
		Subtitle:    info.Subtitle,
		Content:     body.pick(format),
		Author:      info.Author.toUser(),
		PublishedAt: parseTime(info.PublishedAt),
	}, nil
}

// TopFeeds returns identifier-only stubs for the trending feed. An
// empty tag requests the unfiltered feed.
func (c *Client) TopFeeds(ctx context.Context, tag, mode string) ([]string, error) {
	path := "/topfeeds?mode=" + url.QueryEscape(mode)
	if tag != "" {
		path += "&tag=" + url.QueryEscape(tag)
	}
	var resp topFeedsResponse
	if err := c.getJSON(ctx, "topfeeds", path, &resp); err != nil {
		return nil, err
	}
	return resp.TopFeeds, nil
}

// SearchArticles returns identifier-only stubs matching the query.
func (c *Client) SearchArticles(ctx context.Context, query string) ([]string, error) {
	var resp searchResponse
	if err := c.getJSON(ctx, "search_articles", "/search/articles?query="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// FetchArticles hydrates identifier stubs into full article records,
// one sequential request per identifier, preserving input order.
func (c *Client) FetchArticles(ctx context.Context, articleIDs []string) ([]*repository.MediumArticle, error) {
	articles := make([]*repository.MediumArticle, 0, len(articleIDs))
	for _, id := range articleIDs {
		var resp articleResponse
		if err := c.getJSON(ctx, "article_info", "/article/"+url.PathEscape(id), &resp); err != nil {
			return nil, err
		}
		articles = append(articles, resp.toArticle())
	}
	return articles, nil
}

// getJSON issues one GET request against the upstream API and decodes
// the response body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, "error", time.Since(start))
		return fmt.Errorf("medium api request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	metrics.RecordUpstreamRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))
	c.logger.Debug("medium api request",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps non-200 responses to errors whose text carries the
// exact substrings the access layer classifies on.
func statusError(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limit exceeded (HTTP %d)", code)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("unauthorized (HTTP %d)", code)
	case http.StatusNotFound:
		return fmt.Errorf("not found (HTTP %d)", code)
	default:
		return fmt.Errorf("unexpected HTTP status %d", code)
	}
}
