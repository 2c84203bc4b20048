// Package medium implements the access layer over the raw Medium API:
// it normalizes raw records into the fixed output shapes, applies the
// count and format defaults, and classifies upstream failures.
package medium

import (
	"context"
	"fmt"
	"time"

	"medium-mcp/internal/domain/entity"
	"medium-mcp/internal/repository"
	"medium-mcp/internal/utils/text"
)

// Service exposes the five read operations of the server. All methods
// are safe for concurrent use.
type Service struct {
	// API is the raw Medium API the service normalizes over.
	API repository.MediumAPI

	// MaxArticles caps the article count of every list-producing
	// operation, regardless of the caller-requested count.
	MaxArticles int
}

// FetchProfile returns the normalized profile for a username. A user
// the platform has no record of yields (nil, nil), not an error.
func (s *Service) FetchProfile(ctx context.Context, username string) (*entity.UserProfile, error) {
	user, err := s.API.User(ctx, username)
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("getting user info for %s", username))
	}
	if user == nil {
		return nil, nil
	}

	return &entity.UserProfile{
		UserID:                  user.ID,
		Username:                user.Username,
		Fullname:                user.Fullname,
		Bio:                     user.Bio,
		FollowersCount:          user.FollowersCount,
		FollowingCount:          intOrZero(user.FollowingCount),
		TwitterUsername:         user.TwitterUsername,
		ImageURL:                user.ImageURL,
		MediumMemberAt:          timeString(user.MediumMemberAt),
		IsWriterProgramEnrolled: boolOrFalse(user.IsWriterProgramEnrolled),
		HasList:                 boolOrFalse(user.HasList),
		IsSuspended:             boolOrFalse(user.IsSuspended),
	}, nil
}

// FetchAuthoredArticles returns up to count of the user's articles,
// newest first as the upstream orders them. The caller-requested count
// is additionally capped by MaxArticles and by availability.
func (s *Service) FetchAuthoredArticles(ctx context.Context, username string, count int) ([]*entity.ArticleSummary, error) {
	articles, err := s.API.UserArticles(ctx, username)
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("getting articles for user %s", username))
	}

	limit := min(count, s.MaxArticles, len(articles))
	if limit < 0 {
		limit = 0
	}
	out := make([]*entity.ArticleSummary, 0, limit)
	for _, article := range articles[:limit] {
		summary := s.toSummary(article)
		// Authored listings report the requested handle as the author
		// even when the upstream omits it from the article record.
		summary.Author = username
		out = append(out, summary)
	}
	return out, nil
}

// FetchArticleBody returns the body of one article in the requested
// representation. An unrecognized format falls back to plain text.
func (s *Service) FetchArticleBody(ctx context.Context, articleID string, format string) (*entity.ArticleBody, error) {
	contentFormat := repository.ContentFormat(format)
	switch contentFormat {
	case repository.FormatText, repository.FormatHTML, repository.FormatMarkdown:
	default:
		contentFormat = repository.FormatText
	}

	content, err := s.API.ArticleContent(ctx, articleID, contentFormat)
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("getting content for article %s", articleID))
	}
	if content == nil {
		return nil, nil
	}

	return &entity.ArticleBody{
		Title:         content.Title,
		Subtitle:      content.Subtitle,
		Content:       content.Content,
		ContentFormat: string(contentFormat),
		Author:        text.Stringify(content.Author),
		PublishedAt:   timeString(content.PublishedAt),
	}, nil
}

// FetchTopFeed returns up to count trending articles for a tag and
// feed mode. The tag is normalized to Medium's slug form before the
// upstream call. Only the articles that survive truncation are
// hydrated into full records.
func (s *Service) FetchTopFeed(ctx context.Context, tag, mode string, count int) ([]*entity.ArticleSummary, error) {
	errContext := fmt.Sprintf("getting top feeds for tag %s", tag)

	ids, err := s.API.TopFeeds(ctx, text.NormalizeTag(tag), mode)
	if err != nil {
		return nil, classifyError(err, errContext)
	}
	return s.hydrate(ctx, ids, count, errContext)
}

// SearchArticles returns up to count articles matching a search query.
// Only the articles that survive truncation are hydrated.
func (s *Service) SearchArticles(ctx context.Context, query string, count int) ([]*entity.ArticleSummary, error) {
	errContext := fmt.Sprintf("searching articles with query: %s", query)

	ids, err := s.API.SearchArticles(ctx, query)
	if err != nil {
		return nil, classifyError(err, errContext)
	}
	return s.hydrate(ctx, ids, count, errContext)
}

// hydrate truncates an identifier list to the effective limit, then
// fetches full records for the survivors only.
func (s *Service) hydrate(ctx context.Context, ids []string, count int, errContext string) ([]*entity.ArticleSummary, error) {
	limit := min(count, s.MaxArticles, len(ids))
	if limit < 0 {
		limit = 0
	}

	articles, err := s.API.FetchArticles(ctx, ids[:limit])
	if err != nil {
		return nil, classifyError(err, errContext)
	}

	out := make([]*entity.ArticleSummary, 0, len(articles))
	for _, article := range articles {
		out = append(out, s.toSummary(article))
	}
	return out, nil
}

// toSummary normalizes one raw article into the fixed summary shape.
func (s *Service) toSummary(a *repository.MediumArticle) *entity.ArticleSummary {
	return &entity.ArticleSummary{
		ArticleID:      a.ID,
		Title:          a.Title,
		Subtitle:       a.Subtitle,
		Author:         text.Stringify(a.Author),
		PublishedAt:    timeString(a.PublishedAt),
		LastModifiedAt: timeString(a.LastModifiedAt),
		Tags:           stringList(a.Tags),
		Topics:         stringList(a.Topics),
		Claps:          intOrZero(a.Claps),
		Voters:         intOrZero(a.Voters),
		WordCount:      intOrZero(a.WordCount),
		ReadingTime:    floatOrZero(a.ReadingTime),
		ResponsesCount: intOrZero(a.ResponsesCount),
		URL:            a.URL,
		UniqueSlug:     strOrEmpty(a.UniqueSlug),
		IsLocked:       boolOrFalse(a.IsLocked),
		IsShortform:    boolOrFalse(a.IsShortform),
		Language:       strOrDefault(a.Language, "en"),
	}
}

func timeString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func boolOrFalse(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func strOrDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// stringList guarantees a non-nil slice so list fields marshal to []
// instead of null.
func stringList(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
