// Package repository defines the contract between the Medium access
// layer and the upstream client implementation, along with the raw
// record shapes the upstream may return only partially.
package repository

import (
	"context"
	"time"
)

// ContentFormat selects which representation of an article body is
// fetched from the upstream.
type ContentFormat string

// Article body representations supported by the upstream API.
const (
	FormatText     ContentFormat = "text"
	FormatHTML     ContentFormat = "html"
	FormatMarkdown ContentFormat = "markdown"
)

// MediumUser is the raw upstream user record. Pointer fields are nil
// when the upstream response omits them.
type MediumUser struct {
	ID                      string
	Username                string
	Fullname                string
	Bio                     *string
	FollowersCount          int
	FollowingCount          *int
	TwitterUsername         *string
	ImageURL                *string
	MediumMemberAt          *time.Time
	IsWriterProgramEnrolled *bool
	HasList                 *bool
	IsSuspended             *bool
}

// Handle returns the user's handle. Nil-safe so partially hydrated
// author references can be stringified without shape checks.
func (u *MediumUser) Handle() string {
	if u == nil {
		return ""
	}
	return u.Username
}

// MediumArticle is the raw upstream article record. Author is nil when
// the upstream response carries no author reference.
type MediumArticle struct {
	ID             string
	Title          string
	Subtitle       *string
	Author         *MediumUser
	PublishedAt    *time.Time
	LastModifiedAt *time.Time
	Tags           []string
	Topics         []string
	Claps          *int
	Voters         *int
	WordCount      *int
	ReadingTime    *float64
	ResponsesCount *int
	URL            string
	UniqueSlug     *string
	IsLocked       *bool
	IsShortform    *bool
	Language       *string
}

// MediumArticleContent is a raw article body in one representation,
// together with the metadata needed to build an ArticleBody record.
type MediumArticleContent struct {
	Title       string
	Subtitle    *string
	Content     string
	Author      *MediumUser
	PublishedAt *time.Time
}

// MediumAPI is the upstream Medium client consumed by the access layer.
// All methods issue blocking network calls and honor ctx cancellation.
// Lookup methods return (nil, nil) when the upstream has no record for
// the given identifier, as opposed to a transport or API failure.
type MediumAPI interface {
	// User fetches a user profile by username.
	User(ctx context.Context, username string) (*MediumUser, error)

	// UserArticles fetches the full, hydrated article list for a user.
	// Upstream cost is proportional to the author's total article
	// count, not to any requested count.
	UserArticles(ctx context.Context, username string) ([]*MediumArticle, error)

	// ArticleContent fetches an article body in the given representation.
	ArticleContent(ctx context.Context, articleID string, format ContentFormat) (*MediumArticleContent, error)

	// TopFeeds returns identifier-only stubs for the trending feed.
	// An empty tag means the unfiltered feed.
	TopFeeds(ctx context.Context, tag, mode string) ([]string, error)

	// SearchArticles returns identifier-only stubs matching the query.
	SearchArticles(ctx context.Context, query string) ([]string, error)

	// FetchArticles hydrates identifier stubs into full article
	// records, preserving order. One upstream request per identifier.
	FetchArticles(ctx context.Context, articleIDs []string) ([]*MediumArticle, error)
}
