package medium

import (
	"encoding/json"
	"time"

	"medium-mcp/internal/repository"
)

// Wire shapes of the medium2 API. Optional fields decode to nil so the
// access layer sees exactly what the upstream omitted.

type userIDResponse struct {
	ID string `json:"id"`
}

type userResponse struct {
	ID                      string  `json:"id"`
	Username                string  `json:"username"`
	Fullname                string  `json:"fullname"`
	Bio                     *string `json:"bio"`
	FollowersCount          int     `json:"followers_count"`
	FollowingCount          *int    `json:"following_count"`
	TwitterUsername         *string `json:"twitter_username"`
	ImageURL                *string `json:"image_url"`
	MediumMemberAt          *string `json:"medium_member_at"`
	IsWriterProgramEnrolled *bool   `json:"is_writer_program_enrolled"`
	HasList                 *bool   `json:"has_list"`
	IsSuspended             *bool   `json:"is_suspended"`
}

func (r *userResponse) toUser() *repository.MediumUser {
	return &repository.MediumUser{
		ID:                      r.ID,
		Username:                r.Username,
		Fullname:                r.Fullname,
		Bio:                     r.Bio,
		FollowersCount:          r.FollowersCount,
		FollowingCount:          r.FollowingCount,
		TwitterUsername:         r.TwitterUsername,
		ImageURL:                r.ImageURL,
		MediumMemberAt:          parseTime(r.MediumMemberAt),
		IsWriterProgramEnrolled: r.IsWriterProgramEnrolled,
		HasList:                 r.HasList,
		IsSuspended:             r.IsSuspended,
	}
}

// authorRef is an article's author reference. The upstream emits either
// a bare user id string or an object with id and username; both decode
// here.
type authorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (a *authorRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		a.ID = id
		return nil
	}
	type plain authorRef
	return json.Unmarshal(data, (*plain)(a))
}

func (a *authorRef) toUser() *repository.MediumUser {
	if a == nil {
		return nil
	}
	username := a.Username
	if username == "" {
		// Identifier-only references still need a usable handle.
		username = a.ID
	}
	return &repository.MediumUser{ID: a.ID, Username: username}
}

type articleResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Subtitle       *string    `json:"subtitle"`
	Author         *authorRef `json:"author"`
	PublishedAt    *string    `json:"published_at"`
	LastModifiedAt *string    `json:"last_modified_at"`
	Tags           []string   `json:"tags"`
	Topics         []string   `json:"topics"`
	Claps          *int       `json:"claps"`
	Voters         *int       `json:"voters"`
	WordCount      *int       `json:"word_count"`
	ReadingTime    *float64   `json:"reading_time"`
	ResponsesCount *int       `json:"responses_count"`
	URL            string     `json:"url"`
	UniqueSlug     *string    `json:"unique_slug"`
	IsLocked       *bool      `json:"is_locked"`
	IsShortform    *bool      `json:"is_shortform"`
	Language       *string    `json:"lang"`
}

func (r *articleResponse) toArticle() *repository.MediumArticle {
	return &repository.MediumArticle{
		ID:             r.ID,
		Title:          r.Title,
		Subtitle:       r.Subtitle,
		Author:         r.Author.toUser(),
		PublishedAt:    parseTime(r.PublishedAt),
		LastModifiedAt: parseTime(r.LastModifiedAt),
		Tags:           r.Tags,
		Topics:         r.Topics,
		Claps:          r.Claps,
		Voters:         r.Voters,
		WordCount:      r.WordCount,
		ReadingTime:    r.ReadingTime,
		ResponsesCount: r.ResponsesCount,
		URL:            r.URL,
		UniqueSlug:     r.UniqueSlug,
		IsLocked:       r.IsLocked,
		IsShortform:    r.IsShortform,
		Language:       r.Language,
	}
}

type userArticlesResponse struct {
	AssociatedArticles []string `json:"associated_articles"`
}

type topFeedsResponse struct {
	TopFeeds []string `json:"topfeeds"`
}

type searchResponse struct {
	Articles []string `json:"articles"`
}

// articleContentResponse covers the three representation endpoints,
// each of which returns its text under a different key.
type articleContentResponse struct {
	Content  string `json:"content"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

func (r *articleContentResponse) pick(format repository.ContentFormat) string {
	switch format {
	case repository.FormatHTML:
		return r.HTML
	case repository.FormatMarkdown:
		return r.Markdown
	default:
		return r.Content
	}
}

// parseTime parses the upstream's naive wall-clock timestamps. Values
// that fail to parse are treated as absent.
func parseTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t
		}
	}
	return nil
}
