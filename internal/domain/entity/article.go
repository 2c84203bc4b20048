package entity

// ArticleSummary represents one article as returned by the list-producing
// operations (authored articles, top feeds, search).
//
// ArticleID, Title, Author, URL and UniqueSlug are required; numeric
// counters default to zero, lists to empty (never null), and Language
// to "en". Timestamps are pre-rendered strings ("" when absent).
type ArticleSummary struct {
	ArticleID      string   `json:"article_id"`
	Title          string   `json:"title"`
	Subtitle       *string  `json:"subtitle"`
	Author         string   `json:"author"`
	PublishedAt    string   `json:"published_at"`
	LastModifiedAt string   `json:"last_modified_at"`
	Tags           []string `json:"tags"`
	Topics         []string `json:"topics"`
	Claps          int      `json:"claps"`
	Voters         int      `json:"voters"`
	WordCount      int      `json:"word_count"`
	ReadingTime    float64  `json:"reading_time"`
	ResponsesCount int      `json:"responses_count"`
	URL            string   `json:"url"`
	UniqueSlug     string   `json:"unique_slug"`
	IsLocked       bool     `json:"is_locked"`
	IsShortform    bool     `json:"is_shortform"`
	Language       string   `json:"language"`
}

// ArticleBody is a full article body in exactly one representation.
// ContentFormat names the representation that was requested and
// retrieved ("text", "html" or "markdown") and is always consistent
// with Content.
type ArticleBody struct {
	Title         string  `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Content       string  `json:"content"`
	ContentFormat string  `json:"content_format"`
	Author        string  `json:"author"`
	PublishedAt   string  `json:"published_at"`
}
