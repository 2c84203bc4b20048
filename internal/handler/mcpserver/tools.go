package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mediumUC "medium-mcp/internal/usecase/medium"
)

type getUserInfoArgs struct {
	Username string `json:"username"`
}

type getUserArticlesArgs struct {
	Username string `json:"username"`
	Count    *int   `json:"count,omitempty"`
}

type getArticleContentArgs struct {
	ArticleID string  `json:"article_id"`
	Format    *string `json:"format,omitempty"`
}

type getTopFeedsArgs struct {
	Tag   *string `json:"tag,omitempty"`
	Mode  *string `json:"mode,omitempty"`
	Count *int    `json:"count,omitempty"`
}

type searchArticlesArgs struct {
	Query string `json:"query"`
	Count *int   `json:"count,omitempty"`
}

func (h *Handler) getUserInfo(ctx context.Context, req *mcp.CallToolRequest, args getUserInfoArgs) (*mcp.CallToolResult, any, error) {
	return h.respond(ctx, "get_user_info", func(ctx context.Context, svc *mediumUC.Service) (any, error) {
		return svc.FetchProfile(ctx, args.Username)
	})
}

func (h *Handler) getUserArticles(ctx context.Context, req *mcp.CallToolRequest, args getUserArticlesArgs) (*mcp.CallToolResult, any, error) {
	count, err := resolveCount(args.Count)
	if err != nil {
		return h.reject("get_user_articles", err)
	}
	return h.respond(ctx, "get_user_articles", func(ctx context.Context, svc *mediumUC.Service) (any, error) {
		return svc.FetchAuthoredArticles(ctx, args.Username, count)
	})
}

func (h *Handler) getArticleContent(ctx context.Context, req *mcp.CallToolRequest, args getArticleContentArgs) (*mcp.CallToolResult, any, error) {
	format := defaultFormat
	if args.Format != nil {
		if !validFormats[*args.Format] {
			return h.reject("get_article_content", fmt.Errorf(`format must be "text", "html", or "markdown"`))
		}
		format = *args.Format
	}
	return h.respond(ctx, "get_article_content", func(ctx context.Context, svc *mediumUC.Service) (any, error) {
		return svc.FetchArticleBody(ctx, args.ArticleID, format)
	})
}

func (h *Handler) getTopFeeds(ctx context.Context, req *mcp.CallToolRequest, args getTopFeedsArgs) (*mcp.CallToolResult, any, error) {
	mode := defaultMode
	if args.Mode != nil {
		if !validFeedModes[*args.Mode] {
			return h.reject("get_top_feeds", fmt.Errorf(
				"invalid mode %q: must be one of hot, new, top_year, top_month, top_week, top_all_time", *args.Mode))
		}
		mode = *args.Mode
	}
	count, err := resolveCount(args.Count)
	if err != nil {
		return h.reject("get_top_feeds", err)
	}
	tag := ""
	if args.Tag != nil {
		tag = *args.Tag
	}
	return h.respond(ctx, "get_top_feeds", func(ctx context.Context, svc *mediumUC.Service) (any, error) {
		return svc.FetchTopFeed(ctx, tag, mode, count)
	})
}

func (h *Handler) searchArticles(ctx context.Context, req *mcp.CallToolRequest, args searchArticlesArgs) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Query) == "" {
		return h.reject("search_articles", fmt.Errorf("search query cannot be empty"))
	}
	count, err := resolveCount(args.Count)
	if err != nil {
		return h.reject("search_articles", err)
	}
	return h.respond(ctx, "search_articles", func(ctx context.Context, svc *mediumUC.Service) (any, error) {
		return svc.SearchArticles(ctx, args.Query, count)
	})
}
