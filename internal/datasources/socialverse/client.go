package socialverse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

var _ datasources.UserGetter = (*Client)(nil)
var _ datasources.InteractionSource = (*Client)(nil)
var _ datasources.PostCataloger = (*Client)(nil)
var _ datasources.UpstreamPinger = (*Client)(nil)

// interactionEndpoints maps interaction types to their upstream listing paths.
var interactionEndpoints = map[domain.InteractionType]string{
	domain.InteractionTypeView:    "/posts/view",
	domain.InteractionTypeLike:    "/posts/like",
	domain.InteractionTypeInspire: "/posts/inspire",
	domain.InteractionTypeRate:    "/posts/rating",
}

// Config holds the connection settings for the SocialVerse content API.
type Config struct {
	BaseURL   string
	FlicToken string

	// ResonanceAlgorithm is an opaque token the interaction endpoints require.
	ResonanceAlgorithm string

	Timeout time.Duration

	// PageSize is how many records to request per page. The upstream
	// collections are small enough that one large page covers them.
	PageSize int
}

// Client fetches users, posts, and interaction records from the SocialVerse
// content API.
type Client struct {
	http *resty.Client
	cfg  Config
}

// NewClient creates a new SocialVerse API client.
func NewClient(cfg Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Flic-Token", cfg.FlicToken)

	return &Client{
		http: httpClient,
		cfg:  cfg,
	}
}

// flexID decodes upstream identifiers that arrive as either JSON numbers or
// strings, normalizing them to strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier is neither string nor number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

type interactionPayload struct {
	UserID      flexID   `json:"user_id"`
	PostID      flexID   `json:"post_id"`
	RatingValue *float64 `json:"rating_value"`
	CreatedAt   string   `json:"created_at"`
}

type interactionListResponse struct {
	Data []interactionPayload `json:"data"`
}

// ListInteractions fetches the upstream record list for one interaction type.
// Records for all users are returned; callers filter by user.
func (c *Client) ListInteractions(
	ctx context.Context,
	interactionType domain.InteractionType,
) ([]domain.InteractionRecord, error) {
	endpoint, ok := interactionEndpoints[interactionType]
	if !ok {
		return nil, fmt.Errorf("unknown interaction type [%s]", interactionType)
	}

	var result interactionListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":                "1",
			"page_size":           strconv.Itoa(c.cfg.PageSize),
			"resonance_algorithm": c.cfg.ResonanceAlgorithm,
		}).
		SetResult(&result).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching %s interactions: %w", interactionType, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf(
			"SocialVerse API error fetching %s interactions (status %d): %s",
			interactionType, resp.StatusCode(), resp.String(),
		)
	}

	records := make([]domain.InteractionRecord, 0, len(result.Data))
	for _, payload := range result.Data {
		records = append(records, domain.InteractionRecord{
			UserID:          string(payload.UserID),
			PostID:          string(payload.PostID),
			InteractionType: interactionType,
			RatingValue:     payload.RatingValue,
			CreatedAt:       payload.CreatedAt,
		})
	}
	return records, nil
}

type postPayload struct {
	ID             flexID   `json:"id"`
	UserID         flexID   `json:"user_id"`
	Title          string   `json:"title"`
	ProjectCode    string   `json:"project_code"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	Mood           string   `json:"mood"`
	ViewsCount     int64    `json:"views_count"`
	LikesCount     int64    `json:"likes_count"`
	InspiresCount  int64    `json:"inspires_count"`
	RatingsAverage float64  `json:"ratings_average"`
	CreatedAt      string   `json:"created_at"`
	VideoLink      string   `json:"video_url"`
	ThumbnailURL   string   `json:"thumbnail_url"`
}

type postListResponse struct {
	Data []postPayload `json:"data"`
}

// ListAllPosts fetches the post catalog as one flattened collection.
func (c *Client) ListAllPosts(ctx context.Context) ([]domain.Post, error) {
	var result postListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":      "1",
			"page_size": strconv.Itoa(c.cfg.PageSize),
		}).
		SetResult(&result).
		Get("/posts/summary/get")
	if err != nil {
		return nil, fmt.Errorf("fetching post catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf(
			"SocialVerse API error fetching post catalog (status %d): %s",
			resp.StatusCode(), resp.String(),
		)
	}

	posts := make([]domain.Post, 0, len(result.Data))
	for _, payload := range result.Data {
		posts = append(posts, domain.Post{
			ID:             string(payload.ID),
			UserID:         string(payload.UserID),
			Title:          payload.Title,
			ProjectCode:    payload.ProjectCode,
			Categories:     payload.Categories,
			Tags:           payload.Tags,
			Mood:           payload.Mood,
			ViewsCount:     payload.ViewsCount,
			LikesCount:     payload.LikesCount,
			InspiresCount:  payload.InspiresCount,
			RatingsAverage: payload.RatingsAverage,
			CreatedAt:      payload.CreatedAt,
			VideoLink:      payload.VideoLink,
			ThumbnailURL:   payload.ThumbnailURL,
		})
	}
	return posts, nil
}

type userPayload struct {
	ID        flexID   `json:"id"`
	Username  string   `json:"username"`
	Interests []string `json:"interests"`
}

// userListResponse tolerates both field names the upstream has used for the
// user collection.
type userListResponse struct {
	Users []userPayload `json:"users"`
	Data  []userPayload `json:"data"`
}

// GetUserByUsername scans the upstream user directory for a username,
// case-insensitively. Returns domain.ErrUserNotFound when absent.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (domain.UserProfile, error) {
	var result userListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":      "1",
			"page_size": strconv.Itoa(c.cfg.PageSize),
		}).
		SetResult(&result).
		Get("/users/get_all")
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("fetching user directory: %w", err)
	}
	if resp.IsError() {
		return domain.UserProfile{}, fmt.Errorf(
			"SocialVerse API error fetching user directory (status %d): %s",
			resp.StatusCode(), resp.String(),
		)
	}

	users := result.Users
	if len(users) == 0 {
		users = result.Data
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return domain.UserProfile{
				ID:        string(u.ID),
				Username:  u.Username,
				Interests: u.Interests,
			}, nil
		}
	}

	return domain.UserProfile{}, fmt.Errorf("looking up username [%s]: %w", username, domain.ErrUserNotFound)
}

// Ping makes a minimal request to verify upstream connectivity.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":      "1",
			"page_size": "1",
		}).
		Get("/users/get_all")
	if err != nil {
		return fmt.Errorf("pinging SocialVerse API: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("SocialVerse API ping returned status %d", resp.StatusCode())
	}
	return nil
}
