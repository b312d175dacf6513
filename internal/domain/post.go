package domain

import (
	"time"
)

// Post is one item from the upstream content catalog. The full catalog is
// supplied per ranking request; the ranking engine never caches or mutates it.
type Post struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	Title          string   `json:"title"`
	ProjectCode    string   `json:"project_code"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	Mood           string   `json:"mood,omitempty"`
	ViewsCount     int64    `json:"views_count"`
	LikesCount     int64    `json:"likes_count"`
	InspiresCount  int64    `json:"inspires_count"`
	RatingsAverage float64  `json:"ratings_average"`
	CreatedAt      string   `json:"created_at"`
	VideoLink      string   `json:"video_link,omitempty"`
	ThumbnailURL   string   `json:"thumbnail_url,omitempty"`
}

// UserProfile describes the user a feed is assembled for.
type UserProfile struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Interests []string `json:"interests,omitempty"`
}

var postTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParsePostTime parses an upstream post timestamp. The upstream API is not
// consistent about formats, so this is fallible by design: callers treat an
// unparseable timestamp as an absent one.
func ParsePostTime(s string) (time.Time, bool) {
	for _, layout := range postTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
