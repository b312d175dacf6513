package domain

// InteractionType represents the kind of interaction a user had with a post.
type InteractionType string

const (
	// InteractionTypeView records that the user watched a post.
	InteractionTypeView InteractionType = "view"
	// InteractionTypeLike records that the user liked a post.
	InteractionTypeLike InteractionType = "like"
	// InteractionTypeInspire records that the user marked a post as inspiring.
	InteractionTypeInspire InteractionType = "inspire"
	// InteractionTypeRate records that the user rated a post on a 0-5 scale.
	InteractionTypeRate InteractionType = "rate"
)

// InteractionRecord is a single user-post interaction as reported upstream.
// Records are immutable inputs; the ranking engine never modifies them.
type InteractionRecord struct {
	UserID          string          `json:"user_id"`
	PostID          string          `json:"post_id"`
	InteractionType InteractionType `json:"interaction_type"`
	RatingValue     *float64        `json:"rating_value,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

// UserInteractionBundle gathers everything known about one user's history for
// the duration of a single feed request.
type UserInteractionBundle struct {
	User     UserProfile
	Viewed   []InteractionRecord
	Liked    []InteractionRecord
	Inspired []InteractionRecord
	Rated    []InteractionRecord
}

// HasHistory reports whether the bundle carries enough history for
// personalized ranking. Users without views or likes get the cold-start path.
func (b UserInteractionBundle) HasHistory() bool {
	return len(b.Viewed) > 0 || len(b.Liked) > 0
}

func postIDSet(records []InteractionRecord) map[string]struct{} {
	ids := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.PostID != "" {
			ids[rec.PostID] = struct{}{}
		}
	}
	return ids
}
