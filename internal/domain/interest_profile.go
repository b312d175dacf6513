package domain

import (
	"sort"
)

const (
	// TopCreatorLimit caps how many preferred creators a profile tracks.
	TopCreatorLimit = 5
	// TopCategoryLimit caps how many preferred project categories a profile tracks.
	TopCategoryLimit = 3
	// HighRatingThreshold is the minimum rating for a rated post to count as
	// an endorsement. Records without a rating value are excluded, not zero.
	HighRatingThreshold = 4.0
)

// InterestProfile is the per-request summary of a user's inferred preferences.
// It is derived fresh for each ranking call and discarded after scoring.
type InterestProfile struct {
	// TopCreators holds up to TopCreatorLimit creator IDs, ordered by
	// descending interaction frequency, ties broken by first-seen order.
	TopCreators   []string
	CreatorCounts map[string]int

	// TopCategories holds up to TopCategoryLimit project codes from liked
	// posts, ordered the same way.
	TopCategories  []string
	CategoryCounts map[string]int

	InterestCategories map[string]struct{}
	InterestTags       map[string]int
	PreferredMood      string
}

// ExtractInterestProfile derives a user's interest profile from their
// interaction history and the post catalog. Missing or malformed fields
// degrade to empty defaults; a bad record contributes nothing rather than
// failing the extraction.
func ExtractInterestProfile(bundle UserInteractionBundle, catalog []Post) InterestProfile {
	likedIDs := postIDSet(bundle.Liked)
	highRated := highRatedRecords(bundle.Rated)
	highRatedIDs := postIDSet(highRated)

	// Each liked, inspired, or highly rated record is one creator vote.
	var creatorVotes []string
	for _, records := range [][]InteractionRecord{bundle.Liked, bundle.Inspired, highRated} {
		for _, rec := range records {
			creatorVotes = append(creatorVotes, rec.UserID)
		}
	}
	topCreators, creatorCounts := rankByFrequency(creatorVotes, TopCreatorLimit)

	var categoryVotes []string
	for _, p := range catalog {
		if _, liked := likedIDs[p.ID]; liked && p.ProjectCode != "" {
			categoryVotes = append(categoryVotes, p.ProjectCode)
		}
	}
	topCategories, categoryCounts := rankByFrequency(categoryVotes, TopCategoryLimit)

	profile := InterestProfile{
		TopCreators:        topCreators,
		CreatorCounts:      creatorCounts,
		TopCategories:      topCategories,
		CategoryCounts:     categoryCounts,
		InterestCategories: make(map[string]struct{}),
		InterestTags:       make(map[string]int),
	}

	// Walk the catalog in order so tie-breaking stays deterministic.
	var moodVotes []string
	for _, post := range catalog {
		if _, liked := likedIDs[post.ID]; !liked {
			if _, rated := highRatedIDs[post.ID]; !rated {
				continue
			}
		}
		for _, category := range post.Categories {
			profile.InterestCategories[category] = struct{}{}
		}
		for _, tag := range post.Tags {
			profile.InterestTags[tag]++
		}
		if post.Mood != "" {
			moodVotes = append(moodVotes, post.Mood)
		}
	}

	// With no category signal from posts, fall back to the user's declared interests.
	if len(profile.InterestCategories) == 0 {
		for _, interest := range bundle.User.Interests {
			profile.InterestCategories[interest] = struct{}{}
		}
	}

	if moods, _ := rankByFrequency(moodVotes, 1); len(moods) > 0 {
		profile.PreferredMood = moods[0]
	}

	return profile
}

// highRatedRecords filters rated records down to endorsements.
func highRatedRecords(rated []InteractionRecord) []InteractionRecord {
	var high []InteractionRecord
	for _, rec := range rated {
		if rec.RatingValue != nil && *rec.RatingValue >= HighRatingThreshold {
			high = append(high, rec)
		}
	}
	return high
}

// rankByFrequency counts votes and returns up to limit values ordered by
// descending count. Ties keep first-seen order; empty votes are dropped.
func rankByFrequency(votes []string, limit int) ([]string, map[string]int) {
	counts := make(map[string]int, len(votes))
	var order []string
	for _, v := range votes {
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order, counts
}
