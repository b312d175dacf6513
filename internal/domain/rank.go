package domain

import (
	"math/rand"
	"sort"
	"time"
)

// RankConfig holds the signal weights for history-based ranking. Each weight
// is the maximum that signal can contribute to a post's score, however large
// the underlying counters get.
type RankConfig struct {
	// CreatorWeight caps the boost for posts by the user's preferred creators.
	CreatorWeight float64

	// CategoryWeight caps the boost for posts in the user's most-liked
	// project categories.
	CategoryWeight float64

	// CategoryOverlapWeight caps the boost for content-category overlap with
	// the interest profile.
	CategoryOverlapWeight float64

	// TagOverlapWeight caps the boost for tag overlap, weighted by how often
	// each tag appears in the user's history.
	TagOverlapWeight float64

	// MoodWeight is the flat boost for posts matching the preferred mood.
	MoodWeight float64

	// ExplorationWeight is the upper bound of the uniform random term added
	// to every score. Holding it at zero makes ranking fully deterministic.
	ExplorationWeight float64

	// Rand is the exploration noise source. Seedable so tests can pin it;
	// production wiring supplies a real source.
	Rand *rand.Rand
}

// scoredPost only exists while sorting one ranking request.
type scoredPost struct {
	post  Post
	score float64
}

// RankPosts scores and orders catalog posts the user has not yet viewed,
// personalized by the interest profile. Posts already in the bundle's viewed
// list are never candidates. An empty candidate set yields an empty result,
// not an error.
//
// The exploration term is drawn fresh per post per call, so posts with
// near-equal deterministic scores deliberately reorder across calls.
func RankPosts(
	bundle UserInteractionBundle,
	catalog []Post,
	profile InterestProfile,
	cfg RankConfig,
	now time.Time,
) []Post {
	viewedIDs := postIDSet(bundle.Viewed)

	var scored []scoredPost
	for _, post := range catalog {
		if _, viewed := viewedIDs[post.ID]; viewed {
			continue
		}
		scored = append(scored, scoredPost{
			post:  post,
			score: scorePost(post, profile, cfg, now),
		})
	}

	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]Post, len(scored))
	for i, sp := range scored {
		ranked[i] = sp.post
	}
	return ranked
}

func scorePost(post Post, profile InterestProfile, cfg RankConfig, now time.Time) float64 {
	var score float64

	// Preferred creators, scaled by how often the user engaged with each.
	if containsString(profile.TopCreators, post.UserID) {
		if maxCount := maxCountValue(profile.CreatorCounts); maxCount > 0 {
			score += cfg.CreatorWeight * float64(profile.CreatorCounts[post.UserID]) / float64(maxCount)
		}
	}

	// Preferred project categories, scaled by like frequency.
	if containsString(profile.TopCategories, post.ProjectCode) {
		if maxCount := maxCountValue(profile.CategoryCounts); maxCount > 0 {
			score += cfg.CategoryWeight * float64(profile.CategoryCounts[post.ProjectCode]) / float64(maxCount)
		}
	}

	// Content-category overlap, as a fraction of the post's own categories.
	if len(post.Categories) > 0 {
		matching := 0
		for _, category := range post.Categories {
			if _, ok := profile.InterestCategories[category]; ok {
				matching++
			}
		}
		score += cfg.CategoryOverlapWeight * float64(matching) / float64(len(post.Categories))
	}

	// Tag overlap, weighted by tag frequency in the user's history.
	if len(post.Tags) > 0 && len(profile.InterestTags) > 0 {
		matched, total := 0, 0
		for _, count := range profile.InterestTags {
			total += count
		}
		seen := make(map[string]struct{}, len(post.Tags))
		for _, tag := range post.Tags {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			matched += profile.InterestTags[tag]
		}
		if matched > 0 && total > 0 {
			score += cfg.TagOverlapWeight * float64(matched) / float64(total)
		}
	}

	if profile.PreferredMood != "" && post.Mood == profile.PreferredMood {
		score += cfg.MoodWeight
	}

	// Global popularity, each term independently capped.
	score += minFloat(float64(post.ViewsCount)/100, 10)
	score += minFloat(float64(post.LikesCount)/10, 20)
	score += minFloat(float64(post.InspiresCount)/5, 20)
	score += minFloat(post.RatingsAverage*5, 20)

	// Recency, contributing nothing when the timestamp does not parse.
	if created, ok := ParsePostTime(post.CreatedAt); ok {
		days := int(now.Sub(created).Hours() / 24)
		if days < 0 {
			days = 0
		}
		if days < 10 {
			score += float64(10 - days)
		}
	}

	if cfg.ExplorationWeight > 0 && cfg.Rand != nil {
		score += cfg.Rand.Float64() * cfg.ExplorationWeight
	}

	return score
}

func containsString(values []string, v string) bool {
	if v == "" {
		return false
	}
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func maxCountValue(counts map[string]int) int {
	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}
	return maxCount
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
