package domain

import (
	"math/rand"
	"sort"
)

// ColdStartConfig tunes the no-history ranking strategy.
type ColdStartConfig struct {
	// DiversityCreatorThreshold is how many distinct creators must appear in
	// the selection before repeat-creator posts are admitted unconditionally.
	// The cap is advisory: it spreads creators near the top of the feed but
	// never shrinks the selectable set to fewer than the diverse prefix.
	DiversityCreatorThreshold int

	// ExplorationSampleSize is how many of the posts skipped by the diversity
	// walk get randomly appended for exploration.
	ExplorationSampleSize int

	// Rand drives exploration sampling. With a nil source the skipped posts
	// are appended in popularity order instead of sampled.
	Rand *rand.Rand
}

// ColdStartPosts ranks a catalog for a user with no view or like history:
// global popularity first, spread across creators, with a random tail for
// exploration. An empty catalog yields an empty result, not an error.
func ColdStartPosts(catalog []Post, cfg ColdStartConfig) []Post {
	if len(catalog) == 0 {
		return nil
	}

	popular := make([]Post, len(catalog))
	copy(popular, catalog)
	sort.SliceStable(popular, func(i, j int) bool {
		return popularityWeight(popular[i]) > popularityWeight(popular[j])
	})

	creatorSeen := make(map[string]struct{})
	selected := make([]Post, 0, len(popular))
	var skipped []Post

	for _, post := range popular {
		_, repeat := creatorSeen[post.UserID]
		diversitySatisfied := len(creatorSeen) > cfg.DiversityCreatorThreshold

		// Posts without a creator can't count toward diversity, so they are
		// always admitted.
		if post.UserID == "" || !repeat || diversitySatisfied {
			selected = append(selected, post)
			if post.UserID != "" {
				creatorSeen[post.UserID] = struct{}{}
			}
			continue
		}
		skipped = append(skipped, post)
	}

	if len(skipped) > 0 {
		sampleSize := cfg.ExplorationSampleSize
		if sampleSize > len(skipped) {
			sampleSize = len(skipped)
		}
		if cfg.Rand != nil {
			cfg.Rand.Shuffle(len(skipped), func(i, j int) {
				skipped[i], skipped[j] = skipped[j], skipped[i]
			})
		}
		selected = append(selected, skipped[:sampleSize]...)
	}

	return selected
}

// popularityWeight is the cold-start sort key: rarer interactions weigh more.
func popularityWeight(post Post) float64 {
	return float64(post.ViewsCount) +
		5*float64(post.LikesCount) +
		10*float64(post.InspiresCount) +
		20*post.RatingsAverage
}
