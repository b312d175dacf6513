package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ratingValue(v float64) *float64 {
	return &v
}

func TestExtractInterestProfile(t *testing.T) {
	cases := []struct {
		name                   string
		bundle                 UserInteractionBundle
		catalog                []Post
		wantTopCreators        []string
		wantTopCategories      []string
		wantInterestCategories []string
		wantTags               map[string]int
		wantMood               string
	}{
		{
			name:   "empty_bundle_yields_empty_profile",
			bundle: UserInteractionBundle{},
			catalog: []Post{
				{ID: "p1", UserID: "c1", Categories: []string{"music"}},
			},
			wantTopCreators:        nil,
			wantTopCategories:      nil,
			wantInterestCategories: nil,
			wantTags:               map[string]int{},
			wantMood:               "",
		},
		{
			name: "creator_votes_from_likes_inspires_and_high_ratings",
			bundle: UserInteractionBundle{
				Liked: []InteractionRecord{
					{UserID: "c1", PostID: "p1"},
					{UserID: "c2", PostID: "p2"},
				},
				Inspired: []InteractionRecord{
					{UserID: "c1", PostID: "p3"},
				},
				Rated: []InteractionRecord{
					{UserID: "c3", PostID: "p4", RatingValue: ratingValue(4.5)},
					{UserID: "c4", PostID: "p5", RatingValue: ratingValue(2.0)},
				},
			},
			wantTopCreators:        []string{"c1", "c2", "c3"},
			wantTopCategories:      nil,
			wantInterestCategories: nil,
			wantTags:               map[string]int{},
			wantMood:               "",
		},
		{
			name: "low_and_missing_ratings_are_not_endorsements",
			bundle: UserInteractionBundle{
				Rated: []InteractionRecord{
					{UserID: "c1", PostID: "p1", RatingValue: ratingValue(3.9)},
					{UserID: "c2", PostID: "p2"},
					{UserID: "c3", PostID: "p3", RatingValue: ratingValue(4.0)},
				},
			},
			catalog: []Post{
				{ID: "p1", Categories: []string{"a"}},
				{ID: "p3", Categories: []string{"music"}, Tags: []string{"jazz"}, Mood: "calm"},
			},
			wantTopCreators:        []string{"c3"},
			wantTopCategories:      nil,
			wantInterestCategories: []string{"music"},
			wantTags:               map[string]int{"jazz": 1},
			wantMood:               "calm",
		},
		{
			name: "category_affinity_from_liked_catalog_items",
			bundle: UserInteractionBundle{
				Liked: []InteractionRecord{
					{UserID: "c1", PostID: "p1"},
					{UserID: "c1", PostID: "p2"},
					{UserID: "c1", PostID: "p3"},
				},
			},
			catalog: []Post{
				{ID: "p1", ProjectCode: "flic"},
				{ID: "p2", ProjectCode: "flic"},
				{ID: "p3", ProjectCode: "motion"},
				{ID: "p4", ProjectCode: "unliked"},
			},
			wantTopCreators:        []string{"c1"},
			wantTopCategories:      []string{"flic", "motion"},
			wantInterestCategories: nil,
			wantTags:               map[string]int{},
			wantMood:               "",
		},
		{
			name: "interests_fall_back_to_declared_profile",
			bundle: UserInteractionBundle{
				User: UserProfile{Interests: []string{"Technology", "Education"}},
				Liked: []InteractionRecord{
					{UserID: "c1", PostID: "missing"},
				},
			},
			catalog:                []Post{{ID: "p1", Categories: []string{"music"}}},
			wantTopCreators:        []string{"c1"},
			wantTopCategories:      nil,
			wantInterestCategories: []string{"Technology", "Education"},
			wantTags:               map[string]int{},
			wantMood:               "",
		},
		{
			name: "modal_mood_wins",
			bundle: UserInteractionBundle{
				Liked: []InteractionRecord{
					{UserID: "c1", PostID: "p1"},
					{UserID: "c1", PostID: "p2"},
					{UserID: "c1", PostID: "p3"},
				},
			},
			catalog: []Post{
				{ID: "p1", Categories: []string{"a"}, Mood: "hype"},
				{ID: "p2", Categories: []string{"a"}, Mood: "calm"},
				{ID: "p3", Categories: []string{"a"}, Mood: "hype"},
			},
			wantTopCreators:        []string{"c1"},
			wantTopCategories:      nil,
			wantInterestCategories: []string{"a"},
			wantTags:               map[string]int{},
			wantMood:               "hype",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := ExtractInterestProfile(tc.bundle, tc.catalog)

			assert.Equal(t, tc.wantTopCreators, profile.TopCreators)
			assert.Equal(t, tc.wantTopCategories, profile.TopCategories)
			assert.Equal(t, tc.wantTags, profile.InterestTags)
			assert.Equal(t, tc.wantMood, profile.PreferredMood)

			assert.Len(t, profile.InterestCategories, len(tc.wantInterestCategories))
			for _, category := range tc.wantInterestCategories {
				assert.Contains(t, profile.InterestCategories, category)
			}
		})
	}
}

func TestExtractInterestProfile_Caps(t *testing.T) {
	var bundle UserInteractionBundle
	var catalog []Post
	for i := 0; i < 100; i++ {
		postID := fmt.Sprintf("p%d", i)
		bundle.Liked = append(bundle.Liked, InteractionRecord{
			UserID: fmt.Sprintf("creator%d", i),
			PostID: postID,
		})
		catalog = append(catalog, Post{ID: postID, ProjectCode: fmt.Sprintf("code%d", i)})
	}

	profile := ExtractInterestProfile(bundle, catalog)

	assert.Len(t, profile.TopCreators, TopCreatorLimit)
	assert.Len(t, profile.TopCategories, TopCategoryLimit)
}

func TestRankByFrequency_TiesKeepFirstSeenOrder(t *testing.T) {
	votes := []string{"b", "a", "b", "a", "c"}

	top, counts := rankByFrequency(votes, 5)

	assert.Equal(t, []string{"b", "a", "c"}, top)
	assert.Equal(t, map[string]int{"a": 2, "b": 2, "c": 1}, counts)
}
