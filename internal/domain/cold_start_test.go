package domain

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColdStartConfig() ColdStartConfig {
	return ColdStartConfig{
		DiversityCreatorThreshold: 10,
		ExplorationSampleSize:     10,
	}
}

func TestColdStartPosts_EmptyCatalog(t *testing.T) {
	assert.Empty(t, ColdStartPosts(nil, testColdStartConfig()))
	assert.Empty(t, ColdStartPosts([]Post{}, testColdStartConfig()))
}

func TestColdStartPosts_PopularityOrder(t *testing.T) {
	catalog := []Post{
		{ID: "low", UserID: "c1", ViewsCount: 10},
		{ID: "high", UserID: "c2", InspiresCount: 100},
		{ID: "mid", UserID: "c3", LikesCount: 50},
	}

	ranked := ColdStartPosts(catalog, testColdStartConfig())

	assert.Equal(t, []string{"high", "mid", "low"}, postIDs(ranked))
}

func TestColdStartPosts_OutputIsPermutationOfCatalogSubset(t *testing.T) {
	var catalog []Post
	for i := 0; i < 40; i++ {
		catalog = append(catalog, Post{
			ID:         fmt.Sprintf("p%d", i),
			UserID:     fmt.Sprintf("c%d", i%4),
			ViewsCount: int64(i * 11),
		})
	}

	cfg := testColdStartConfig()
	cfg.Rand = rand.New(rand.NewSource(7))
	ranked := ColdStartPosts(catalog, cfg)

	catalogIDs := postIDs(catalog)
	seen := make(map[string]int)
	for _, id := range postIDs(ranked) {
		seen[id]++
		assert.Contains(t, catalogIDs, id)
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "post %s selected more than once", id)
	}
}

func TestColdStartPosts_DiversityPrefersFreshCreators(t *testing.T) {
	// Three posts from one dominant creator, two from another. Only the
	// dominant creator's top post makes the diverse prefix; the rest are
	// deferred to the exploration tail.
	catalog := []Post{
		{ID: "a1", UserID: "a", ViewsCount: 100},
		{ID: "a2", UserID: "a", ViewsCount: 90},
		{ID: "a3", UserID: "a", ViewsCount: 80},
		{ID: "b1", UserID: "b", ViewsCount: 70},
		{ID: "b2", UserID: "b", ViewsCount: 60},
	}

	ranked := ColdStartPosts(catalog, testColdStartConfig())

	require.Len(t, ranked, 5)
	assert.Equal(t, []string{"a1", "b1"}, postIDs(ranked[:2]))
	assert.ElementsMatch(t, []string{"a2", "a3", "b2"}, postIDs(ranked[2:]))
}

func TestColdStartPosts_EscapeValveAdmitsRepeatCreators(t *testing.T) {
	// Past the threshold of distinct creators, repeat-creator posts are
	// admitted in the main walk instead of being skipped.
	var catalog []Post
	for i := 0; i < 11; i++ {
		catalog = append(catalog, Post{
			ID:         fmt.Sprintf("first%d", i),
			UserID:     fmt.Sprintf("c%d", i),
			ViewsCount: int64(1000 - i),
		})
	}
	catalog = append(catalog, Post{ID: "repeat", UserID: "c0", ViewsCount: 1})

	ranked := ColdStartPosts(catalog, testColdStartConfig())

	require.Len(t, ranked, 12)
	assert.Equal(t, "repeat", ranked[11].ID)
}

func TestColdStartPosts_PostsWithoutCreatorAreAdmitted(t *testing.T) {
	catalog := []Post{
		{ID: "p1", ViewsCount: 30},
		{ID: "p2", ViewsCount: 20},
		{ID: "p3", ViewsCount: 10},
	}

	ranked := ColdStartPosts(catalog, testColdStartConfig())

	assert.Equal(t, []string{"p1", "p2", "p3"}, postIDs(ranked))
}

func TestColdStartPosts_ExplorationSampleIsBounded(t *testing.T) {
	// One creator dominating a large catalog: 1 diverse pick plus at most
	// ExplorationSampleSize sampled leftovers.
	var catalog []Post
	for i := 0; i < 50; i++ {
		catalog = append(catalog, Post{
			ID:         fmt.Sprintf("p%d", i),
			UserID:     "only",
			ViewsCount: int64(50 - i),
		})
	}

	cfg := testColdStartConfig()
	cfg.Rand = rand.New(rand.NewSource(3))
	ranked := ColdStartPosts(catalog, cfg)

	assert.Len(t, ranked, 1+cfg.ExplorationSampleSize)
	assert.Equal(t, "p0", ranked[0].ID)
}
