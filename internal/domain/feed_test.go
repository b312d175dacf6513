package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatePosts(t *testing.T) {
	var ranked []Post
	for i := 1; i <= 45; i++ {
		ranked = append(ranked, Post{ID: fmt.Sprintf("p%d", i)})
	}

	cases := []struct {
		name           string
		ranked         []Post
		page           int
		pageSize       int
		wantIDs        []string
		wantTotalItems int
		wantTotalPages int
	}{
		{
			name:           "full_first_page",
			ranked:         ranked,
			page:           1,
			pageSize:       20,
			wantIDs:        postIDs(ranked[:20]),
			wantTotalItems: 45,
			wantTotalPages: 3,
		},
		{
			name:           "partial_last_page",
			ranked:         ranked,
			page:           3,
			pageSize:       20,
			wantIDs:        []string{"p41", "p42", "p43", "p44", "p45"},
			wantTotalItems: 45,
			wantTotalPages: 3,
		},
		{
			name:           "page_past_end_is_empty_not_error",
			ranked:         ranked,
			page:           4,
			pageSize:       20,
			wantIDs:        []string{},
			wantTotalItems: 45,
			wantTotalPages: 3,
		},
		{
			name:           "empty_sequence_still_has_one_page",
			ranked:         nil,
			page:           1,
			pageSize:       20,
			wantIDs:        []string{},
			wantTotalItems: 0,
			wantTotalPages: 1,
		},
		{
			name:           "exact_multiple_of_page_size",
			ranked:         ranked[:40],
			page:           2,
			pageSize:       20,
			wantIDs:        postIDs(ranked[20:40]),
			wantTotalItems: 40,
			wantTotalPages: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := PaginatePosts(tc.ranked, tc.page, tc.pageSize)

			assert.Equal(t, tc.wantIDs, postIDs(result.Items))
			assert.Equal(t, tc.page, result.Page)
			assert.Equal(t, tc.pageSize, result.PageSize)
			assert.Equal(t, tc.wantTotalItems, result.TotalItems)
			assert.Equal(t, tc.wantTotalPages, result.TotalPages)
		})
	}
}
