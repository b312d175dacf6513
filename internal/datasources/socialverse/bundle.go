package socialverse

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

var _ datasources.InteractionBundleFetcher = (*BundleFetcher)(nil)

// bundleInteractionTypes lists the interaction types a bundle carries, in
// slot order.
var bundleInteractionTypes = [...]domain.InteractionType{
	domain.InteractionTypeView,
	domain.InteractionTypeLike,
	domain.InteractionTypeInspire,
	domain.InteractionTypeRate,
}

// BundleFetcher assembles a user's interaction bundle from the upstream API.
//
// The four interaction lists are fetched concurrently. A list that fails to
// fetch degrades to the archived copy, or to empty: the user still gets a
// feed ranked on whatever signals remain. Only identity resolution can fail
// the fetch outright.
type BundleFetcher struct {
	Users        datasources.UserGetter
	Interactions datasources.InteractionSource
	Archive      datasources.InteractionArchive
}

// NewBundleFetcher creates a BundleFetcher backed by the given providers.
// A nil archive disables the upstream-outage fallback.
func NewBundleFetcher(
	users datasources.UserGetter,
	interactions datasources.InteractionSource,
	archive datasources.InteractionArchive,
) *BundleFetcher {
	if archive == nil {
		archive = datasources.NullInteractionArchive{}
	}
	return &BundleFetcher{
		Users:        users,
		Interactions: interactions,
		Archive:      archive,
	}
}

// FetchUserInteractions resolves the username and gathers the user's viewed,
// liked, inspired, and rated records.
func (f *BundleFetcher) FetchUserInteractions(
	ctx context.Context, username string,
) (domain.UserInteractionBundle, error) {
	user, err := f.Users.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.UserInteractionBundle{}, fmt.Errorf("resolving user [%s]: %w", username, err)
	}

	var lists [len(bundleInteractionTypes)][]domain.InteractionRecord

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, interactionType := range bundleInteractionTypes {
		i, interactionType := i, interactionType
		grp.Go(func() error {
			lists[i] = f.fetchUserRecords(grpCtx, user.ID, interactionType)
			return nil
		})
	}
	// Individual list failures degrade to empty, so the group never errors.
	_ = grp.Wait()

	return domain.UserInteractionBundle{
		User:     user,
		Viewed:   lists[0],
		Liked:    lists[1],
		Inspired: lists[2],
		Rated:    lists[3],
	}, nil
}

// fetchUserRecords fetches one interaction list and filters it down to the
// user's own records. On upstream failure it falls back to the archive; on
// success it refreshes the archive best-effort.
func (f *BundleFetcher) fetchUserRecords(
	ctx context.Context, userID string, interactionType domain.InteractionType,
) []domain.InteractionRecord {
	logger := domain.LoggerFromContext(ctx)

	records, err := f.Interactions.ListInteractions(ctx, interactionType)
	if err != nil {
		logger.WarnContext(ctx, "upstream interaction fetch failed, trying archive",
			"interaction_type", interactionType,
			"error", err,
		)

		archived, archiveErr := f.Archive.ListArchivedInteractions(ctx, userID, interactionType)
		if archiveErr != nil {
			logger.WarnContext(ctx, "interaction archive fallback failed",
				"interaction_type", interactionType,
				"error", archiveErr,
			)
			return nil
		}
		return archived
	}

	userRecords := filterByUser(records, userID)

	if err := f.Archive.StoreUserInteractions(ctx, userID, interactionType, userRecords); err != nil {
		logger.WarnContext(ctx, "unable to refresh interaction archive",
			"interaction_type", interactionType,
			"error", err,
		)
	}

	return userRecords
}

func filterByUser(records []domain.InteractionRecord, userID string) []domain.InteractionRecord {
	var filtered []domain.InteractionRecord
	for _, rec := range records {
		if rec.UserID == userID {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
