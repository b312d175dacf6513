package datasources

import (
	"context"

	"github.com/empowerverse/personalized-feed/internal/domain"
)

// InteractionStorer replaces a user's archived records of one interaction type.
type InteractionStorer interface {
	StoreUserInteractions(
		ctx context.Context,
		userID string,
		interactionType domain.InteractionType,
		records []domain.InteractionRecord,
	) error
}

// ArchivedInteractionLister lists a user's archived records of one interaction type.
type ArchivedInteractionLister interface {
	ListArchivedInteractions(
		ctx context.Context,
		userID string,
		interactionType domain.InteractionType,
	) ([]domain.InteractionRecord, error)
}

// InteractionArchive keeps the last successfully fetched interaction records
// so feeds can still be ranked while the upstream API is down.
type InteractionArchive interface {
	InteractionStorer
	ArchivedInteractionLister
}

// NullInteractionArchive is a null implementation of InteractionArchive.
type NullInteractionArchive struct{}

var _ InteractionArchive = NullInteractionArchive{}

func (NullInteractionArchive) StoreUserInteractions(
	_ context.Context,
	_ string,
	_ domain.InteractionType,
	_ []domain.InteractionRecord,
) error {
	return nil
}

func (NullInteractionArchive) ListArchivedInteractions(
	_ context.Context,
	_ string,
	_ domain.InteractionType,
) ([]domain.InteractionRecord, error) {
	return nil, nil
}
