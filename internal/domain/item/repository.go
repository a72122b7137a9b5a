package item

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines persistence operations for items and their comments.
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*Item, error)
	// SearchAvailable finds available items whose name or description
	// contains the text, case-insensitively. Empty text matches nothing.
	SearchAvailable(ctx context.Context, text string) ([]*Item, error)
	// FindByRequestID lists the items created in answer to the request.
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*Item, error)
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error

	SaveComment(ctx context.Context, comment *Comment) error
	FindCommentsByItemID(ctx context.Context, itemID uuid.UUID) ([]*Comment, error)
}

// Lookup is the narrow read interface other packages use to resolve an item.
type Lookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
}
