package item

import (
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	"github.com/google/uuid"
)

// Comment is a user's review of an item. Whether the author is entitled to
// comment (a finished booking of the item) is checked by the service.
type Comment struct {
	id         uuid.UUID
	itemID     uuid.UUID
	authorID   uuid.UUID
	authorName string
	text       string
	createdAt  time.Time
}

// NewComment creates a comment on an item.
func NewComment(itemID, authorID uuid.UUID, authorName, text string) (*Comment, error) {
	if text == "" {
		return nil, domain.NewValidationError("comment text is required")
	}

	return &Comment{
		id:         uuid.New(),
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		text:       text,
		createdAt:  time.Now().UTC(),
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id, itemID, authorID uuid.UUID, authorName, text string, createdAt time.Time) *Comment {
	return &Comment{
		id:         id,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		text:       text,
		createdAt:  createdAt,
	}
}

// ID returns the comment's unique identifier.
func (c *Comment) ID() uuid.UUID { return c.id }

// ItemID returns the commented item's identifier.
func (c *Comment) ItemID() uuid.UUID { return c.itemID }

// AuthorID returns the author's identifier.
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }

// AuthorName returns the author's display name at comment time.
func (c *Comment) AuthorName() string { return c.authorName }

// Text returns the comment body.
func (c *Comment) Text() string { return c.text }

// CreatedAt returns the creation timestamp.
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
