package application

import (
	"context"
	"fmt"
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	bookingDomain "github.com/boyarintsev1/shareit/internal/domain/booking"
	itemDomain "github.com/boyarintsev1/shareit/internal/domain/item"
	requestDomain "github.com/boyarintsev1/shareit/internal/domain/request"
	userDomain "github.com/boyarintsev1/shareit/internal/domain/user"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateItemRequest holds the data needed to register a new item. RequestID,
// when set, records the item as an answer to that request.
type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"request_id"`
}

// UpdateItemRequest is an owner's partial edit of an item.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest holds a review of an item.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// BookingRefDTO is the compact booking reference embedded in an owner's item
// view for the last and next approved bookings.
type BookingRefDTO struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID uuid.UUID `json:"booker_id"`
}

// CommentDTO is the response representation of a comment.
type CommentDTO struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemDTO is the response representation of an item. LastBooking and
// NextBooking are populated only when the requester owns the item.
type ItemDTO struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	RequestID   *uuid.UUID     `json:"request_id,omitempty"`
	LastBooking *BookingRefDTO `json:"last_booking,omitempty"`
	NextBooking *BookingRefDTO `json:"next_booking,omitempty"`
	Comments    []CommentDTO   `json:"comments"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ItemService is the application service for items and their comments.
type ItemService struct {
	repo     itemDomain.ItemRepository
	bookings bookingDomain.BookingRepository
	users    userDomain.Lookup
	requests requestDomain.Lookup
	logger   *zap.Logger
	now      func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	repo itemDomain.ItemRepository,
	bookings bookingDomain.BookingRepository,
	users userDomain.Lookup,
	requests requestDomain.Lookup,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		repo:     repo,
		bookings: bookings,
		users:    users,
		requests: requests,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateItem registers a new item for the owner.
func (s *ItemService) CreateItem(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemDTO, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it, err := itemDomain.NewItem(owner.ID(), req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.Info("item created",
		zap.String("item_id", it.ID().String()),
		zap.String("owner_id", ownerID.String()),
	)

	result := toItemDTO(it, nil)
	return &result, nil
}

// UpdateItem applies an owner's partial edit.
func (s *ItemService) UpdateItem(ctx context.Context, actorID, itemID uuid.UUID, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(actorID) {
		return nil, domain.NewNotOwnerError()
	}

	it.ApplyPatch(req.Name, req.Description, req.Available)
	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item updated", zap.String("item_id", itemID.String()))

	result := toItemDTO(it, nil)
	return &result, nil
}

// GetItem retrieves an item with its comments. The last and next approved
// bookings are attached only for the item's owner.
func (s *ItemService) GetItem(ctx context.Context, actorID, itemID uuid.UUID) (*ItemDTO, error) {
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.FindCommentsByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result := toItemDTO(it, comments)
	if it.IsOwnedBy(actorID) {
		if err := s.attachSchedule(ctx, &result); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

// ListOwnerItems retrieves the owner's items, each annotated with its last
// and next approved bookings and its comments.
func (s *ItemService) ListOwnerItems(ctx context.Context, ownerID uuid.UUID) ([]ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		comments, err := s.repo.FindCommentsByItemID(ctx, it.ID())
		if err != nil {
			return nil, err
		}
		dtos[i] = toItemDTO(it, comments)
		if err := s.attachSchedule(ctx, &dtos[i]); err != nil {
			return nil, err
		}
	}
	return dtos, nil
}

// Search finds available items matching the text in name or description.
// Empty text yields an empty result, not an error.
func (s *ItemService) Search(ctx context.Context, text string) ([]ItemDTO, error) {
	items, err := s.repo.SearchAvailable(ctx, text)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it, nil)
	}
	return dtos, nil
}

// DeleteItem removes an owner's item.
func (s *ItemService) DeleteItem(ctx context.Context, actorID, itemID uuid.UUID) error {
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !it.IsOwnedBy(actorID) {
		return domain.NewNotOwnerError()
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return err
	}

	s.logger.Info("item deleted", zap.String("item_id", itemID.String()))
	return nil
}

// CreateComment adds a review of an item. Only users with at least one
// finished booking of the item may comment.
func (s *ItemService) CreateComment(ctx context.Context, authorID, itemID uuid.UUID, req CreateCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	finished, err := s.bookings.FindFinishedForItemAndBooker(ctx, itemID, authorID, s.now())
	if err != nil {
		return nil, err
	}
	if len(finished) == 0 {
		return nil, domain.NewValidationError("only users with a finished booking of the item may comment")
	}

	comment, err := itemDomain.NewComment(itemID, author.ID(), author.Name(), req.Text)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	s.logger.Info("comment created",
		zap.String("item_id", itemID.String()),
		zap.String("author_id", authorID.String()),
	)

	result := toCommentDTO(comment)
	return &result, nil
}

// attachSchedule fills the DTO's last and next bookings from the item's
// approved-booking history.
func (s *ItemService) attachSchedule(ctx context.Context, dto *ItemDTO) error {
	approved, err := s.bookings.FindApprovedForItem(ctx, dto.ID)
	if err != nil {
		return err
	}

	now := s.now()
	if last := bookingDomain.Last(approved, now); last != nil {
		dto.LastBooking = toBookingRefDTO(last)
	}
	if next := bookingDomain.Next(approved, now); next != nil {
		dto.NextBooking = toBookingRefDTO(next)
	}
	return nil
}

// --- Helpers ---

func toItemDTO(it *itemDomain.Item, comments []*itemDomain.Comment) ItemDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return ItemDTO{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
		Comments:    dtos,
		CreatedAt:   it.CreatedAt(),
		UpdatedAt:   it.UpdatedAt(),
	}
}

func toBookingRefDTO(b *bookingDomain.Booking) *BookingRefDTO {
	return &BookingRefDTO{
		ID:       b.ID(),
		Start:    b.Start(),
		End:      b.End(),
		BookerID: b.BookerID(),
	}
}

func toCommentDTO(c *itemDomain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: c.AuthorName(),
		CreatedAt:  c.CreatedAt(),
	}
}
