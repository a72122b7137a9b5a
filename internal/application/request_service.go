package application

import (
	"context"
	"fmt"
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	itemDomain "github.com/boyarintsev1/shareit/internal/domain/item"
	requestDomain "github.com/boyarintsev1/shareit/internal/domain/request"
	userDomain "github.com/boyarintsev1/shareit/internal/domain/user"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRequestRequest holds a user's post asking for an item nobody has
// listed yet.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestItemDTO is the compact item reference embedded in a request view for
// the items that answer it.
type RequestItemDTO struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

// RequestDTO is the response representation of an item request, including the
// items created in answer to it.
type RequestDTO struct {
	ID          uuid.UUID        `json:"id"`
	RequestorID uuid.UUID        `json:"requestor_id"`
	Description string           `json:"description"`
	Items       []RequestItemDTO `json:"items"`
	CreatedAt   time.Time        `json:"created_at"`
}

// RequestService is the application service for item requests.
type RequestService struct {
	repo   requestDomain.RequestRepository
	items  itemDomain.ItemRepository
	users  userDomain.Lookup
	logger *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	repo requestDomain.RequestRepository,
	items itemDomain.ItemRepository,
	users userDomain.Lookup,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		repo:   repo,
		items:  items,
		users:  users,
		logger: logger,
	}
}

// CreateRequest files a new item request for the user.
func (s *RequestService) CreateRequest(ctx context.Context, requestorID uuid.UUID, req CreateRequestRequest) (*RequestDTO, error) {
	requestor, err := s.users.FindByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	r, err := requestDomain.NewRequest(requestor.ID(), req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	s.logger.Info("request created",
		zap.String("request_id", r.ID().String()),
		zap.String("requestor_id", requestorID.String()),
	)

	result := toRequestDTO(r, nil)
	return &result, nil
}

// ListOwnRequests retrieves the user's own requests, newest first, each
// annotated with the items created in answer to it.
func (s *RequestService) ListOwnRequests(ctx context.Context, requestorID uuid.UUID) ([]RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.FindByRequestorID(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, requests)
}

// ListOtherRequests retrieves other users' requests, newest first, paginated,
// each annotated with the items created in answer to it.
func (s *RequestService) ListOtherRequests(ctx context.Context, requestorID uuid.UUID, from, size int) (*domain.PaginatedResult[RequestDTO], error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, total, err := s.repo.FindAllForOthers(ctx, requestorID, from, size)
	if err != nil {
		return nil, err
	}

	dtos, err := s.annotate(ctx, requests)
	if err != nil {
		return nil, err
	}

	result := domain.NewPaginatedResult(dtos, total, from/size, size)
	return &result, nil
}

// GetRequest retrieves a single request with its answering items. Any
// registered user may view any request.
func (s *RequestService) GetRequest(ctx context.Context, actorID, requestID uuid.UUID) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, actorID); err != nil {
		return nil, err
	}

	r, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	result := toRequestDTO(r, items)
	return &result, nil
}

func (s *RequestService) annotate(ctx context.Context, requests []*requestDomain.Request) ([]RequestDTO, error) {
	dtos := make([]RequestDTO, len(requests))
	for i, r := range requests {
		items, err := s.items.FindByRequestID(ctx, r.ID())
		if err != nil {
			return nil, err
		}
		dtos[i] = toRequestDTO(r, items)
	}
	return dtos, nil
}

func toRequestDTO(r *requestDomain.Request, items []*itemDomain.Item) RequestDTO {
	itemDTOs := make([]RequestItemDTO, len(items))
	for i, it := range items {
		itemDTOs[i] = RequestItemDTO{
			ID:          it.ID(),
			OwnerID:     it.OwnerID(),
			Name:        it.Name(),
			Description: it.Description(),
			Available:   it.Available(),
		}
	}
	return RequestDTO{
		ID:          r.ID(),
		RequestorID: r.RequestorID(),
		Description: r.Description(),
		Items:       itemDTOs,
		CreatedAt:   r.CreatedAt(),
	}
}
