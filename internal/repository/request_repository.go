package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	requestDomain "github.com/boyarintsev1/shareit/internal/domain/request"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestModel is the GORM model for the requests table.
type RequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Description string    `gorm:"not null;size:500"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RequestModel) TableName() string {
	return "requests"
}

// GormRequestRepository is the GORM-based implementation of RequestRepository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID retrieves a request by its unique identifier.
func (r *GormRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*requestDomain.Request, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("request", id.String())
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindByRequestorID retrieves a user's own requests, newest first.
func (r *GormRequestRepository) FindByRequestorID(ctx context.Context, requestorID uuid.UUID) ([]*requestDomain.Request, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requests by requestor: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindAllForOthers retrieves every request except the given user's own,
// newest first, paginated.
func (r *GormRequestRepository) FindAllForOthers(ctx context.Context, requestorID uuid.UUID, from, size int) ([]*requestDomain.Request, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&RequestModel{}).
		Where("requestor_id <> ?", requestorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	offset := (from / size) * size
	var models []RequestModel
	if err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(offset).
		Limit(size).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find requests: %w", err)
	}
	return toDomainRequests(models), total, nil
}

// Save persists a new request.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.Request) error {
	model := &RequestModel{
		ID:          req.ID(),
		RequestorID: req.RequestorID(),
		Description: req.Description(),
		CreatedAt:   req.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

func toDomainRequest(m *RequestModel) *requestDomain.Request {
	return requestDomain.Reconstruct(m.ID, m.RequestorID, m.Description, m.CreatedAt)
}

func toDomainRequests(models []RequestModel) []*requestDomain.Request {
	requests := make([]*requestDomain.Request, len(models))
	for i, m := range models {
		requests[i] = toDomainRequest(&m)
	}
	return requests
}
