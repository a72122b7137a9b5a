package request

import (
	"context"

	"github.com/google/uuid"
)

// RequestRepository defines persistence operations for item requests.
type RequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	// FindByRequestorID lists a user's own requests, newest first.
	FindByRequestorID(ctx context.Context, requestorID uuid.UUID) ([]*Request, error)
	// FindAllForOthers lists every request except the given user's own,
	// newest first, paginated by row offset and page size.
	FindAllForOthers(ctx context.Context, requestorID uuid.UUID, from, size int) ([]*Request, int64, error)
	Save(ctx context.Context, request *Request) error
}

// Lookup is the narrow read interface other packages use to resolve a request.
type Lookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
}
