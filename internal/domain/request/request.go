package request

import (
	"time"

	"github.com/boyarintsev1/shareit/internal/domain"
	"github.com/google/uuid"
)

// MaxDescriptionLength caps a request's description.
const MaxDescriptionLength = 500

// Request is a user's post asking for an item nobody has listed yet. Owners
// answer it by creating an item that references the request.
type Request struct {
	id          uuid.UUID
	requestorID uuid.UUID
	description string
	createdAt   time.Time
}

// NewRequest creates an item request filed by the given user.
func NewRequest(requestorID uuid.UUID, description string) (*Request, error) {
	if requestorID == uuid.Nil {
		return nil, domain.NewValidationError("requestor ID is required")
	}
	if description == "" {
		return nil, domain.NewValidationError("request description is required")
	}
	if len(description) > MaxDescriptionLength {
		return nil, domain.NewValidationError("request description must not exceed 500 characters")
	}

	return &Request{
		id:          uuid.New(),
		requestorID: requestorID,
		description: description,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Request from persistence data (no validation).
func Reconstruct(id, requestorID uuid.UUID, description string, createdAt time.Time) *Request {
	return &Request{
		id:          id,
		requestorID: requestorID,
		description: description,
		createdAt:   createdAt,
	}
}

// ID returns the request's unique identifier.
func (r *Request) ID() uuid.UUID { return r.id }

// RequestorID returns the identifier of the user who filed the request.
func (r *Request) RequestorID() uuid.UUID { return r.requestorID }

// Description returns the text of the request.
func (r *Request) Description() string { return r.description }

// CreatedAt returns the creation timestamp.
func (r *Request) CreatedAt() time.Time { return r.createdAt }
