package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// Posting is a single job listing. PostedAt is milliseconds since epoch and
// immutable once set.
type Posting struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	Category    string
	Level       string
	Salary      int64
	PostedAt    int64
	Visible     bool
	JobType     string
	WorkMode    string
	Skills      []string
	ExternalURL string
	CompanyID   uuid.UUID
}

const (
	DefaultJobType  = "Full-Time"
	DefaultWorkMode = "On-site"
)

// ListFilter mirrors the GET /jobs query surface. Title is OR-matched against
// title, description, category and skills; Location is a substring match; the
// remaining fields are exact. PostedAfter (ms) is 0 when unbounded.
type ListFilter struct {
	Title       string
	Location    string
	Category    string
	Level       string
	JobType     string
	WorkMode    string
	PostedAfter int64
}

type Repository interface {
	Create(ctx context.Context, p Posting) error
	InsertMany(ctx context.Context, ps []Posting) error
	FindByID(ctx context.Context, id uuid.UUID) (Posting, error)
	ListVisible(ctx context.Context, f ListFilter) ([]Posting, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Posting, error)
	SetVisibility(ctx context.Context, id, companyID uuid.UUID, visible bool) (bool, error)
}
