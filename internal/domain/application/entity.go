package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

// Application links a seeker to a job. CompanyID is denormalized from the
// job at creation time. Status is an open-ended label ("pending", "Applied",
// "Interview", ...). AppliedAt is milliseconds since epoch.
type Application struct {
	ID        uuid.UUID
	UserID    string
	JobID     uuid.UUID
	CompanyID uuid.UUID
	Status    string
	AppliedAt int64
}

const DefaultStatus = "pending"

// Detail is an application joined with the posting and company it targets,
// as returned by the listing queries.
type Detail struct {
	Application
	JobTitle       string
	JobLocation    string
	JobLevel       string
	JobSalary      int64
	JobExternalURL string
	CompanyName    string
	CompanyEmail   string
	CompanyImage   string
}

type Repository interface {
	// Create inserts the application. The (user_id, job_id) pair is unique at
	// the storage layer; a violation is reported as ErrDuplicate.
	Create(ctx context.Context, a Application) error
	FindOne(ctx context.Context, userID string, jobID uuid.UUID) (Application, error)
	ListByUser(ctx context.Context, userID string) ([]Detail, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Detail, error)
	// UpdateStatusByUser updates status only when the application belongs to
	// userID. Returns false when no row matched.
	UpdateStatusByUser(ctx context.Context, id uuid.UUID, userID, status string) (bool, error)
	// UpdateStatusByCompany is the recruiter-authoritative variant.
	UpdateStatusByCompany(ctx context.Context, id, companyID uuid.UUID, status string) (bool, error)
}
