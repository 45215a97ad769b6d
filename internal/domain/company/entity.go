package company

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("company not found")
	ErrEmailTaken = errors.New("company email already registered")
)

// Company is the posting-owning recruiter account.
type Company struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Image        string
	CreatedAt    time.Time
}

type Repository interface {
	Create(ctx context.Context, c Company) error
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	GetByEmail(ctx context.Context, email string) (Company, error)
	// First returns any existing company. The seeding routine attaches mock
	// external postings to it.
	First(ctx context.Context) (Company, error)
}
