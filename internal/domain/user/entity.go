package user

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// User is a job seeker profile. The ID is the opaque identifier issued by the
// external identity provider and is trusted verbatim. Resume is the durable
// media-host URL of the uploaded file; ResumeText is its extracted text, used
// by the match estimator.
type User struct {
	ID         string
	Name       string
	Email      string
	Image      string
	Headline   string
	Portfolio  string
	Phone      string
	Location   string
	Skills     []string
	Resume     string
	ResumeText string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, u User) error
}
